// Package zeroconf registers the lightsd API as an mDNS/DNS-SD service
// so controllers can find it on the LAN without configuration.
package zeroconf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grandcat/zeroconf"
)

// Service manages mDNS service registration.
type Service struct {
	name string // instance name / hostname, e.g. "lightsd"
	port int
	txt  []string
}

// New creates a Service that will advertise an HTTP endpoint on the
// given port. The TXT records carry the software version and the board
// profile name.
func New(name string, port int, version, board string) *Service {
	return &Service{
		name: name,
		port: port,
		txt:  []string{"version=" + version, "board=" + board},
	}
}

// Start registers the mDNS service and blocks until ctx is cancelled, at which
// point it shuts down the server cleanly.
func (s *Service) Start(ctx context.Context) error {
	server, err := zeroconf.Register(
		s.name,       // instance name
		"_http._tcp", // service type
		"local.",     // domain
		s.port,       // port
		s.txt,        // TXT records
		nil,          // ifaces, nil means all interfaces
	)
	if err != nil {
		return fmt.Errorf("zeroconf register: %w", err)
	}
	slog.Info("zeroconf: registered mDNS service",
		"name", s.name,
		"port", s.port,
		"txt", s.txt,
	)

	<-ctx.Done()

	server.Shutdown()
	slog.Info("zeroconf: mDNS service unregistered")
	return nil
}
