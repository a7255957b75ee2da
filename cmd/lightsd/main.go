// Command lightsd is the LED and backlight control daemon.
// Run with --mock to use a simulated device writer (no sysfs nodes required).
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env"

	"github.com/lumastack/lightsd/internal/api"
	"github.com/lumastack/lightsd/internal/controller"
	"github.com/lumastack/lightsd/internal/events"
	"github.com/lumastack/lightsd/internal/hardware"
	"github.com/lumastack/lightsd/internal/identity"
	"github.com/lumastack/lightsd/internal/logging"
	"github.com/lumastack/lightsd/internal/props"
	"github.com/lumastack/lightsd/internal/zeroconf"
)

// envConfig holds settings that can come from the environment.
// Flags override them.
type envConfig struct {
	Addr      string `env:"LIGHTSD_ADDR" envDefault:":8095"`
	ConfigDir string `env:"LIGHTSD_CONFIG_DIR" envDefault:""`
	Profile   string `env:"LIGHTSD_PROFILE" envDefault:""`
	LogLevel  string `env:"LIGHTSD_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LIGHTSD_LOG_FORMAT" envDefault:"text"`
	Mock      bool   `env:"LIGHTSD_MOCK" envDefault:"false"`
	Logind    bool   `env:"LIGHTSD_LOGIND" envDefault:"false"`
}

func main() {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		slog.Error("cannot parse environment", "err", err)
		os.Exit(1)
	}

	var (
		mock        = flag.Bool("mock", cfg.Mock, "use an in-memory device writer (no sysfs nodes required)")
		addr        = flag.String("addr", cfg.Addr, "HTTP listen address")
		cfgDir      = flag.String("config-dir", cfg.ConfigDir, "config directory (default: ~/.config/lightsd)")
		profilePath = flag.String("profile", cfg.Profile, "board profile YAML (default: autodetect)")
		logLevel    = flag.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
		logFormat   = flag.String("log-format", cfg.LogFormat, "log format (text, json)")
		logind      = flag.Bool("logind", cfg.Logind, "route backlight writes through systemd-logind")
	)
	flag.Parse()

	logging.Setup(*logLevel, *logFormat)

	// Resolve config directory
	if *cfgDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("cannot determine home directory", "err", err)
			os.Exit(1)
		}
		*cfgDir = filepath.Join(home, ".config", "lightsd")
	}
	if err := os.MkdirAll(*cfgDir, 0755); err != nil {
		slog.Error("cannot create config directory", "path", *cfgDir, "err", err)
		os.Exit(1)
	}

	// Graceful shutdown context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Board profile
	var profile *hardware.Profile
	if *profilePath != "" {
		p, err := hardware.LoadProfile(*profilePath)
		if err != nil {
			slog.Error("cannot load profile", "path", *profilePath, "err", err)
			os.Exit(1)
		}
		profile = p
	} else {
		profile = hardware.Detect()
	}
	slog.Info("board profile",
		"name", profile.Name,
		"backend", profile.Backend,
		"blink", profile.Capabilities.Blink,
		"attention", profile.Capabilities.Attention,
	)

	// Device writer
	var hw hardware.Writer
	switch {
	case *mock:
		slog.Info("using mock device writer")
		hw = hardware.NewMock()
	case profile.Backend == hardware.BackendGPIO:
		slog.Info("using GPIO device writer")
		g, err := hardware.NewGPIO(profile.Pins)
		if err != nil {
			slog.Error("GPIO initialization failed", "err", err)
			os.Exit(1)
		}
		hw = g
	default:
		slog.Info("using sysfs device writer")
		hw = hardware.NewSysfs()
	}
	if *logind && !*mock {
		lw, err := hardware.NewLogindBacklight(hw, profile.Paths.Backlight)
		if err != nil {
			slog.Warn("logind unavailable, writing backlight directly", "err", err)
		} else {
			hw = lw
		}
	}

	// Property store (sys.lights.* keys), reloaded when the file changes
	store, err := props.Open(filepath.Join(*cfgDir, "lights.props"))
	if err != nil {
		slog.Error("cannot open property store", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	// Event bus
	bus := events.NewBus()

	// Controller
	ctrl := controller.New(profile, hw, store, bus)

	// Zeroconf mDNS registration
	hostname := identity.GetHostname()
	port := 80
	if parts := strings.SplitN(*addr, ":", 2); len(parts) == 2 && parts[1] != "" {
		if p, err := strconv.Atoi(parts[1]); err == nil {
			port = p
		}
	}
	zc := zeroconf.New(hostname, port, identity.GetVersion(), profile.Name)
	go func() {
		if err := zc.Start(ctx); err != nil {
			slog.Warn("zeroconf failed", "err", err)
		}
	}()

	// HTTP server
	router, err := api.NewRouter(ctrl, store, bus)
	if err != nil {
		slog.Error("router initialization failed", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // 0 = no timeout (needed for SSE)
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("lightsd listening", "addr", *addr, "mock", *mock, "config", *cfgDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	slog.Info("shutting down...")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		slog.Warn("server shutdown error", "err", err)
	}

	slog.Info("shutdown complete")
}
