package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

const syslogIdentifier = "lightsd"

// journalAvailable reports whether the systemd journal socket is usable.
func journalAvailable() bool {
	return journal.Enabled()
}

// journalHandler is a slog.Handler that forwards records to the systemd
// journal with native priorities.
type journalHandler struct {
	level slog.Level
	attrs []slog.Attr
	group string
}

func newJournalHandler(level slog.Level) *journalHandler {
	return &journalHandler{level: level}
}

func (h *journalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *journalHandler) Handle(_ context.Context, r slog.Record) error {
	fields := map[string]string{
		"SYSLOG_IDENTIFIER": syslogIdentifier,
	}
	for _, attr := range h.attrs {
		h.addField(fields, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.addField(fields, attr)
		return true
	})
	return journal.Send(r.Message, priority(r.Level), fields)
}

func (h *journalHandler) addField(fields map[string]string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if h.group != "" {
		key = h.group + "_" + key
	}
	fields[sanitizeKey(key)] = attr.Value.String()
}

// sanitizeKey uppercases a key and replaces characters the journal
// field-name grammar rejects.
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(key) {
		switch {
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (h *journalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *journalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		next.group = h.group + "_" + name
	} else {
		next.group = name
	}
	return &next
}

func priority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}
