package adapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Severity labels printed in front of every diagnostic line.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
	SeverityInfo    = "INFO"
	SeverityDebug   = "DEBUG"
)

var severityStyles = map[string]lipgloss.Style{
	SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	SeverityWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	SeverityDebug:   lipgloss.NewStyle().Faint(true),
}

// SeverityName maps a slog level onto the fixed severity scale.
func SeverityName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return SeverityError
	case level >= slog.LevelWarn:
		return SeverityWarning
	case level >= slog.LevelInfo:
		return SeverityInfo
	default:
		return SeverityDebug
	}
}

// DiagHandler is a slog.Handler that renders human-readable
// "<SEVERITY>: <message> key=value" lines.
type DiagHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	color  bool
	attrs  []slog.Attr
	prefix string
}

// NewDiagHandler builds a DiagHandler writing records at or above level to w.
// When color is set the severity label is styled for a terminal.
func NewDiagHandler(w io.Writer, level slog.Leveler, color bool) *DiagHandler {
	if level == nil {
		level = slog.LevelError
	}

	return &DiagHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		color: color,
	}
}

// Enabled implements slog.Handler.
func (h *DiagHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *DiagHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	b.WriteString(h.label(record.Level))
	b.WriteString(": ")
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		appendAttr(&b, "", attr)
	}

	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.prefix, attr)
		return true
	})

	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.w, b.String())

	return err
}

// WithAttrs implements slog.Handler.
func (h *DiagHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)

	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		clone.attrs = append(clone.attrs, attr)
	}

	return &clone
}

// WithGroup implements slog.Handler.
func (h *DiagHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func (h *DiagHandler) label(level slog.Level) string {
	name := SeverityName(level)
	if !h.color {
		return name
	}

	return severityStyles[name].Render(name)
}

func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}

		for _, inner := range attr.Value.Group() {
			appendAttr(b, groupPrefix, inner)
		}

		return
	}

	value := attr.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(value)
}

// TeeHandler fans records out to several handlers.
type TeeHandler struct {
	handlers []slog.Handler
}

// NewTeeHandler combines handlers; nil entries are skipped.
func NewTeeHandler(handlers ...slog.Handler) *TeeHandler {
	kept := make([]slog.Handler, 0, len(handlers))

	for _, h := range handlers {
		if h != nil {
			kept = append(kept, h)
		}
	}

	return &TeeHandler{handlers: kept}
}

// Enabled reports whether any wrapped handler accepts level.
func (t *TeeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle forwards record to every handler that accepts its level.
func (t *TeeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (t *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		handlers = append(handlers, h.WithAttrs(attrs))
	}

	return &TeeHandler{handlers: handlers}
}

// WithGroup implements slog.Handler.
func (t *TeeHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		handlers = append(handlers, h.WithGroup(name))
	}

	return &TeeHandler{handlers: handlers}
}
