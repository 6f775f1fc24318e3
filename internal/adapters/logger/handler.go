package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/cargojni/internal/ui/output"
	"go.trai.ch/cargojni/internal/ui/style"
)

// tone is the marker and color used for one severity band.
type tone struct {
	marker string
	color  termenv.Color
}

func toneFor(level slog.Level) tone {
	switch {
	case level >= slog.LevelError:
		return tone{marker: style.Cross, color: termenv.RGBColor(string(style.Red))}
	case level >= slog.LevelWarn:
		return tone{marker: style.Warning, color: termenv.RGBColor(string(style.Yellow))}
	case level >= slog.LevelInfo:
		return tone{color: termenv.RGBColor(string(style.Slate))}
	default:
		return tone{color: termenv.RGBColor(string(style.Teal))}
	}
}

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Attributes are rendered as key=value pairs after the message.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	fixed  string
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
// A nil opts or level means info.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether records at level pass the configured threshold.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	t := toneFor(r.Level)

	var line strings.Builder
	if t.marker != "" {
		line.WriteString(t.marker)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)
	line.WriteString(h.fixed)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&line, h.prefix, a)
		return true
	})

	_, err := io.WriteString(h.out, h.out.String(line.String()).Foreground(t.color).String()+"\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.fixed)
	for _, a := range attrs {
		writeAttr(&b, h.prefix, a)
	}
	next := *h
	next.fixed = b.String()
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// writeAttr appends " key=value", flattening nested groups into dotted keys.
func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, inner, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
