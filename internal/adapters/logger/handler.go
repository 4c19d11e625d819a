package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/revwatch/internal/ui/output"
	"go.trai.ch/revwatch/internal/ui/style"
)

// SourceKey is the attribute that marks a record as child process output.
const SourceKey = "tool"

// PrettyHandler is a slog.Handler that renders colored, human-readable lines.
// Records carrying SourceKey are rendered as tool output behind a gutter.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record as a single colored line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	source, attrs := h.collect(r)

	var line string
	var color termenv.Color
	if source != "" {
		line = source + " " + style.Gutter + " " + r.Message
		color = termenv.RGBColor(string(style.Slate))
	} else {
		var icon string
		icon, color = levelStyle(r.Level)
		line = icon + r.Message
	}
	if len(attrs) > 0 {
		line += " " + strings.Join(attrs, " ")
	}

	_, err := h.out.WriteString(h.out.String(line).Foreground(color).String() + "\n")
	return err
}

// collect formats handler and record attributes and extracts the output source.
//
//nolint:gocritic // slog.Record by value, see Handle
func (h *PrettyHandler) collect(r slog.Record) (string, []string) {
	var source string
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	add := func(attr slog.Attr) bool {
		if attr.Key == SourceKey && h.group == "" {
			source = attr.Value.String()
			return true
		}
		parts = append(parts, formatAttr(h.group, attr))
		return true
	}
	for _, attr := range h.attrs {
		add(attr)
	}
	r.Attrs(add)
	return source, parts
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Iris))
	}
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new Handler that prefixes attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func formatAttr(group string, attr slog.Attr) string {
	if group != "" {
		return group + "." + attr.Key + "=" + attr.Value.String()
	}
	return attr.Key + "=" + attr.Value.String()
}
