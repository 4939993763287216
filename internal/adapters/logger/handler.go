package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/droid/internal/ui/output"
	"go.trai.ch/droid/internal/ui/style"
)

// PrettyHandler is a slog.Handler that produces human-readable, colored output.
type PrettyHandler struct {
	out    *termenv.Output
	icons  levelIcons
	level  slog.Leveler
	attrs  []string
	prefix string
}

// levelIcons renders the icon that leads warn and error lines.
type levelIcons struct {
	warn  lipgloss.Style
	error lipgloss.Style
}

func newLevelIcons(w io.Writer) levelIcons {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	return levelIcons{
		warn:  r.NewStyle().Bold(true).Foreground(style.Yellow),
		error: r.NewStyle().Bold(true).Foreground(style.Red),
	}
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
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
		icons: newLevelIcons(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var icon string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		icon = h.icons.error.Render(style.Cross) + " "
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		icon = h.icons.warn.Render(style.Warning) + " "
		color = termenv.RGBColor(string(style.Yellow))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	msg := r.Message

	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	parts = append(parts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		if s := formatAttr(h.prefix, attr); s != "" {
			parts = append(parts, s)
		}
		return true
	})

	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	_, err := h.out.WriteString(icon + h.out.String(msg).Foreground(color).String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	formatted := make([]string, 0, len(h.attrs)+len(attrs))
	formatted = append(formatted, h.attrs...)
	for _, attr := range attrs {
		if s := formatAttr(h.prefix, attr); s != "" {
			formatted = append(formatted, s)
		}
	}

	return &PrettyHandler{
		out:    h.out,
		icons:  h.icons,
		level:  h.level,
		attrs:  formatted,
		prefix: h.prefix,
	}
}

// WithGroup returns a new Handler that qualifies later keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		out:    h.out,
		icons:  h.icons,
		level:  h.level,
		attrs:  h.attrs,
		prefix: h.prefix + name + ".",
	}
}

// formatAttr renders attr as key=value. Values containing spaces are quoted
// and group attributes are flattened into dotted keys.
func formatAttr(prefix string, attr slog.Attr) string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return ""
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		var parts []string
		for _, a := range attr.Value.Group() {
			if s := formatAttr(groupPrefix, a); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}

	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n\"") {
		value = strconv.Quote(value)
	}
	return prefix + attr.Key + "=" + value
}
