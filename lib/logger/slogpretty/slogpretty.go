package slogpretty

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"

	"github.com/fatih/color"
)

type PrettyHandlerOptions struct {
	SlogOpts *slog.HandlerOptions
}

// PrettyHandler prints one coloured line per record followed by its
// attributes as indented JSON. Meant for local runs only.
type PrettyHandler struct {
	slog.Handler
	l *stdLog.Logger
	// fields holds attrs added with WithAttrs, already nested under the
	// groups that were open at the time.
	fields map[string]any
	groups []string
}

func (opts PrettyHandlerOptions) NewPrettyHandler(out io.Writer) *PrettyHandler {
	return &PrettyHandler{
		Handler: slog.NewJSONHandler(out, opts.SlogOpts),
		l:       stdLog.New(out, "", 0),
	}
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	fields := withAttrs(h.fields, h.groups, attrs)

	var b []byte
	if len(fields) > 0 {
		var err error
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	h.l.Println(
		timeStr,
		level,
		msg,
		color.WhiteString(string(b)),
	)

	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return &PrettyHandler{
		Handler: h.Handler,
		l:       h.l,
		fields:  withAttrs(h.fields, h.groups, attrs),
		groups:  h.groups,
	}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	groups = append(groups, name)
	return &PrettyHandler{
		Handler: h.Handler,
		l:       h.l,
		fields:  h.fields,
		groups:  groups,
	}
}

// withAttrs returns a copy of fields with attrs stored under path. Maps along
// the path are copied, so handlers sharing fields never see each other's attrs.
func withAttrs(fields map[string]any, path []string, attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return fields
	}

	out := make(map[string]any, len(fields)+len(attrs))
	for k, v := range fields {
		out[k] = v
	}

	if len(path) > 0 {
		child, _ := out[path[0]].(map[string]any)
		out[path[0]] = withAttrs(child, path[1:], attrs)
		return out
	}

	for _, a := range attrs {
		putAttr(out, a)
	}
	return out
}

func putAttr(dst map[string]any, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		if a.Key != "" {
			dst[a.Key] = v.Any()
		}
		return
	}

	group := v.Group()
	if len(group) == 0 {
		return
	}
	if a.Key == "" {
		for _, ga := range group {
			putAttr(dst, ga)
		}
		return
	}
	dst[a.Key] = withAttrs(nil, nil, group)
}
