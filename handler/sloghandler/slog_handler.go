package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/lcl2log/core"
)

// Target is the logger a SlogHandler forwards to. *logger.Logger
// satisfies it.
type Target interface {
	Enabled(level core.Level) bool
	Log(level core.Level, msg string, args ...any)
}

// frame holds the attributes bound inside one group; the first frame is
// the top level and has no group name.
type frame struct {
	group string
	attrs []slog.Attr
}

// SlogHandler implements slog.Handler. Record attributes are collected
// into one object argument, so
//
//	slog.Info("booked", "coach", "ana")
//
// is logged as `booked {"coach":"ana"}`.
type SlogHandler struct {
	target Target
	frames []frame
}

// New creates a new slog.Handler adapter wrapping the given target.
func New(target Target) *SlogHandler {
	return &SlogHandler{target: target, frames: []frame{{}}}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.target.Enabled(slogLevelToCore(level))
}

// Handle converts the record and forwards it to the target.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	root := make(map[string]any)
	m := root
	for i, f := range s.frames {
		if i > 0 {
			child := make(map[string]any)
			m[f.group] = child
			m = child
		}
		for _, a := range f.attrs {
			addAttr(m, a)
		}
	}
	record.Attrs(func(a slog.Attr) bool {
		addAttr(m, a)
		return true
	})
	pruneEmpty(root)

	level := slogLevelToCore(record.Level)
	if len(root) == 0 {
		s.target.Log(level, record.Message)
		return nil
	}
	s.target.Log(level, record.Message, root)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	frames := s.cloneFrames()
	last := &frames[len(frames)-1]
	last.attrs = append(append([]slog.Attr(nil), last.attrs...), attrs...)
	return &SlogHandler{target: s.target, frames: frames}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	frames := append(s.cloneFrames(), frame{group: name})
	return &SlogHandler{target: s.target, frames: frames}
}

func (s *SlogHandler) cloneFrames() []frame {
	frames := make([]frame, len(s.frames), len(s.frames)+1)
	copy(frames, s.frames)
	return frames
}

// addAttr stores a resolved attribute in m, expanding groups into nested
// maps. Empty attributes and empty groups are skipped.
func addAttr(m map[string]any, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return
		}
		target := m
		if a.Key != "" {
			child := make(map[string]any, len(attrs))
			m[a.Key] = child
			target = child
		}
		for _, ga := range attrs {
			addAttr(target, ga)
		}
		return
	}
	m[a.Key] = attrValue(a.Value)
}

func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return v.Any()
	default:
		return v.Any()
	}
}

// pruneEmpty removes group maps that ended up without attributes.
func pruneEmpty(m map[string]any) {
	for k, v := range m {
		child, ok := v.(map[string]any)
		if !ok {
			continue
		}
		pruneEmpty(child)
		if len(child) == 0 {
			delete(m, k)
		}
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
