// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal capabilities
// of the output. Non-terminal outputs get plain text.
type Handler struct {
	level  slog.Leveler
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  []groupAttrs
	groups []string
}

// NewHandler returns a new [Handler] writing to w, showing
// records at or above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		level: level,
		out:   termenv.NewOutput(w),
		mu:    &sync.Mutex{},
	}
}

// SetDefault installs a [Handler] writing to [os.Stderr]
// at the given level as the default slog logger.
func SetDefault(level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, level)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	if !r.Time.IsZero() {
		sb.WriteString(h.out.String(r.Time.Format("15:04:05")).Faint().String())
		sb.WriteByte(' ')
	}
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, ga := range h.attrs {
		for _, a := range ga.attrs {
			writeAttr(&sb, ga.prefix, a)
		}
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	ga := groupAttrs{prefix: strings.Join(h.groups, "."), attrs: attrs}
	nh.attrs = append(append([]groupAttrs{}, h.attrs...), ga)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// groupAttrs are attributes added with WithAttrs, qualified by
// the groups open at the time.
type groupAttrs struct {
	prefix string
	attrs  []slog.Attr
}

// levelString returns the colored name of the given level.
func (h *Handler) levelString(level slog.Level) string {
	st := h.out.String(fmt.Sprintf("%-5s", level.String()))
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(h.out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(h.out.Color("3"))
	case level >= slog.LevelInfo:
		st = st.Foreground(h.out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(sb, key, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	s := a.Value.String()
	if strings.ContainsAny(s, " \t\"=") {
		s = fmt.Sprintf("%q", s)
	}
	sb.WriteString(s)
}
