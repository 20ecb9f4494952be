package simplify

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Diagnostics wraps a base slog.Handler to count the Warning and
// Unreachable meta-operator events a rule translation emits, while still
// forwarding every record to the base handler so individual messages
// remain visible in structured logs — the counting-handler pattern the
// teacher's util/logger wrapper would reach for if it needed aggregate
// stats alongside per-message output.
type Diagnostics struct {
	Warnings     atomic.Int64
	Unreachables atomic.Int64
	base         slog.Handler
}

// NewDiagnostics wraps base, or slog.Default()'s handler if base is nil.
func NewDiagnostics(base slog.Handler) *Diagnostics {
	if base == nil {
		base = slog.Default().Handler()
	}
	return &Diagnostics{base: base}
}

// Logger returns an *slog.Logger backed by d.
func (d *Diagnostics) Logger() *slog.Logger { return slog.New(d) }

func (d *Diagnostics) Enabled(ctx context.Context, level slog.Level) bool {
	return d.base.Enabled(ctx, level)
}

func (d *Diagnostics) Handle(ctx context.Context, r slog.Record) error {
	switch r.Level {
	case slog.LevelWarn:
		d.Warnings.Add(1)
	case slog.LevelError:
		d.Unreachables.Add(1)
	}
	return d.base.Handle(ctx, r)
}

func (d *Diagnostics) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Diagnostics{base: d.base.WithAttrs(attrs)}
}

func (d *Diagnostics) WithGroup(name string) slog.Handler {
	return &Diagnostics{base: d.base.WithGroup(name)}
}
