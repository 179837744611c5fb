// File: log.go
// Role: slog-backed observer.
// Policy:
//   - start and finish are logged at Info; an aborted finish at Warn.
//   - expand and relax are logged at Debug, so a default handler drops them.

package observe

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/shortpath/astar"
)

// LogObserver writes one structured record per search event.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns a LogObserver writing to logger.
// A nil logger falls back to slog.Default().
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogObserver{logger: logger}
}

// Observe implements astar.Observer.
func (o *LogObserver) Observe(ev astar.Event) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("run_id", ev.RunID),
		slog.Any("node", ev.Node),
	}

	switch ev.Kind {
	case astar.EventStart:
		attrs = append(attrs, slog.Float64("g", ev.G), slog.Float64("f", ev.F))
	case astar.EventExpand:
		level = slog.LevelDebug
		attrs = append(attrs,
			slog.Int("step", ev.Step),
			slog.Float64("g", ev.G),
			slog.Float64("f", ev.F),
			slog.Int("frontier", ev.Frontier),
		)
	case astar.EventRelax:
		level = slog.LevelDebug
		attrs = append(attrs,
			slog.Any("from", ev.From),
			slog.Float64("g", ev.G),
			slog.Float64("f", ev.F),
		)
	case astar.EventFinish:
		attrs = append(attrs,
			slog.String("state", ev.State.String()),
			slog.Int("expanded", ev.Step),
			slog.Duration("elapsed", ev.Elapsed),
		)
		if ev.State == astar.Succeeded {
			attrs = append(attrs, slog.Float64("cost", ev.Cost))
		}
		if ev.Err != nil {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", ev.Err.Error()))
		}
	}

	o.logger.LogAttrs(context.Background(), level, ev.Kind.String(), attrs...)
}
