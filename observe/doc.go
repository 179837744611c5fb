// Package observe turns astar search events into structured logs,
// Prometheus metrics and OpenTelemetry spans.
//
// Every type here implements astar.Observer and is attached with
// astar.WithObserver. Several observers can be combined with Multi:
//
//	reg := prometheus.NewRegistry()
//	obs := observe.Multi(
//	    observe.NewLogObserver(slog.Default()),
//	    observe.NewMetrics(reg),
//	    observe.NewTraceObserver(otel.Tracer("shortpath")),
//	)
//	res, err := astar.Search(g, "A", "F", astar.WithObserver(obs))
//
// Observers are safe to share across concurrent searches: each event carries
// the RunID of the search that produced it.
package observe
