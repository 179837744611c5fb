// File: trace.go
// Role: OpenTelemetry observer, one span per search.
// Policy:
//   - The span opens on search.start and ends on search.finish.
//   - Expansions become span events; relaxations are counted, not recorded.

package observe

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/shortpath/astar"
)

// Attribute keys set on search spans.
const (
	AttrRunID       = attribute.Key("shortpath.run_id")
	AttrSource      = attribute.Key("shortpath.source")
	AttrDestination = attribute.Key("shortpath.destination")
	AttrNode        = attribute.Key("shortpath.node")
	AttrG           = attribute.Key("shortpath.g")
	AttrF           = attribute.Key("shortpath.f")
	AttrState       = attribute.Key("shortpath.state")
	AttrCost        = attribute.Key("shortpath.cost")
	AttrExpanded    = attribute.Key("shortpath.expanded")
	AttrRelaxed     = attribute.Key("shortpath.relaxed")
)

// TraceObserver opens a span per search and annotates it as the loop runs.
//
// A span ends when its search reaches a terminal state. Searches that are
// stepped and then dropped before that keep their span open until End.
type TraceObserver struct {
	tracer trace.Tracer
	parent context.Context

	mu    sync.Mutex
	spans map[string]*searchSpan // by RunID
}

type searchSpan struct {
	span    trace.Span
	relaxed int
}

// NewTraceObserver returns a TraceObserver starting root spans on tracer.
func NewTraceObserver(tracer trace.Tracer) *TraceObserver {
	return NewTraceObserverContext(context.Background(), tracer)
}

// NewTraceObserverContext is NewTraceObserver with spans parented on the span
// carried by ctx, if any.
func NewTraceObserverContext(ctx context.Context, tracer trace.Tracer) *TraceObserver {
	return &TraceObserver{
		tracer: tracer,
		parent: ctx,
		spans:  make(map[string]*searchSpan),
	}
}

// Observe implements astar.Observer.
func (o *TraceObserver) Observe(ev astar.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if ev.Kind == astar.EventStart {
		_, span := o.tracer.Start(o.parent, "shortpath.search",
			trace.WithAttributes(
				AttrRunID.String(ev.RunID),
				AttrSource.String(fmt.Sprint(ev.Node)),
				AttrF.Float64(ev.F),
			),
		)
		o.spans[ev.RunID] = &searchSpan{span: span}

		return
	}

	s, ok := o.spans[ev.RunID]
	if !ok {
		// No start seen: the observer joined late or start itself failed.
		if ev.Kind != astar.EventFinish {
			return
		}
		_, span := o.tracer.Start(o.parent, "shortpath.search",
			trace.WithAttributes(AttrRunID.String(ev.RunID)))
		s = &searchSpan{span: span}
	}

	switch ev.Kind {
	case astar.EventExpand:
		s.span.AddEvent(ev.Kind.String(), trace.WithAttributes(
			AttrNode.String(fmt.Sprint(ev.Node)),
			AttrG.Float64(ev.G),
			AttrF.Float64(ev.F),
		))
	case astar.EventRelax:
		s.relaxed++
	case astar.EventFinish:
		s.span.SetAttributes(
			AttrDestination.String(fmt.Sprint(ev.Node)),
			AttrState.String(ev.State.String()),
			AttrExpanded.Int(ev.Step),
			AttrRelaxed.Int(s.relaxed),
		)
		if ev.State == astar.Succeeded {
			s.span.SetAttributes(AttrCost.Float64(ev.Cost))
		}
		if ev.Err != nil {
			s.span.RecordError(ev.Err)
			s.span.SetStatus(codes.Error, ev.Err.Error())
		} else {
			s.span.SetStatus(codes.Ok, "")
		}
		s.span.End()
		delete(o.spans, ev.RunID)
	}
}

// End closes every span whose search has not reached a terminal state,
// marking it abandoned, and forgets it. It returns the number of spans closed.
func (o *TraceObserver) End() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := len(o.spans)
	for id, s := range o.spans {
		s.span.SetAttributes(
			AttrState.String("abandoned"),
			AttrRelaxed.Int(s.relaxed),
		)
		s.span.SetStatus(codes.Error, "search abandoned before a terminal state")
		s.span.End()
		delete(o.spans, id)
	}

	return n
}
