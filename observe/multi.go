package observe

import "github.com/katalvlaran/shortpath/astar"

// Multi returns an Observer forwarding every event to each non-nil observer
// in order. It returns nil when none remain, which disables observation.
func Multi(observers ...astar.Observer) astar.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

type multi []astar.Observer

func (m multi) Observe(ev astar.Event) {
	for _, o := range m {
		o.Observe(ev)
	}
}
