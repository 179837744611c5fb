package astar

// frontierItem is one heap entry. g is the cost the entry was pushed with;
// it lets the loop recognise stale entries after a node improved.
type frontierItem struct {
	node int
	f    float64
	g    float64
	seq  uint64 // push order
}

// frontier is a binary min-heap of frontierItem ordered by f, driven through
// container/heap. Duplicates of one node may coexist (lazy decrease-key).
type frontier struct {
	items []frontierItem
	tie   TieBreak
}

// Len returns the number of entries, stale ones included.
func (pq *frontier) Len() int { return len(pq.items) }

// Less orders by ascending f, then by the configured tie-break.
func (pq *frontier) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if pq.tie == TieDeepest && a.g != b.g {
		return a.g > b.g
	}

	return a.seq < b.seq
}

// Swap swaps two entries.
func (pq *frontier) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; x must be a frontierItem. Called by heap.Push.
func (pq *frontier) Push(x any) { pq.items = append(pq.items, x.(frontierItem)) }

// Pop removes the last entry. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
