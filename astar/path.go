package astar

// Path returns the node sequence from source to destination.
//
// It walks predecessor links from the destination until a node without a
// predecessor (the source) and reverses the collected nodes. Engines that did
// not succeed yield ErrNotSucceeded. A chain longer than V, or one ending
// anywhere but the source, yields ErrBrokenChain.
//
// Complexity: O(len(path)).
func (e *Engine[N]) Path() ([]N, error) {
	if e.state != Succeeded {
		return nil, ErrNotSucceeded
	}

	idx, err := reconstruct(e.st.pred, e.src, e.dst)
	if err != nil {
		return nil, err
	}
	path := make([]N, len(idx))
	for k, i := range idx {
		path[k] = e.g.ID(i)
	}

	return path, nil
}

// reconstruct follows pred from dst back to src and returns src..dst indices.
func reconstruct(pred []int, src, dst int) ([]int, error) {
	out := []int{dst}
	cur := dst
	for pred[cur] != noPred {
		if len(out) > len(pred) {
			return nil, ErrBrokenChain
		}
		cur = pred[cur]
		out = append(out, cur)
	}
	if cur != src {
		return nil, ErrBrokenChain
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}
