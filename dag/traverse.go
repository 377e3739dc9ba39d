// Package dag implements the display traversals: full walks yielding each
// reachable node once, paired with its direct children's values.
package dag

import "iter"

// TraverseBFS returns a lazy sequence of (value, direct child values)
// pairs in level order, each reachable node exactly once. Child lists are
// complete: a child that was already visited through another parent is
// still listed, it is just never expanded twice. The sequence is single
// use; a fresh call re-runs the walk against the current structure.
// Complexity: O(V+E) when fully consumed.
func (g *Graph[T]) TraverseBFS() iter.Seq2[T, []T] {
	return g.traverse(func() worklist { return &fifo{} })
}

// TraverseDFS returns a lazy sequence of (value, direct child values)
// pairs in depth order, each reachable node exactly once. Siblings enter
// the frontier in child order, so the last child of a node is explored
// first. The sequence is single use; a fresh call re-runs the walk.
// Complexity: O(V+E) when fully consumed.
func (g *Graph[T]) TraverseDFS() iter.Seq2[T, []T] {
	return g.traverse(func() worklist { return &lifo{} })
}

// traverse adapts the shared walk into an iterator. An empty graph yields
// nothing.
func (g *Graph[T]) traverse(newWork func() worklist) iter.Seq2[T, []T] {
	return func(yield func(T, []T) bool) {
		if g.root == NoHandle {
			return
		}
		g.walkFrom(g.root, newWork(), func(h Handle) bool {
			n := &g.nodes[h]
			kids := make([]T, n.children.Len())
			for i := 0; i < n.children.Len(); i++ {
				kids[i] = g.nodes[n.children.At(i)].value
			}
			return !yield(n.value, kids)
		})
	}
}
