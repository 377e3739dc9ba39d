// Package dag implements the mutating operations: Insert, Reparent, and
// Delete. Every fallible lookup happens before any structural change, so a
// failed call leaves the graph untouched.
package dag

// Insert links a node holding value under the first parent found by a
// level-order search for parent. If value already exists anywhere in the
// graph the existing node is linked (gaining one more parent edge); a fresh
// node is allocated otherwise. Linking the same value under the same parent
// twice creates two parallel edges to the one node.
//
// Returns ErrEmptyGraph without a root, ErrParentNotFound when parent is
// absent, ErrRootChild when value names the root, and ErrCycle when the
// graph was built with WithAcyclic and the reused node already reaches the
// parent.
// Complexity: O(V+E)
func (g *Graph[T]) Insert(parent, value T) error {
	if g.root == NoHandle {
		return ErrEmptyGraph
	}
	p, ok := g.FindBFS(parent)
	if !ok {
		return ErrParentNotFound
	}
	if h, exists := g.FindDFS(value); exists {
		if h == g.root {
			return ErrRootChild
		}
		if g.cfg.acyclic && g.reaches(h, p) {
			return ErrCycle
		}
		g.nodes[p].children.PushBack(h)
		return nil
	}
	g.nodes[p].children.PushBack(g.alloc(value))
	return nil
}

// Reparent moves one child edge: the first direct child of fromParent
// holding value is appended to toParent's children and removed from
// fromParent's. The node itself is untouched; only the edge moves, so node
// and edge counts are conserved. When no direct child of fromParent holds
// value the call is a silent no-op; callers wanting a loud failure must
// check the structure themselves.
//
// Returns ErrEmptyGraph without a root, ErrParentNotFound when either
// parent is absent, and ErrCycle when the graph was built with WithAcyclic
// and the moved node already reaches toParent.
// Complexity: O(V+E)
func (g *Graph[T]) Reparent(fromParent, toParent, value T) error {
	if g.root == NoHandle {
		return ErrEmptyGraph
	}
	from, ok := g.FindBFS(fromParent)
	if !ok {
		return ErrParentNotFound
	}
	to, ok := g.FindBFS(toParent)
	if !ok {
		return ErrParentNotFound
	}
	ch := g.nodes[from].children
	for i := 0; i < ch.Len(); i++ {
		h := ch.At(i)
		if g.nodes[h].value != value {
			continue
		}
		// Removing the from→h edge cannot change what h itself reaches,
		// so probing before the move is sound.
		if g.cfg.acyclic && g.reaches(h, to) {
			return ErrCycle
		}
		g.nodes[to].children.PushBack(h)
		g.nodes[from].children.EraseFirst(h)
		return nil
	}
	return nil
}

// Delete removes the node holding value when that removal takes away its
// last remaining incoming edge. With two or more incoming edges the node is
// shared and the call is a silent no-op. The unlinked edge is the first one
// met in depth-first discovery order; slots left unreachable by the unlink
// (the node and any descendants it alone kept alive) are reclaimed, and
// their handles become invalid.
//
// Returns ErrEmptyGraph without a root, ErrNodeNotFound when value is
// absent, and ErrRootDeletion when value names the root.
// Complexity: O(V+E)
func (g *Graph[T]) Delete(value T) error {
	if g.root == NoHandle {
		return ErrEmptyGraph
	}
	h, ok := g.FindDFS(value)
	if !ok {
		return ErrNodeNotFound
	}
	if h == g.root {
		return ErrRootDeletion
	}
	edges, err := g.InDegree(value)
	if err != nil {
		return err
	}
	if edges > 1 {
		return nil
	}
	g.unlinkFirst(value)
	g.sweep()
	return nil
}

// unlinkFirst walks in depth-first discovery order and removes the first
// parent→child edge whose child holds value, then stops. Exactly one edge
// occurrence is affected.
func (g *Graph[T]) unlinkFirst(value T) {
	g.walkFrom(g.root, &lifo{}, func(h Handle) bool {
		ch := g.nodes[h].children
		for i := 0; i < ch.Len(); i++ {
			c := ch.At(i)
			if g.nodes[c].value == value {
				ch.EraseFirst(c)
				return true
			}
		}
		return false
	})
}

// sweep reclaims every live slot no longer reachable from the root.
func (g *Graph[T]) sweep() {
	seen := newVisitSet(len(g.nodes))
	if g.root != NoHandle {
		g.walkFrom(g.root, &lifo{}, func(h Handle) bool {
			seen.mark(h)
			return false
		})
	}
	for i := range g.nodes {
		h := Handle(i)
		if g.nodes[i].inUse && !seen.has(h) {
			g.release(h)
		}
	}
}
