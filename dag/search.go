// Package dag implements the shared traversal engine: one walk skeleton
// parameterized by its work-list discipline, instantiated as BFS (FIFO)
// and DFS (LIFO).
package dag

import "github.com/elandric/dagrove/deque"

// worklist abstracts the traversal frontier: FIFO yields level order,
// LIFO yields depth order. The walk skeleton is otherwise identical.
type worklist interface {
	put(h Handle)
	take() (Handle, bool)
	empty() bool
}

// fifo backs breadth-first walks with a queue.
type fifo struct {
	q deque.Queue[Handle]
}

func (f *fifo) put(h Handle) { f.q.Enqueue(h) }

func (f *fifo) take() (Handle, bool) {
	h, err := f.q.Dequeue()
	return h, err == nil
}

func (f *fifo) empty() bool { return f.q.Empty() }

// lifo backs depth-first walks with a stack. Siblings are pushed in child
// order, so the last child pushed is explored first.
type lifo struct {
	s deque.Stack[Handle]
}

func (l *lifo) put(h Handle) { l.s.Push(h) }

func (l *lifo) take() (Handle, bool) {
	h, err := l.s.Pop()
	return h, err == nil
}

func (l *lifo) empty() bool { return l.s.Empty() }

// walkFrom drives the shared search skeleton from start: the start node is
// marked and put on the work-list, then nodes are taken one at a time and
// handed to visit; children are marked at discovery, before they are ever
// taken, so each node enters the work-list at most once and the walk
// terminates even on a cyclic graph. visit returning true stops the walk.
// Complexity: O(V+E) over the reachable component.
func (g *Graph[T]) walkFrom(start Handle, work worklist, visit func(h Handle) bool) {
	seen := newVisitSet(len(g.nodes))
	seen.mark(start)
	work.put(start)

	for !work.empty() {
		h, ok := work.take()
		if !ok {
			return
		}
		if visit(h) {
			return
		}
		ch := g.nodes[h].children
		for i := 0; i < ch.Len(); i++ {
			c := ch.At(i)
			if !seen.has(c) {
				seen.mark(c)
				work.put(c)
			}
		}
	}
}

// find runs the walk as a search: the first taken node holding target wins.
func (g *Graph[T]) find(work worklist, target T) (Handle, bool) {
	if g.root == NoHandle {
		return NoHandle, false
	}
	found := NoHandle
	g.walkFrom(g.root, work, func(h Handle) bool {
		if g.nodes[h].value == target {
			found = h
			return true
		}
		return false
	})
	return found, found != NoHandle
}

// FindBFS returns the handle of the first node holding target in level
// order, or (NoHandle, false) when target is absent or the graph is empty.
// Complexity: O(V+E)
func (g *Graph[T]) FindBFS(target T) (Handle, bool) {
	return g.find(&fifo{}, target)
}

// FindDFS returns the handle of the first node holding target in depth
// order, or (NoHandle, false) when target is absent or the graph is empty.
// Complexity: O(V+E)
func (g *Graph[T]) FindDFS(target T) (Handle, bool) {
	return g.find(&lifo{}, target)
}

// reaches reports whether to is reachable from `from` over child edges,
// including from == to.
func (g *Graph[T]) reaches(from, to Handle) bool {
	hit := false
	g.walkFrom(from, &lifo{}, func(h Handle) bool {
		if h == to {
			hit = true
		}
		return hit
	})
	return hit
}
