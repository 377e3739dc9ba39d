// Package dag implements the Graph container: construction, handle
// accessors, counts, cloning, and the display Stringer.
package dag

import (
	"fmt"
	"strings"

	"github.com/elandric/dagrove/deque"
)

// Graph is a rooted directed graph whose nodes live in an arena of slots
// addressed by Handle. The root is the only entry point; every other node
// is reachable through child edges and may hang under several parents at
// once. Values are compared with ==.
//
// Reads (Find*, Traverse*, counts) may run concurrently; mutation must be
// externally serialized.
type Graph[T comparable] struct {
	nodes []node[T]
	free  []Handle // recycled slots, reused before the arena grows
	root  Handle
	live  int // slots currently in use
	cfg   config
}

// New returns an empty graph with no root.
// Complexity: O(1)
func New[T comparable](opts ...Option) *Graph[T] {
	g := &Graph[T]{root: NoHandle, cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}

// NewRooted returns a graph whose root holds rootValue and has no children.
// Complexity: O(1)
func NewRooted[T comparable](rootValue T, opts ...Option) *Graph[T] {
	g := New[T](opts...)
	g.root = g.alloc(rootValue)
	return g
}

// NewWithChildren returns a graph whose root holds rootValue with one fresh
// child node per element of children, linked in input order. Duplicate
// values become independent nodes; construction never deduplicates.
// Complexity: O(len(children))
func NewWithChildren[T comparable](rootValue T, children []T, opts ...Option) *Graph[T] {
	g := NewRooted(rootValue, opts...)
	r := g.node(g.root)
	for _, v := range children {
		r.children.PushBack(g.alloc(v))
	}
	return g
}

// alloc takes a slot off the free list or extends the arena, and returns
// the slot's handle.
func (g *Graph[T]) alloc(v T) Handle {
	var h Handle
	if n := len(g.free); n > 0 {
		h = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		g.nodes = append(g.nodes, node[T]{})
		h = Handle(len(g.nodes) - 1)
	}
	g.nodes[h] = node[T]{value: v, children: deque.New[Handle](0), inUse: true}
	g.live++
	return h
}

// release frees the slot named by h. The handle becomes invalid and may be
// handed out again by a later alloc.
func (g *Graph[T]) release(h Handle) {
	var zero T
	g.nodes[h] = node[T]{value: zero}
	g.free = append(g.free, h)
	g.live--
}

// node returns the live slot for h, or nil when h is stale or out of range.
func (g *Graph[T]) node(h Handle) *node[T] {
	if h < 0 || int(h) >= len(g.nodes) || !g.nodes[h].inUse {
		return nil
	}
	return &g.nodes[h]
}

// Root returns the root's value and true, or the zero value and false for
// an empty graph.
func (g *Graph[T]) Root() (T, bool) {
	if g.root == NoHandle {
		var zero T
		return zero, false
	}
	return g.nodes[g.root].value, true
}

// RootHandle returns the root's handle, or NoHandle for an empty graph.
func (g *Graph[T]) RootHandle() Handle { return g.root }

// Value returns the value stored at h.
// Returns ErrInvalidHandle when h does not address a live node.
func (g *Graph[T]) Value(h Handle) (T, error) {
	n := g.node(h)
	if n == nil {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	return n.value, nil
}

// Children returns the direct child handles of h in edge order. The slice
// is a snapshot; later mutation does not affect it.
// Returns ErrInvalidHandle when h does not address a live node.
func (g *Graph[T]) Children(h Handle) ([]Handle, error) {
	n := g.node(h)
	if n == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	return n.children.Values(), nil
}

// ChildValues returns the values of h's direct children in edge order.
// A child linked twice appears twice.
// Returns ErrInvalidHandle when h does not address a live node.
func (g *Graph[T]) ChildValues(h Handle) ([]T, error) {
	n := g.node(h)
	if n == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	out := make([]T, n.children.Len())
	for i := 0; i < n.children.Len(); i++ {
		out[i] = g.nodes[n.children.At(i)].value
	}
	return out, nil
}

// NodeCount reports the number of live nodes, the root included.
// Complexity: O(1)
func (g *Graph[T]) NodeCount() int { return g.live }

// EdgeCount reports the total number of parent→child edges. Parallel edges
// to the same child count individually.
// Complexity: O(V+E)
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for i := range g.nodes {
		if g.nodes[i].inUse {
			total += g.nodes[i].children.Len()
		}
	}
	return total
}

// InDegree reports the total number of incoming edges to nodes holding
// value, over the whole graph. A parent linking the same child twice counts
// twice; an absent value reports zero. The root always reports zero.
// Returns ErrEmptyGraph when the graph has no root.
// Complexity: O(V+E)
func (g *Graph[T]) InDegree(value T) (int, error) {
	if g.root == NoHandle {
		return 0, ErrEmptyGraph
	}
	count := 0
	g.walkFrom(g.root, &lifo{}, func(h Handle) bool {
		ch := g.nodes[h].children
		for i := 0; i < ch.Len(); i++ {
			if g.nodes[ch.At(i)].value == value {
				count++
			}
		}
		return false
	})
	return count, nil
}

// Clone returns a deep copy: same slot layout, same handles, independent
// storage. Handles obtained from one graph address the same nodes in its
// clone.
// Complexity: O(V+E)
func (g *Graph[T]) Clone() *Graph[T] {
	c := &Graph[T]{
		nodes: make([]node[T], len(g.nodes)),
		free:  append([]Handle(nil), g.free...),
		root:  g.root,
		live:  g.live,
		cfg:   g.cfg,
	}
	for i := range g.nodes {
		c.nodes[i] = g.nodes[i]
		if g.nodes[i].inUse {
			c.nodes[i].children = g.nodes[i].children.Clone()
		}
	}
	return c
}

// Clear drops every node, the root included, keeping construction options.
// All previously issued handles become invalid.
// Complexity: O(1)
func (g *Graph[T]) Clear() {
	g.nodes = nil
	g.free = nil
	g.root = NoHandle
	g.live = 0
}

// String renders the graph in level order, one node per line as
// value(child, child, ...). An empty graph renders as the empty string.
func (g *Graph[T]) String() string {
	var b strings.Builder
	for v, kids := range g.TraverseBFS() {
		fmt.Fprintf(&b, "%v(", v)
		for i, k := range kids {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", k)
		}
		b.WriteString(")\n")
	}
	return b.String()
}
