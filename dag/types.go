// Package dag declares the Graph's error taxonomy, the Handle arena address
// type, the node slot layout, and construction options.
package dag

import (
	"errors"

	"github.com/elandric/dagrove/deque"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyGraph indicates an operation that needs a root ran on a graph
	// without one.
	ErrEmptyGraph = errors.New("dag: graph has no root")

	// ErrParentNotFound indicates the requested parent value is absent.
	ErrParentNotFound = errors.New("dag: parent not found")

	// ErrNodeNotFound indicates the requested node value is absent.
	ErrNodeNotFound = errors.New("dag: node not found")

	// ErrRootDeletion indicates an attempt to delete the root node.
	ErrRootDeletion = errors.New("dag: root cannot be deleted")

	// ErrRootChild indicates an insert that would attach the root as a
	// child of another node.
	ErrRootChild = errors.New("dag: root cannot become a child")

	// ErrCycle indicates an edge was refused because the graph was built
	// with WithAcyclic and the edge would close a directed cycle.
	ErrCycle = errors.New("dag: edge would create a cycle")

	// ErrInvalidHandle indicates a Handle that does not address a live node,
	// typically one recycled by Delete or Clear.
	ErrInvalidHandle = errors.New("dag: invalid handle")
)

// Handle addresses a node slot in the graph's arena. A Handle stays valid
// until Delete or Clear recycles the slot it names.
type Handle int

// NoHandle is the null Handle; it never addresses a node.
const NoHandle Handle = -1

// node is one arena slot: the stored value plus its ordered child edges.
// A freed slot keeps its memory but drops its children and clears inUse.
type node[T comparable] struct {
	value    T
	children *deque.Deque[Handle]
	inUse    bool
}

// Option configures a Graph at construction.
type Option func(*config)

type config struct {
	acyclic bool
}

// WithAcyclic makes Insert and Reparent refuse edges that would close a
// directed cycle, returning ErrCycle. Without it such edges are accepted
// and traversals absorb the cycle through their visited discipline.
func WithAcyclic() Option {
	return func(c *config) { c.acyclic = true }
}

func defaultConfig() config {
	return config{acyclic: false}
}
