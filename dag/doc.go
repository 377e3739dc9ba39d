// Package dag implements a mutable rooted directed graph in which a node
// may have more than one parent, i.e. a DAG rather than a tree.
//
// What:
//
//   - Graph[T]: a single designated root plus nodes reachable over directed
//     parent→child edges, stored in an arena of slots addressed by stable
//     Handle indices.
//   - Search: FindBFS (first match in level order) and FindDFS (first match
//     in depth order), both built on one work-list-parameterized walk.
//   - Mutation: Insert (link an existing node under one more parent, or
//     allocate a fresh one), Reparent (move a single child edge between
//     parents), Delete (unlink a node only when removing its last incoming
//     edge, then reclaim unreachable slots).
//   - Display: TraverseBFS/TraverseDFS yield lazy (value, child values)
//     pairs, each reachable node exactly once.
//
// Why:
//
//	Sharing a node under several parents needs a deletion-safety rule and a
//	traversal discipline that tolerates shared substructure. Deletion counts
//	incoming edges on demand and refuses to orphan a shared node; traversal
//	marks nodes at discovery so every walk is O(V+E) even when edges form a
//	cycle.
//
// Visitation state is a per-call set on the walk's stack frame, never stored
// on nodes, so independent concurrent reads of one Graph are safe. Mutation
// is not: confine writes to one goroutine or serialize them externally.
//
// Cycles: Insert and Reparent do not reject cycle-forming edges by default;
// walks still terminate and simply never re-expand a node. Construct with
// WithAcyclic to refuse such edges with ErrCycle instead.
//
// Complexity: every operation is bounded by O(V+E) over the reachable
// component; no operation blocks or suspends.
//
// Errors:
//
//   - ErrEmptyGraph:     operation on a graph with no root
//   - ErrParentNotFound: named parent value absent
//   - ErrNodeNotFound:   Delete target absent
//   - ErrRootDeletion:   Delete aimed at the root
//   - ErrRootChild:      Insert would make the root somebody's child
//   - ErrCycle:          edge refused under WithAcyclic
//   - ErrInvalidHandle:  handle does not address a live node
package dag
