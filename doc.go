// Package dagrove is an in-memory rooted directed graph with shared
// children: a node may hang under several parents at once, so the
// structure is a DAG rather than a tree.
//
// What you get:
//
//   - One designated root owning reachability for the whole structure
//   - Level-order (BFS) and depth-order (DFS) search over one shared
//     traversal engine, differing only in work-list discipline
//   - Insert that links an existing node under one more parent instead of
//     duplicating it, giving nodes their multi-parent lifetime
//   - Deletion guarded by incoming-edge counting: a node goes only when
//     its last edge does, and slots it alone kept alive go with it
//   - Reparenting that moves a single child edge between parents
//   - Lazy display traversals yielding (value, child values) pairs
//
// Everything is organized under two packages:
//
//	dag/   - the Graph container, searches, mutation, traversal
//	deque/ - the ring-buffer sequence plus Queue/Stack work-list adapters
//
// Quick ASCII example:
//
//	    1
//	   /|\
//	  5 3 7        g := dag.NewWithChildren(1, []int{5, 3, 7})
//	 / \           g.Insert(5, 2); g.Insert(5, 9)
//	2   9          g.Insert(3, 2)   // 2 now has two parents
//
// Reads may run concurrently: visitation state lives on each walk's stack,
// not on the nodes. Mutation must be serialized by the caller.
//
// See the dag and deque package docs for the full API surface, complexity
// notes, and the error taxonomy.
//
//	go get github.com/elandric/dagrove/dag
package dagrove
