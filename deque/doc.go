// Package deque provides a generic double-ended queue backed by a ring
// buffer, plus thin Queue (FIFO) and Stack (LIFO) adapters built on it.
//
// What:
//
//   - Deque[T]: O(1) amortized PushBack/PushFront, O(1) PopFront/PopBack,
//     slice-like indexed access via At/Set, and O(n) EraseFirst for
//     removal-by-value.
//   - Queue[T]: Enqueue/Dequeue/Empty — the work-list discipline for
//     level-order traversal.
//   - Stack[T]: Push/Pop/Empty — the work-list discipline for depth-order
//     traversal.
//
// Why:
//
//	The dag package stores every child-edge list in a Deque and drives both
//	of its search disciplines through the Queue and Stack adapters, so one
//	storage strategy serves sequencing, FIFO, and LIFO uses.
//
// Complexity:
//
//   - PushBack/PushFront: amortized O(1), worst-case O(n) on growth
//   - PopFront/PopBack/At/Set/Len: O(1)
//   - EraseFirst: O(n)
//
// Errors:
//
//   - ErrEmpty: PopFront, PopBack, Dequeue, or Pop on an empty container.
package deque
