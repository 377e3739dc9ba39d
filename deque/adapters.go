package deque

// Queue is a FIFO view over a Deque: elements leave in arrival order.
// The zero value is ready to use.
type Queue[T comparable] struct {
	d Deque[T]
}

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) { q.d.PushBack(v) }

// Dequeue removes and returns the oldest element.
// Returns ErrEmpty when the queue holds nothing.
func (q *Queue[T]) Dequeue() (T, error) { return q.d.PopFront() }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.d.Len() == 0 }

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int { return q.d.Len() }

// Stack is a LIFO view over a Deque: the most recent push leaves first.
// The zero value is ready to use.
type Stack[T comparable] struct {
	d Deque[T]
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.d.PushBack(v) }

// Pop removes and returns the top element.
// Returns ErrEmpty when the stack holds nothing.
func (s *Stack[T]) Pop() (T, error) { return s.d.PopBack() }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.d.Len() == 0 }

// Len reports the number of stacked elements.
func (s *Stack[T]) Len() int { return s.d.Len() }
