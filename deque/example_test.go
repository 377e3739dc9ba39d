package deque_test

import (
	"fmt"

	"github.com/elandric/dagrove/deque"
)

// ExampleDeque shows pushes at both ends, indexed access, and
// removal-by-value.
func ExampleDeque() {
	d := deque.New[int](0)
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)

	fmt.Println(d.Values())
	fmt.Println(d.At(1))

	d.EraseFirst(2)
	fmt.Println(d.Values())
	// Output:
	// [1 2 3]
	// 2
	// [1 3]
}

// ExampleQueue demonstrates the FIFO discipline.
func ExampleQueue() {
	var q deque.Queue[string]
	q.Enqueue("first")
	q.Enqueue("second")

	for !q.Empty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// first
	// second
}

// ExampleStack demonstrates the LIFO discipline.
func ExampleStack() {
	var s deque.Stack[string]
	s.Push("first")
	s.Push("second")

	for !s.Empty() {
		v, _ := s.Pop()
		fmt.Println(v)
	}
	// Output:
	// second
	// first
}
