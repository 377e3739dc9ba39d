// Package deque implements the ring-buffer Deque and its FIFO/LIFO adapters.
package deque

import "errors"

// ErrEmpty is returned when an element is removed from an empty container.
var ErrEmpty = errors.New("deque: empty")

// minCapacity is the smallest buffer allocated once the deque holds data.
// Kept a power of two so the ring index math stays a cheap mask.
const minCapacity = 8

// Deque is a double-ended queue over a contiguous ring buffer.
// The zero value is ready to use. Not safe for concurrent use.
type Deque[T comparable] struct {
	buf  []T
	head int // index of the logical first element
	size int // number of stored elements
}

// New returns a Deque pre-sized to hold at least capacity elements
// without reallocating.
// Complexity: O(capacity)
func New[T comparable](capacity int) *Deque[T] {
	d := &Deque[T]{}
	if capacity > 0 {
		n := minCapacity
		for n < capacity {
			n <<= 1
		}
		d.buf = make([]T, n)
	}
	return d
}

// Len reports the number of stored elements.
func (d *Deque[T]) Len() int { return d.size }

// At returns the i-th element counting from the front.
// Panics if i is out of range, mirroring slice indexing.
func (d *Deque[T]) At(i int) T {
	d.check(i)
	return d.buf[d.index(i)]
}

// Set overwrites the i-th element counting from the front.
// Panics if i is out of range, mirroring slice indexing.
func (d *Deque[T]) Set(i int, v T) {
	d.check(i)
	d.buf[d.index(i)] = v
}

// PushBack appends v at the back.
// Complexity: amortized O(1).
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.index(d.size)] = v
	d.size++
}

// PushFront prepends v at the front.
// Complexity: amortized O(1).
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = v
	d.size++
}

// PopFront removes and returns the front element.
// Returns ErrEmpty when the deque holds nothing.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero // release the reference for the GC
	d.head = d.wrap(d.head + 1)
	d.size--
	return v, nil
}

// PopBack removes and returns the back element.
// Returns ErrEmpty when the deque holds nothing.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.size == 0 {
		return zero, ErrEmpty
	}
	i := d.index(d.size - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.size--
	return v, nil
}

// EraseFirst removes the first element equal to v, preserving the order of
// the rest. Reports whether an element was removed.
// Complexity: O(n).
func (d *Deque[T]) EraseFirst(v T) bool {
	for i := 0; i < d.size; i++ {
		if d.buf[d.index(i)] != v {
			continue
		}
		// Shift the tail left over the gap, then drop the last slot.
		for j := i; j < d.size-1; j++ {
			d.buf[d.index(j)] = d.buf[d.index(j + 1)]
		}
		var zero T
		d.buf[d.index(d.size-1)] = zero
		d.size--
		return true
	}
	return false
}

// Values returns the elements front-to-back as a fresh slice.
// Complexity: O(n).
func (d *Deque[T]) Values() []T {
	out := make([]T, d.size)
	for i := 0; i < d.size; i++ {
		out[i] = d.buf[d.index(i)]
	}
	return out
}

// Clone returns an independent copy holding the same elements.
// Complexity: O(n).
func (d *Deque[T]) Clone() *Deque[T] {
	c := New[T](d.size)
	for i := 0; i < d.size; i++ {
		c.PushBack(d.buf[d.index(i)])
	}
	return c
}

// index maps a logical offset from the front to a buffer position.
func (d *Deque[T]) index(i int) int { return d.wrap(d.head + i) }

// wrap folds a buffer position into [0, len(buf)). len(buf) is always a
// power of two, so a mask suffices.
func (d *Deque[T]) wrap(i int) int { return i & (len(d.buf) - 1) }

func (d *Deque[T]) check(i int) {
	if i < 0 || i >= d.size {
		panic("deque: index out of range")
	}
}

// grow ensures room for one more element, doubling the ring when full and
// unrolling it so the front lands at position zero.
func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}
	n := len(d.buf) * 2
	if n == 0 {
		n = minCapacity
	}
	buf := make([]T, n)
	for i := 0; i < d.size; i++ {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}
