package deque

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Find returns the index of the first occurrence of x in d or -1 if absent.
// It is not a method so that Deque can hold elements that are not comparable.
func Find[T comparable](d *Deque[T], x T) int {
	return d.FindFunc(func(y T) bool { return x == y })
}

// Contains reports whether x is in d.
func Contains[T comparable](d *Deque[T], x T) bool {
	return Find(d, x) >= 0
}

// Equal reports whether both deques have the same length
// and the same elements in the same order.
// A nil deque is equal to an empty one.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(x, y T) bool { return x == y })
}

// FindFunc returns the index of the first element satisfying f
// or -1 if none do.
func (d *Deque[T]) FindFunc(f func(T) bool) int {
	a, b := d.slices(0, d.Len())
	if i := slices.IndexFunc(a, f); i >= 0 {
		return i
	}
	if i := slices.IndexFunc(b, f); i >= 0 {
		return len(a) + i
	}
	return -1
}

// ContainsFunc reports whether some element satisfies f.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.FindFunc(f) >= 0
}

// EqualFunc reports whether both deques have the same length
// and eq reports true for every pair of elements at the same index.
func (d *Deque[T]) EqualFunc(other *Deque[T], eq func(T, T) bool) bool {
	if d == other {
		return true
	}
	n := d.Len()
	if n != other.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if !eq(d.buf[d.phys(i)], other.buf[other.phys(i)]) {
			return false
		}
	}
	return true
}

// String formats the deque as its elements in braces,
// like "{1, 2, 3}". An empty deque is "{}".
func (d *Deque[T]) String() string {
	sb := new(strings.Builder)
	sb.WriteString("{")
	for i, x := range d.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, x)
	}
	sb.WriteString("}")
	return sb.String()
}

// CopyTo has the same semantics as the copy built-in function:
// it copies elements from the front of the deque until dst is full
// or the deque is exhausted, and returns the number of elements copied.
func (d *Deque[T]) CopyTo(dst []T) int {
	a, b := d.slices(0, d.Len())
	n := copy(dst, a)
	return n + copy(dst[n:], b)
}

// Slice returns a newly allocated slice holding the elements in order.
func (d *Deque[T]) Slice() []T {
	s := make([]T, d.Len())
	d.CopyTo(s)
	return s
}

// SliceTo copies the elements at [from, until) to dst.
// It returns an error if the range is invalid
// or dst is shorter than the range.
func (d *Deque[T]) SliceTo(dst []T, from, until int) error {
	if err := d.checkRange(from, until); err != nil {
		return err
	}
	if len(dst) < until-from {
		return invalidArgumentf("destination of length %d cannot hold %d elements", len(dst), until-from)
	}
	a, b := d.slices(from, until)
	copy(dst[copy(dst, a):], b)
	return nil
}

// ReverseCopyTo copies elements from the back of the deque to dst
// until dst is full or the deque is exhausted,
// and returns the number of elements copied.
func (d *Deque[T]) ReverseCopyTo(dst []T) int {
	n := min(len(dst), d.Len())
	d.ReverseSliceTo(dst, d.Len()-n, d.Len())
	return n
}

// ReverseSliceTo copies the elements at [from, until) to dst
// in reverse order: dst[0] receives the element at until-1
// and dst[until-from-1] the element at from.
// It returns an error if the range is invalid
// or dst is shorter than the range.
func (d *Deque[T]) ReverseSliceTo(dst []T, from, until int) error {
	if err := d.checkRange(from, until); err != nil {
		return err
	}
	if len(dst) < until-from {
		return invalidArgumentf("destination of length %d cannot hold %d elements", len(dst), until-from)
	}
	a, b := d.slices(from, until)
	n := until - from
	for i, x := range a {
		dst[n-1-i] = x
	}
	for i, x := range b {
		dst[n-1-len(a)-i] = x
	}
	return nil
}

// All returns an iterator over index-value pairs from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, d.buf[d.phys(i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range d.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, d.buf[d.phys(i)]) {
				return
			}
		}
	}
}

// Layout describes the backing storage of a Deque.
type Layout struct {
	Capacity int
	Origin   int // slot holding index 0
	Len      int
}

// Diagnostics returns the current storage layout.
// It exists for tests and debugging; programs should not depend on it.
func (d *Deque[T]) Diagnostics() Layout {
	if d == nil {
		return Layout{}
	}
	return Layout{Capacity: len(d.buf), Origin: d.origin, Len: d.n}
}
