// Package deque provides a double-ended queue with constant-time
// indexed access, backed by a single circular slice.
//
// Elements can be appended, prepended, and read by index in amortized
// O(1). Insertions and removals in the middle shift whichever side of
// the deque is shorter. The backing slice only grows.
//
// A Deque is not safe for concurrent use.
package deque

import (
	"iter"
)

// DefaultCapacity is the capacity of a Deque returned by New.
const DefaultCapacity = 11

// Deque is a double-ended queue.
// The zero value is an empty deque with no capacity.
type Deque[T any] struct {
	buf    []T
	origin int // slot holding index 0
	n      int
}

// New returns an empty deque with DefaultCapacity.
func New[T any]() *Deque[T] {
	return &Deque[T]{buf: make([]T, DefaultCapacity)}
}

// NewWithCapacity returns an empty deque that can hold capacity elements
// before growing. It returns an error if capacity is negative.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, invalidArgumentf("negative capacity %d", capacity)
	}
	return &Deque[T]{buf: make([]T, capacity)}, nil
}

// Len returns the number of elements in the deque or 0 if d is nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.n
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.Len() == 0
}

// Cap returns the number of elements the deque can hold
// before reallocating.
func (d *Deque[T]) Cap() int {
	if d == nil {
		return 0
	}
	return len(d.buf)
}

// phys returns the slot holding the element at offset from the front.
// offset must be less than twice the capacity.
func (d *Deque[T]) phys(offset int) int {
	i := d.origin + offset
	if i >= len(d.buf) {
		// Note that origin+offset == cap maps to slot 0.
		i -= len(d.buf)
	}
	return i
}

// physBefore returns the slot distance positions before
// the slot holding offset from.
func (d *Deque[T]) physBefore(from, distance int) int {
	i := d.phys(from)
	if i >= distance {
		return i - distance
	}
	return len(d.buf) - (distance - i)
}

// writeSlot returns the slot just past the last element.
func (d *Deque[T]) writeSlot() int {
	return d.phys(d.n)
}

// slices returns the elements at [from, until) as at most two slices
// of the backing array. The caller must have validated the range.
func (d *Deque[T]) slices(from, until int) (a, b []T) {
	if from == until {
		return nil, nil
	}
	start := d.phys(from)
	end := start + (until - from)
	if end <= len(d.buf) {
		return d.buf[start:end], nil
	}
	return d.buf[start:], d.buf[:end-len(d.buf)]
}

// ensureCapacity grows the backing array if it holds fewer than
// required slots. Elements are moved to the front of the new array.
func (d *Deque[T]) ensureCapacity(required int) {
	if len(d.buf) >= required {
		return
	}
	newBuf := make([]T, growCapacity(required))
	a, b := d.slices(0, d.n)
	copy(newBuf[copy(newBuf, a):], b)
	d.buf = newBuf
	d.origin = 0
}

func (d *Deque[T]) ensureCanFit(amount int) {
	d.ensureCapacity(d.n + amount)
}

func growCapacity(required int) int {
	return required*2 + 1
}

// Add inserts x at the back of the deque.
func (d *Deque[T]) Add(x T) {
	d.ensureCanFit(1)
	d.buf[d.writeSlot()] = x
	d.n++
}

// AddFirst inserts x at the front of the deque.
func (d *Deque[T]) AddFirst(x T) {
	d.ensureCanFit(1)
	if d.origin == 0 {
		d.origin = len(d.buf) - 1
	} else {
		d.origin--
	}
	d.buf[d.origin] = x
	d.n++
}

// AddAll appends xs to the back of the deque in order.
// It reallocates at most once.
func (d *Deque[T]) AddAll(xs ...T) {
	if len(xs) == 0 {
		return
	}
	d.ensureCanFit(len(xs))
	w := d.writeSlot()
	n := copy(d.buf[w:], xs)
	copy(d.buf, xs[n:])
	d.n += len(xs)
}

// AddSeq appends every value of seq to the back of the deque.
func (d *Deque[T]) AddSeq(seq iter.Seq[T]) {
	for x := range seq {
		d.Add(x)
	}
}

// AddAllFirst calls AddFirst for each element of xs in order.
// The last element of xs becomes the front of the deque,
// so AddAllFirst(a, b, c) on an empty deque yields {c, b, a}.
func (d *Deque[T]) AddAllFirst(xs ...T) {
	d.ensureCanFit(len(xs))
	for _, x := range xs {
		d.AddFirst(x)
	}
}

// AddSeqFirst calls AddFirst for each value of seq in order.
func (d *Deque[T]) AddSeqFirst(seq iter.Seq[T]) {
	for x := range seq {
		d.AddFirst(x)
	}
}

// Insert inserts x so that its index is before.
// Insert(x, 0) is the same as AddFirst(x)
// and Insert(x, d.Len()) is the same as Add(x).
// It returns an error if before is outside [0, d.Len()].
//
// Insert moves whichever side of before has fewer elements,
// so it costs O(min(before, d.Len()-before)) amortized.
func (d *Deque[T]) Insert(x T, before int) error {
	switch {
	case before < 0 || before > d.n:
		return outOfRangef("insert index %d out of range [0, %d]", before, d.n)
	case before == 0:
		d.AddFirst(x)
		return nil
	case before == d.n:
		d.Add(x)
		return nil
	case d.n == len(d.buf):
		d.insertAndGrow(x, before)
		return nil
	}
	if before <= d.n/2 {
		d.shiftTowardFront(0, before)
	} else {
		d.shiftTowardBack(before, d.n)
	}
	d.n++
	d.buf[d.phys(before)] = x
	return nil
}

// insertAndGrow inserts x at before into a full deque,
// copying into the new array around the gap instead of shifting.
func (d *Deque[T]) insertAndGrow(x T, before int) {
	newBuf := make([]T, growCapacity(d.n+1))
	a, b := d.slices(0, before)
	i := copy(newBuf, a)
	i += copy(newBuf[i:], b)
	newBuf[i] = x
	a, b = d.slices(before, d.n)
	i++
	copy(newBuf[i+copy(newBuf[i:], a):], b)
	d.buf = newBuf
	d.origin = 0
	d.n++
}

// RemoveAt removes the element at index i and returns it.
// It returns an error if i is outside [0, d.Len()).
//
// RemoveAt moves whichever side of i has fewer elements,
// so it costs O(min(i, d.Len()-i)).
func (d *Deque[T]) RemoveAt(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	x := d.buf[d.phys(i)]
	var vacated int
	if i < d.n-1-i {
		vacated = d.origin
		d.shiftTowardBack(0, i)
	} else {
		vacated = d.phys(d.n - 1)
		d.shiftTowardFront(i+1, d.n)
	}
	var zero T
	d.buf[vacated] = zero
	d.n--
	return x, nil
}

// Skip removes the first k elements.
// It returns an error if the deque has fewer than k elements.
func (d *Deque[T]) Skip(k int) error {
	if err := d.checkAmount(k); err != nil {
		return err
	}
	d.zero(0, k)
	d.origin = d.phys(k)
	d.n -= k
	return nil
}

// SkipLast removes the last k elements.
// It returns an error if the deque has fewer than k elements.
func (d *Deque[T]) SkipLast(k int) error {
	if err := d.checkAmount(k); err != nil {
		return err
	}
	d.zero(d.n-k, d.n)
	d.n -= k
	return nil
}

// Clear removes every element, retaining the capacity.
func (d *Deque[T]) Clear() {
	d.zero(0, d.n)
	d.n = 0
}

// zero resets the slots holding [from, until)
// so the garbage collector can reclaim what they reference.
func (d *Deque[T]) zero(from, until int) {
	a, b := d.slices(from, until)
	clear(a)
	clear(b)
}

// At returns the element at index i, with 0 being the front.
// It returns an error if i is outside [0, d.Len()).
func (d *Deque[T]) At(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return d.buf[d.phys(i)], nil
}

// FromBack returns the element at index i counting from the back,
// with 0 being the last element.
func (d *Deque[T]) FromBack(i int) (T, error) {
	if i < 0 || i >= d.Len() {
		var zero T
		return zero, outOfRangef("index %d from back out of range with length %d", i, d.Len())
	}
	return d.buf[d.phys(d.n-1-i)], nil
}

// Set replaces the element at index i with x.
// It returns an error if i is outside [0, d.Len()).
func (d *Deque[T]) Set(i int, x T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.buf[d.phys(i)] = x
	return nil
}

// Peek returns the first element.
func (d *Deque[T]) Peek() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, outOfRangef("peek of empty deque")
	}
	return d.buf[d.origin], nil
}

// PeekLast returns the last element.
func (d *Deque[T]) PeekLast() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, outOfRangef("peek of empty deque")
	}
	return d.buf[d.phys(d.n-1)], nil
}

// Pop removes the first element and returns it.
func (d *Deque[T]) Pop() (T, error) {
	x, err := d.Peek()
	if err != nil {
		return x, err
	}
	d.Skip(1)
	return x, nil
}

// PopLast removes the last element and returns it.
func (d *Deque[T]) PopLast() (T, error) {
	x, err := d.PeekLast()
	if err != nil {
		return x, err
	}
	d.SkipLast(1)
	return x, nil
}

// PopSome removes the first k elements and copies them to dst
// front to back. On error, the deque is unchanged.
func (d *Deque[T]) PopSome(dst []T, k int) error {
	if err := d.SliceTo(dst, 0, k); err != nil {
		return err
	}
	return d.Skip(k)
}

// PopSomeLast removes the last k elements and copies them to dst
// as if PopLast was called k times: dst[0] is the last element
// and dst[k-1] is the last one popped.
func (d *Deque[T]) PopSomeLast(dst []T, k int) error {
	if err := d.checkAmount(k); err != nil {
		return err
	}
	if err := d.ReverseSliceTo(dst, d.Len()-k, d.Len()); err != nil {
		return err
	}
	return d.SkipLast(k)
}

// PopAll copies every element to dst front to back
// and then empties the deque.
func (d *Deque[T]) PopAll(dst []T) error {
	return d.PopSome(dst, d.Len())
}

// PopAllLast copies every element to dst back to front
// and then empties the deque.
func (d *Deque[T]) PopAllLast(dst []T) error {
	return d.PopSomeLast(dst, d.Len())
}

// Clone returns a deep copy of d whose capacity equals its length.
func (d *Deque[T]) Clone() *Deque[T] {
	c := new(Deque[T])
	c.CopyFrom(d)
	return c
}

// CopyFrom replaces the contents of d with a copy of src's elements.
// The previous backing array of d is discarded.
func (d *Deque[T]) CopyFrom(src *Deque[T]) {
	if d == src {
		return
	}
	newBuf := make([]T, src.Len())
	src.CopyTo(newBuf)
	d.buf = newBuf
	d.origin = 0
	d.n = len(newBuf)
}

// MoveFrom transfers src's backing array to d in O(1)
// and leaves src as an empty deque with no capacity.
func (d *Deque[T]) MoveFrom(src *Deque[T]) {
	if d == src {
		return
	}
	*d = *src
	*src = Deque[T]{}
}

func (d *Deque[T]) checkIndex(i int) error {
	if i < 0 || i >= d.Len() {
		return outOfRangef("index %d out of range with length %d", i, d.Len())
	}
	return nil
}

// checkAmount reports whether k elements can be removed.
func (d *Deque[T]) checkAmount(k int) error {
	if k < 0 {
		return invalidArgumentf("negative amount %d", k)
	}
	if k > d.Len() {
		return outOfRangef("cannot remove %d elements with length %d", k, d.Len())
	}
	return nil
}

// checkRange reports whether [from, until) is a valid range of indices.
func (d *Deque[T]) checkRange(from, until int) error {
	if from < 0 || from > until {
		return invalidArgumentf("bad range [%d, %d)", from, until)
	}
	if until > d.Len() {
		return outOfRangef("range [%d, %d) out of range with length %d", from, until, d.Len())
	}
	return nil
}
