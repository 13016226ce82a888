package deque

import "fmt"

// Direction determines how an iterator position maps to an index.
// The only implementations are Forward and Reverse.
type Direction interface {
	// index returns the index of the element at pos in a deque of length n.
	index(pos, n int) int
	// insertIndex returns the index an element inserted at pos receives.
	insertIndex(pos, n int) int
}

// Forward iterates from the front to the back:
// position p refers to index p.
type Forward struct{}

func (Forward) index(pos, n int) int       { return pos }
func (Forward) insertIndex(pos, n int) int { return pos }

// Reverse iterates from the back to the front:
// position p refers to index Len()-p-1.
type Reverse struct{}

func (Reverse) index(pos, n int) int       { return n - pos - 1 }
func (Reverse) insertIndex(pos, n int) int { return n - pos }

// ConstIter is a read-only position in a Deque.
//
// A ConstIter stores a plain integer position that is resolved to an
// element only when it is dereferenced, using the deque's length at that
// time. Mutating the deque never moves an iterator: after d.AddFirst(x),
// an iterator that referred to the third element refers to what is now
// the third element, which was previously the second.
//
// Arithmetic on an iterator never fails; dereferencing a position
// outside the deque returns an error wrapping ErrOutOfRange.
type ConstIter[T any, D Direction] struct {
	d   *Deque[T]
	pos int
}

// Iter is a position in a Deque that can also replace elements.
type Iter[T any, D Direction] struct {
	ConstIter[T, D]
}

// Iterator is a mutable front-to-back iterator.
type Iterator[T any] = Iter[T, Forward]

// ConstIterator is a read-only front-to-back iterator.
type ConstIterator[T any] = ConstIter[T, Forward]

// ReverseIterator is a mutable back-to-front iterator.
type ReverseIterator[T any] = Iter[T, Reverse]

// ConstReverseIterator is a read-only back-to-front iterator.
type ConstReverseIterator[T any] = ConstIter[T, Reverse]

// Cursor is implemented by every iterator type of this package.
// It lets Deque.InsertIter and Deque.RemoveIter accept any of them.
type Cursor[T any] interface {
	owner() *Deque[T]
	index() int
	insertIndex() int
}

// Position returns the raw position of the iterator.
func (it ConstIter[T, D]) Position() int {
	return it.pos
}

// Next moves the iterator one position forward.
func (it *ConstIter[T, D]) Next() {
	it.pos++
}

// Prev moves the iterator one position back.
func (it *ConstIter[T, D]) Prev() {
	it.pos--
}

// Advance moves the iterator k positions. k may be negative.
func (it *ConstIter[T, D]) Advance(k int) {
	it.pos += k
}

// Plus returns a copy of the iterator moved k positions.
func (it ConstIter[T, D]) Plus(k int) ConstIter[T, D] {
	it.pos += k
	return it
}

// Value returns the element the iterator refers to.
func (it ConstIter[T, D]) Value() (T, error) {
	return it.At(0)
}

// At returns the element k positions away from the iterator.
func (it ConstIter[T, D]) At(k int) (T, error) {
	i, err := it.resolve(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return it.d.buf[it.d.phys(i)], nil
}

// Equal reports whether both iterators refer to the same position
// of the same deque.
func (it ConstIter[T, D]) Equal(other ConstIter[T, D]) bool {
	return it.d == other.d && it.pos == other.pos
}

// Compare returns -1, 0, or +1 depending on whether it is before,
// at, or after other. It panics if the iterators belong to
// different deques.
func (it ConstIter[T, D]) Compare(other ConstIter[T, D]) int {
	it.mustShareDeque(other)
	switch {
	case it.pos < other.pos:
		return -1
	case it.pos > other.pos:
		return 1
	default:
		return 0
	}
}

// Sub returns the number of positions from other to it.
// It panics if the iterators belong to different deques.
func (it ConstIter[T, D]) Sub(other ConstIter[T, D]) int {
	it.mustShareDeque(other)
	return it.pos - other.pos
}

func (it ConstIter[T, D]) mustShareDeque(other ConstIter[T, D]) {
	if it.d != other.d {
		panic(fmt.Errorf("deque: comparing iterators of different deques: %w", ErrInvalidArgument))
	}
}

// resolve returns the index of the element k positions away,
// checked against the current length.
func (it ConstIter[T, D]) resolve(k int) (int, error) {
	var dir D
	n := it.d.Len()
	i := dir.index(it.pos+k, n)
	if i < 0 || i >= n {
		return 0, outOfRangef("iterator position %d refers to index %d out of range with length %d", it.pos+k, i, n)
	}
	return i, nil
}

func (it ConstIter[T, D]) owner() *Deque[T] { return it.d }

func (it ConstIter[T, D]) index() int {
	var dir D
	return dir.index(it.pos, it.d.Len())
}

func (it ConstIter[T, D]) insertIndex() int {
	var dir D
	return dir.insertIndex(it.pos, it.d.Len())
}

// Const returns a read-only copy of the iterator.
func (it Iter[T, D]) Const() ConstIter[T, D] {
	return it.ConstIter
}

// Plus returns a copy of the iterator moved k positions.
func (it Iter[T, D]) Plus(k int) Iter[T, D] {
	it.pos += k
	return it
}

// Set replaces the element the iterator refers to.
func (it Iter[T, D]) Set(x T) error {
	return it.SetAt(0, x)
}

// SetAt replaces the element k positions away from the iterator.
func (it Iter[T, D]) SetAt(k int, x T) error {
	i, err := it.resolve(k)
	if err != nil {
		return err
	}
	it.d.buf[it.d.phys(i)] = x
	return nil
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{d: d}}
}

// End returns an iterator one past the last element.
// The position is fixed when End is called:
// it does not follow later changes to the length.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{d: d, pos: d.Len()}}
}

// CBegin returns a read-only iterator at the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{d: d}
}

// CEnd returns a read-only iterator one past the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{d: d, pos: d.Len()}
}

// RBegin returns a reverse iterator at the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{ConstReverseIterator[T]{d: d}}
}

// REnd returns a reverse iterator one before the first element.
// Like End, its position is fixed when REnd is called.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{ConstReverseIterator[T]{d: d, pos: d.Len()}}
}

// CRBegin returns a read-only reverse iterator at the last element.
func (d *Deque[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{d: d}
}

// CREnd returns a read-only reverse iterator one before the first element.
func (d *Deque[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{d: d, pos: d.Len()}
}

// InsertIter inserts x at the iterator's position.
// For a forward iterator, x is inserted before the element it refers to.
// For a reverse iterator, x is inserted after it (in front-to-back order),
// so that in both cases x is what the iterator refers to afterward.
// It returns an error if the iterator belongs to another deque
// or its position is out of range.
func (d *Deque[T]) InsertIter(x T, at Cursor[T]) error {
	if at.owner() != d {
		return invalidArgumentf("iterator does not belong to this deque")
	}
	return d.Insert(x, at.insertIndex())
}

// RemoveIter removes the element the iterator refers to and returns it.
// It returns an error if the iterator belongs to another deque
// or does not refer to an element.
func (d *Deque[T]) RemoveIter(at Cursor[T]) (T, error) {
	if at.owner() != d {
		var zero T
		return zero, invalidArgumentf("iterator does not belong to this deque")
	}
	return d.RemoveAt(at.index())
}
