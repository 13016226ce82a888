package deque

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIteratorStability(t *testing.T) {
	d := New[int]()
	d.AddAll(0, 1, 2, 3, 4)
	it := d.Begin().Plus(2)
	if got, err := it.Value(); err != nil || got != 2 {
		t.Fatalf("it.Value() = %d, %v; want 2, <nil>", got, err)
	}
	d.AddFirst(9)
	if got, want := d.String(), "{9, 0, 1, 2, 3, 4}"; got != want {
		t.Errorf("d = %s; want %s", got, want)
	}
	if got, err := it.Value(); err != nil || got != 1 {
		t.Errorf("after AddFirst, it.Value() = %d, %v; want 1, <nil>", got, err)
	}
	if got := it.Position(); got != 2 {
		t.Errorf("it.Position() = %d; want 2", got)
	}
}

func TestStaleEnd(t *testing.T) {
	d := New[int]()
	d.AddAll(0, 1, 2)
	end := d.CEnd()
	if _, err := end.Value(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("end.Value() = _, %v; want %v", err, ErrOutOfRange)
	}
	d.Add(3)
	if got, err := end.Value(); err != nil || got != 3 {
		t.Errorf("after Add, end.Value() = %d, %v; want 3, <nil>", got, err)
	}
	if d.CEnd().Equal(end) {
		t.Error("d.CEnd() equals end captured before Add")
	}

	rend := d.CREnd()
	d.Skip(1)
	if got, err := rend.Plus(-1).Value(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("after Skip, rend.Plus(-1).Value() = %d, %v; want _, %v", got, err, ErrOutOfRange)
	}
}

func TestIteratorArithmetic(t *testing.T) {
	d, err := NewWithCapacity[int](DefaultCapacity)
	if err != nil {
		t.Fatal(err)
	}
	d.origin = 7
	d.AddAll(seq(0, 10)...)

	it := d.CBegin()
	for i := 0; i < 8; i++ {
		checkIteratorArithmetic(t, it, i)
		it.Next()
	}

	rit := d.CRBegin()
	for i := 0; i < 8; i++ {
		checkIteratorArithmetic(t, rit, 9-i)
		rit.Next()
	}
}

// checkIteratorArithmetic checks that it refers to want in a deque
// with at least want+3 elements (or want-2 counting backward).
func checkIteratorArithmetic[D Direction](t *testing.T, it ConstIter[int, D], want int) {
	t.Helper()
	var dir D
	step := 1
	if _, ok := any(dir).(Reverse); ok {
		step = -1
	}
	check := func(desc string, got int, err error, want int) {
		t.Helper()
		if err != nil || got != want {
			t.Errorf("position %d: %s = %d, %v; want %d, <nil>", it.Position(), desc, got, err, want)
		}
	}

	got, err := it.Value()
	check("Value()", got, err, want)
	got, err = it.At(0)
	check("At(0)", got, err, want)
	got, err = it.At(2)
	check("At(2)", got, err, want+2*step)

	c := it
	c.Next()
	got, err = c.Value()
	check("after Next, Value()", got, err, want+step)
	c.Prev()
	got, err = c.Value()
	check("after Next, Prev, Value()", got, err, want)
	c.Advance(2)
	got, err = c.At(-2)
	check("after Advance(2), At(-2)", got, err, want)
	got, err = c.Plus(-2).Value()
	check("after Advance(2), Plus(-2).Value()", got, err, want)
	c.Advance(-2)
	if !c.Equal(it) {
		t.Errorf("position %d: after Advance(2), Advance(-2), iterator at %d", it.Position(), c.Position())
	}
}

func TestIteratorCompare(t *testing.T) {
	d := New[int]()
	d.AddAll(0, 1, 2)
	lesser := d.CBegin()
	greater := lesser.Plus(1)

	if got := greater.Sub(lesser); got != 1 {
		t.Errorf("greater.Sub(lesser) = %d; want 1", got)
	}
	if got := lesser.Sub(greater); got != -1 {
		t.Errorf("lesser.Sub(greater) = %d; want -1", got)
	}
	if got := greater.Compare(lesser); got != 1 {
		t.Errorf("greater.Compare(lesser) = %d; want 1", got)
	}
	if got := lesser.Compare(greater); got != -1 {
		t.Errorf("lesser.Compare(greater) = %d; want -1", got)
	}
	if greater.Equal(lesser) {
		t.Error("greater.Equal(lesser) = true; want false")
	}

	same := d.Begin().Const()
	if got := same.Compare(lesser); got != 0 {
		t.Errorf("same.Compare(lesser) = %d; want 0", got)
	}
	if !same.Equal(lesser) {
		t.Error("same.Equal(lesser) = false; want true")
	}
	if got := d.CEnd().Sub(d.CBegin()); got != d.Len() {
		t.Errorf("d.CEnd().Sub(d.CBegin()) = %d; want %d", got, d.Len())
	}
}

func TestIteratorCompareDifferentDeques(t *testing.T) {
	d1, d2 := New[int](), New[int]()
	if d1.CBegin().Equal(d2.CBegin()) {
		t.Error("iterators of different deques are equal")
	}

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Sub panicked with %v; want %v", err, ErrInvalidArgument)
		}
	}()
	d1.CBegin().Sub(d2.CBegin())
}

func TestIteratorSet(t *testing.T) {
	d := New[int]()
	d.AddAll(0, 1, 2, 3)

	it := d.Begin()
	it.Next()
	if err := it.Set(10); err != nil {
		t.Fatal(err)
	}
	if err := it.SetAt(1, 20); err != nil {
		t.Fatal(err)
	}
	rit := d.RBegin()
	if err := rit.Set(30); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 10, 20, 30}, toSlice(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if err := d.End().Set(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("d.End().Set(0) = %v; want %v", err, ErrOutOfRange)
	}
	if err := d.Begin().Plus(-1).Set(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("d.Begin().Plus(-1).Set(0) = %v; want %v", err, ErrOutOfRange)
	}
	if err := d.REnd().Set(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("d.REnd().Set(0) = %v; want %v", err, ErrOutOfRange)
	}
}

func TestIteratorLoop(t *testing.T) {
	d := New[int]()
	d.AddAll(seq(0, 20)...)

	var got []int
	for it, end := d.CBegin(), d.CEnd(); !it.Equal(end); it.Next() {
		x, err := it.Value()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, x)
	}
	if diff := cmp.Diff(seq(0, 20), got); diff != "" {
		t.Errorf("forward (-want +got):\n%s", diff)
	}

	got = got[:0]
	for it, end := d.CRBegin(), d.CREnd(); !it.Equal(end); it.Next() {
		x, err := it.Value()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, x)
	}
	want := make([]int, 20)
	d.ReverseCopyTo(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reverse (-want +got):\n%s", diff)
	}
}

func TestInsertIter(t *testing.T) {
	d := New[int]()
	d.AddAll(3, 4, 5)

	it := d.Begin().Plus(1)
	if err := d.InsertIter(10, it); err != nil {
		t.Fatal(err)
	}
	if got, err := it.Value(); err != nil || got != 10 {
		t.Errorf("after InsertIter, it.Value() = %d, %v; want 10, <nil>", got, err)
	}

	rit := d.CRBegin()
	if err := d.InsertIter(20, rit); err != nil {
		t.Fatal(err)
	}
	if got, err := rit.Value(); err != nil || got != 20 {
		t.Errorf("after InsertIter, rit.Value() = %d, %v; want 20, <nil>", got, err)
	}
	if diff := cmp.Diff([]int{3, 10, 4, 5, 20}, toSlice(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	other := New[int]()
	if err := d.InsertIter(0, other.Begin()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("d.InsertIter(0, other.Begin()) = %v; want %v", err, ErrInvalidArgument)
	}
	if err := d.InsertIter(0, d.CEnd().Plus(1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("d.InsertIter(0, past end) = %v; want %v", err, ErrOutOfRange)
	}
	if got, want := d.Len(), 5; got != want {
		t.Errorf("after failed inserts, d.Len() = %d; want %d", got, want)
	}
}

func TestRemoveIter(t *testing.T) {
	d := New[int]()
	d.AddAll(3, 4, 5)
	it := d.Begin()
	for _, want := range []int{3, 4, 5} {
		if got, err := d.RemoveIter(it); err != nil || got != want {
			t.Errorf("d.RemoveIter(it) = %d, %v; want %d, <nil>", got, err, want)
		}
	}
	if _, err := d.RemoveIter(it); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("empty d.RemoveIter(it) = _, %v; want %v", err, ErrOutOfRange)
	}

	d.AddAll(3, 4, 5)
	if got, err := d.RemoveIter(d.CRBegin()); err != nil || got != 5 {
		t.Errorf("d.RemoveIter(d.CRBegin()) = %d, %v; want 5, <nil>", got, err)
	}
	if got, err := d.RemoveIter(d.RBegin().Plus(1)); err != nil || got != 3 {
		t.Errorf("d.RemoveIter(d.RBegin().Plus(1)) = %d, %v; want 3, <nil>", got, err)
	}

	other := New[int]()
	other.Add(4)
	if _, err := d.RemoveIter(other.CBegin()); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("d.RemoveIter(other.CBegin()) = _, %v; want %v", err, ErrInvalidArgument)
	}
	if diff := cmp.Diff([]int{4}, toSlice(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestZeroIterator(t *testing.T) {
	var it ConstIterator[int]
	if _, err := it.Value(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("zero it.Value() = _, %v; want %v", err, ErrOutOfRange)
	}
}
