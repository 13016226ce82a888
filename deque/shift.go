package deque

// shiftTowardFront moves the elements at [from, until) one slot toward
// the front of the backing array, wrapping from slot 0 to the last slot.
// The slot before from is overwritten and the slot that held until-1
// becomes free. If from is 0, the origin moves with the elements,
// so [0, until) keep their indices and the gap is at index until.
func (d *Deque[T]) shiftTowardFront(from, until int) {
	src := d.phys(from)
	dst := d.physBefore(from, 1)
	wrapCopy(d.buf, dst, src, until-from)
	if from == 0 {
		d.origin = dst
	}
}

// shiftTowardBack moves the elements at [from, until) one slot toward
// the back of the backing array, wrapping from the last slot to slot 0.
// The slot at until is overwritten and the slot that held from
// becomes free. If from is 0, the origin moves with the elements.
func (d *Deque[T]) shiftTowardBack(from, until int) {
	src := d.phys(from)
	dst := d.phys(from + 1)
	wrapCopy(d.buf, dst, src, until-from)
	if from == 0 {
		d.origin = dst
	}
}

// wrapCopy copies a potentially wrapping block of memory n long from src to dst.
// The circular distance between dst and src plus n must be no larger than len(array)
// (i.e. there must be at most one continuous overlapping region between src and dst).
func wrapCopy[T any](array []T, dst, src, n int) {
	if src == dst || n == 0 {
		return
	}
	dstAfterSrc := wrapIndex(dst-src, len(array)) < n
	srcPreWrapLen := len(array) - src
	dstPreWrapLen := len(array) - dst
	srcWraps := srcPreWrapLen < n
	dstWraps := dstPreWrapLen < n

	switch {
	case !srcWraps && !dstWraps:
		copy(array[dst:], array[src:src+n])
	case !dstAfterSrc && !srcWraps && dstWraps:
		copy(array[dst:], array[src:src+dstPreWrapLen])
		copy(array, array[src+dstPreWrapLen:src+n])
	case dstAfterSrc && !srcWraps && dstWraps:
		copy(array, array[src+dstPreWrapLen:src+n])
		copy(array[dst:], array[src:src+dstPreWrapLen])
	case !dstAfterSrc && srcWraps && !dstWraps:
		copy(array[dst:], array[src:src+srcPreWrapLen])
		copy(array[dst+srcPreWrapLen:], array[:n-srcPreWrapLen])
	case dstAfterSrc && srcWraps && !dstWraps:
		copy(array[dst+srcPreWrapLen:], array[:n-srcPreWrapLen])
		copy(array[dst:], array[src:src+srcPreWrapLen])
	case !dstAfterSrc && srcWraps && dstWraps:
		delta := dstPreWrapLen - srcPreWrapLen
		copy(array[dst:], array[src:src+srcPreWrapLen])
		copy(array[dst+srcPreWrapLen:], array[:delta])
		copy(array, array[delta:delta+n-dstPreWrapLen])
	default:
		delta := srcPreWrapLen - dstPreWrapLen
		copy(array[delta:], array[:n-srcPreWrapLen])
		copy(array, array[len(array)-delta:])
		copy(array[dst:], array[src:src+dstPreWrapLen])
	}
}

// wrapIndex maps any integer to [0, size).
func wrapIndex(i, size int) int {
	i %= size
	if i < 0 {
		i += size
	}
	return i
}
