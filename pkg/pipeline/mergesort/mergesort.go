// Package mergesort implements a stable top-down merge sort driven by a
// chooseLeft predicate instead of a three-way comparator.
package mergesort

import "github.com/shpitdev/sorting-tool/pkg/pipeline/core"

// Sort returns a sorted copy of data. The input slice is left untouched.
//
// Elements that chooseLeft does not separate in either direction keep their
// relative input order.
func Sort[T any](data []T, chooseLeft core.ChooseLeft[T]) []T {
	out := make([]T, len(data))
	copy(out, data)
	if len(out) <= 1 {
		return out
	}
	buf := make([]T, len(out))
	sortRange(out, buf, chooseLeft)
	return out
}

// sortRange sorts dst in place, using buf (same length) as merge scratch.
func sortRange[T any](dst, buf []T, chooseLeft core.ChooseLeft[T]) {
	if len(dst) <= 1 {
		return
	}
	half := len(dst) / 2
	sortRange(dst[:half], buf[:half], chooseLeft)
	sortRange(dst[half:], buf[half:], chooseLeft)

	// Already ordered across the split: nothing to merge.
	if !strictlyBefore(dst[half], dst[half-1], chooseLeft) {
		return
	}

	copy(buf, dst)
	left, right := buf[:half], buf[half:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Ties go to the left half.
		if strictlyBefore(right[j], left[i], chooseLeft) {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}

// strictlyBefore holds when a goes before b and b does not also go before a,
// so both strict (<) and non-strict (<=) predicates keep ties in input order.
func strictlyBefore[T any](a, b T, chooseLeft core.ChooseLeft[T]) bool {
	return chooseLeft(a, b) && !chooseLeft(b, a)
}

// IsSorted reports whether no adjacent pair of data is out of order under chooseLeft.
func IsSorted[T any](data []T, chooseLeft core.ChooseLeft[T]) bool {
	for i := 1; i < len(data); i++ {
		if strictlyBefore(data[i], data[i-1], chooseLeft) {
			return false
		}
	}
	return true
}
