// Package sequence provides pure helpers for maintaining an ordered list of
// identifiers, used for the per-apartment delivery priority sequence.
package sequence

// Reorder returns a copy of list with the element at from moved to to.
// Out-of-range indexes return the list unchanged.
func Reorder[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	item := out[from]
	if from < to {
		copy(out[from:], out[from+1:to+1])
	} else {
		copy(out[to+1:], out[to:from])
	}
	out[to] = item
	return out
}

// Renumber assigns 1-based positions to the given ids in order.
func Renumber[T comparable](ids []T) map[T]int {
	positions := make(map[T]int, len(ids))
	for i, id := range ids {
		if _, seen := positions[id]; seen {
			continue
		}
		positions[id] = i + 1
	}
	return positions
}
