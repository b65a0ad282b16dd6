package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorder(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c", "a", "d"}, Reorder(list, 0, 2))
	assert.Equal(t, []string{"d", "a", "b", "c"}, Reorder(list, 3, 0))
	assert.Equal(t, list, Reorder(list, 1, 1))

	// input is never mutated
	Reorder(list, 0, 3)
	assert.Equal(t, []string{"a", "b", "c", "d"}, list)
}

func TestReorderOutOfRange(t *testing.T) {
	list := []int{1, 2, 3}
	assert.Equal(t, list, Reorder(list, -1, 2))
	assert.Equal(t, list, Reorder(list, 0, 3))
}

func TestRenumber(t *testing.T) {
	got := Renumber([]string{"c3", "c1", "c2"})
	assert.Equal(t, map[string]int{"c3": 1, "c1": 2, "c2": 3}, got)

	// duplicates keep their first position
	got = Renumber([]string{"x", "y", "x"})
	assert.Equal(t, map[string]int{"x": 1, "y": 2}, got)
}
