package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/search"
)

func TestReconstruct(t *testing.T) {
	cases := []struct {
		name     string
		cameFrom []int
		end      int
		want     []int
	}{
		{"chain", []int{-1, 0, 1, 2}, 3, []int{0, 1, 2, 3}},
		{"branching", []int{-1, 0, 0, 2, 1}, 3, []int{0, 2, 3}},
		{"single step", []int{-1, 0}, 1, []int{0, 1}},
		{"end not reached", []int{-1, 0, -1}, 2, nil},
		{"end is the root", []int{-1, 0}, 0, nil},
		{"end out of range", []int{-1, 0}, 5, nil},
		{"negative end", []int{-1, 0}, -1, nil},
		{"cycle", []int{1, 0}, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, search.Reconstruct(tc.cameFrom, tc.end))
		})
	}
}
