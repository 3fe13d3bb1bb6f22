package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/frontier"
)

func popAll(t *testing.T, f *frontier.Frontier) []int {
	t.Helper()
	var out []int
	for f.Len() > 0 {
		c, err := f.PopMin()
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestFrontier_PriorityOrder(t *testing.T) {
	f := frontier.New(4)
	f.Push(5, 50)
	f.Push(1, 10)
	f.Push(3, 30)
	f.Push(0, 0)

	assert.Equal(t, []int{0, 10, 30, 50}, popAll(t, f))
}

func TestFrontier_TiesBreakByInsertionOrder(t *testing.T) {
	f := frontier.New(0)
	for _, c := range []int{7, 3, 9, 1, 5} {
		f.Push(2, c)
	}
	f.Push(1, 42)

	assert.Equal(t, []int{42, 7, 3, 9, 1, 5}, popAll(t, f))
}

func TestFrontier_DuplicatesAndContains(t *testing.T) {
	f := frontier.New(2)
	assert.False(t, f.Contains(4))

	f.Push(9, 4)
	f.Push(2, 4) // improved priority, stale entry stays behind
	require.Equal(t, 2, f.Len())
	assert.True(t, f.Contains(4))

	c, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, 4, c)
	assert.True(t, f.Contains(4), "stale entry still stored")

	c, err = f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, 4, c)
	assert.False(t, f.Contains(4))
	assert.Zero(t, f.Len())
}

func TestFrontier_Empty(t *testing.T) {
	f := frontier.New(-1)
	c, err := f.PopMin()
	require.ErrorIs(t, err, frontier.ErrEmptyFrontier)
	assert.Equal(t, -1, c)
}

func TestFrontier_RandomMatchesStableSort(t *testing.T) {
	type item struct {
		p    int64
		cell int
	}
	rng := rand.New(rand.NewSource(42))
	items := make([]item, 500)
	f := frontier.New(len(items))
	for i := range items {
		items[i] = item{p: int64(rng.Intn(20)), cell: i}
		f.Push(items[i].p, items[i].cell)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].p < items[j].p })

	want := make([]int, len(items))
	for i, it := range items {
		want[i] = it.cell
	}
	assert.Equal(t, want, popAll(t, f))
}

func BenchmarkFrontier_PushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	prios := make([]int64, 4096)
	for i := range prios {
		prios[i] = int64(rng.Intn(1000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := frontier.New(len(prios))
		for c, p := range prios {
			f.Push(p, c)
		}
		for f.Len() > 0 {
			_, _ = f.PopMin()
		}
	}
}
