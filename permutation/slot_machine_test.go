package permutation_test

import (
	"cmp"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seb-eis/Mocassin-sub007/permutation"
)

func mustMachine[T any](t *testing.T, compare func(a, b T) int, domains ...[]T) *permutation.SlotMachine[T] {
	t.Helper()
	m, err := permutation.NewSlotMachine(compare, domains...)
	require.NoError(t, err)

	return m
}

func TestNewSlotMachine_Errors(t *testing.T) {
	_, err := permutation.NewSlotMachine[int](cmp.Compare[int])
	assert.ErrorIs(t, err, permutation.ErrNoSlots)

	_, err = permutation.NewSlotMachine(cmp.Compare[int], []int{1, 2}, []int{})
	assert.ErrorIs(t, err, permutation.ErrEmptySlot)

	big := make([]int, 1<<16)
	domains := [][]int{big, big, big, big}
	_, err = permutation.NewSlotMachine(cmp.Compare[int], domains...)
	assert.ErrorIs(t, err, permutation.ErrCountOverflow)
}

func TestSlotMachine_Completeness(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{0, 1}, []int{0, 1, 2}, []int{0, 1, 2, 3})
	require.Equal(t, int64(24), m.Count())
	require.Equal(t, 3, m.Len())

	all := m.Collect()
	require.Len(t, all, 24)

	seen := make(map[[3]int]bool, len(all))
	for i, tuple := range all {
		key := [3]int{tuple[0], tuple[1], tuple[2]}
		assert.False(t, seen[key], "duplicate tuple %v", tuple)
		seen[key] = true
		if i > 0 {
			prev := all[i-1]
			assert.Negative(t, compareTuples(prev, tuple), "not lexicographic at %d", i)
		}
	}
	assert.Equal(t, []int{0, 0, 0}, all[0])
	assert.Equal(t, []int{0, 0, 1}, all[1], "last slot must turn fastest")
	assert.Equal(t, []int{1, 2, 3}, all[23])
}

func TestSlotMachine_SortsDomains(t *testing.T) {
	m := mustMachine(t, cmp.Compare[string], []string{"B", "A"}, []string{"B", "A"})
	got := m.Collect()
	want := [][]string{{"A", "A"}, {"A", "B"}, {"B", "A"}, {"B", "B"}}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"A", "B"}, m.Domain(0))
}

func TestSlotMachine_NilCompareKeepsOrder(t *testing.T) {
	m := mustMachine[string](t, nil, []string{"B", "A"})
	assert.Equal(t, [][]string{{"B"}, {"A"}}, m.Collect())
}

func TestSlotMachine_Restartable(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{3, 1, 2}, []int{5, 4})
	first := m.Collect()

	// disturb the cursor before the second pass
	m.Next()
	m.Next()
	m.Previous()

	m.Reset()
	second := m.Collect()
	assert.Equal(t, first, second)
}

func TestSlotMachine_NextReportsWrap(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{0, 1}, []int{0, 1})
	wraps := 0
	for i := 0; i < 8; i++ {
		if m.Next() {
			wraps++
		}
	}
	// the reset cursor sits on the last tuple, so steps 1 and 5 wrap
	assert.Equal(t, 2, wraps)
	assert.Equal(t, []int{1, 1}, m.Value())
	assert.True(t, m.Next())
	assert.Equal(t, []int{0, 0}, m.Value())
}

func TestSlotMachine_PreviousInvertsNext(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{0, 1, 2}, []int{0, 1})
	m.Reset()
	m.Next()
	m.Next()
	m.Next()
	at := m.Value()
	m.Next()
	m.Previous()
	assert.Equal(t, at, m.Value())

	m.Reset()
	m.Next()
	assert.True(t, m.Previous(), "stepping back from the first tuple wraps")
	assert.Equal(t, []int{2, 1}, m.Value())
}

func TestSlotMachine_AtMatchesAll(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{0, 1, 2}, []int{7}, []int{0, 1, 2, 3, 4})
	all := m.Collect()
	for i := range all {
		tuple, err := m.At(int64(i))
		require.NoError(t, err)
		assert.Equal(t, all[i], tuple)
	}

	_, err := m.At(m.Count())
	assert.ErrorIs(t, err, permutation.ErrIndexOutOfRange)
	_, err = m.At(-1)
	assert.ErrorIs(t, err, permutation.ErrIndexOutOfRange)
}

func TestSlotMachine_CloneIsIndependent(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{0, 1}, []int{0, 1})
	m.Next()
	c := m.Clone()
	c.Next()
	c.Next()
	assert.Equal(t, []int{0, 0}, m.Value())
	assert.Equal(t, []int{1, 0}, c.Value())
	assert.Equal(t, m.Collect(), c.Collect())
}

func TestSlotMachine_EarlyBreak(t *testing.T) {
	m := mustMachine(t, cmp.Compare[int], []int{0, 1}, []int{0, 1})
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Len(t, m.Collect(), 4)
}

func TestSlotMachine_DistinctSlotPermutations(t *testing.T) {
	m := mustMachine(t, cmp.Compare[string], []string{"A", "B", "C"}, []string{"A", "B", "C"})
	var got [][]string
	for tuple := range m.DistinctSlotPermutations() {
		got = append(got, tuple)
	}
	want := [][]string{{"A", "B"}, {"A", "C"}, {"B", "A"}, {"B", "C"}, {"C", "A"}, {"C", "B"}}
	assert.Equal(t, want, got)
}

func TestSlotMachine_CountProduct(t *testing.T) {
	sizes := []int{2, 3, 1, 4}
	domains := make([][]int, len(sizes))
	want := 1
	for i, n := range sizes {
		for v := 0; v < n; v++ {
			domains[i] = append(domains[i], v)
		}
		want *= n
	}
	m := mustMachine(t, cmp.Compare[int], domains...)
	assert.Equal(t, int64(want), m.Count())
	assert.Len(t, m.Collect(), want)
}

func compareTuples(a, b []int) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}
