package orderedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DropsDuplicates(t *testing.T) {
	s := New("a", "b", "a", "c", "b")
	assert.Equal(t, []string{"a", "b", "c"}, s.Items())
	assert.Equal(t, 3, s.Len())
}

func TestZeroValueUsable(t *testing.T) {
	var s Set[int]
	assert.False(t, s.Contains(1))
	assert.Equal(t, -1, s.Index(1))
	assert.True(t, s.Append(1))
	assert.False(t, s.Append(1))
	assert.Equal(t, 0, s.Index(1))
}

func TestIndexAndContains(t *testing.T) {
	s := New(10, 20, 30)

	tests := []struct {
		item     int
		contains bool
		index    int
	}{
		{10, true, 0},
		{20, true, 1},
		{30, true, 2},
		{40, false, -1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.contains, s.Contains(tc.item), "Contains(%d)", tc.item)
		assert.Equal(t, tc.index, s.Index(tc.item), "Index(%d)", tc.item)
	}
}

func TestRemoveMatching_PreservesOrder(t *testing.T) {
	s := New("a", "b", "c", "d", "e")

	removed := s.RemoveMatching(map[string]struct{}{"b": {}, "d": {}, "zz": {}})
	require.Equal(t, 2, removed)

	assert.Equal(t, []string{"a", "c", "e"}, s.Items())
	assert.Equal(t, 1, s.Index("c"))
	assert.Equal(t, 2, s.Index("e"))
	assert.False(t, s.Contains("b"))

	// Positions stay consistent after further appends.
	require.True(t, s.Append("b"))
	assert.Equal(t, 3, s.Index("b"))
}

func TestRemoveFunc(t *testing.T) {
	s := New(1, 2, 3, 4, 5, 6)
	removed := s.RemoveFunc(func(n int) bool { return n%2 == 0 })
	assert.Equal(t, 3, removed)
	assert.Equal(t, []int{1, 3, 5}, s.Items())
	assert.Equal(t, 2, s.Index(5))
}

func TestCloneIsIndependent(t *testing.T) {
	s := New("x", "y")
	c := s.Clone()
	c.Append("z")
	s.RemoveFunc(func(v string) bool { return v == "x" })

	assert.Equal(t, []string{"y"}, s.Items())
	assert.Equal(t, []string{"x", "y", "z"}, c.Items())
	assert.False(t, s.Equal(c))
}

func TestAllIterator(t *testing.T) {
	s := New("a", "b", "c")
	var got []string
	for i, v := range s.All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestClear(t *testing.T) {
	s := New(1, 2, 3)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(2))
	assert.True(t, s.Append(2))
}

func BenchmarkAppendAndIndex(b *testing.B) {
	const n = 10000
	for i := 0; i < b.N; i++ {
		s := WithCapacity[int](n)
		for j := 0; j < n; j++ {
			s.Append(j)
		}
		for j := 0; j < n; j++ {
			if s.Index(j) != j {
				b.Fatalf("Index(%d) mismatch", j)
			}
		}
	}
}
