package outline_test

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

// sample builds:
//
//	A
//	  A1
//	  A2
//	    A2a
//	B
func sample() *outline.Snapshot[string] {
	return outline.Build(
		outline.Node("A",
			outline.Node("A1"),
			outline.Node("A2", outline.Node("A2a")),
		),
		outline.Node("B"),
	)
}

// requireViolation asserts that fn panics with a contract violation of kind.
func requireViolation(t *testing.T, kind error, fn func()) {
	t.Helper()
	err := outline.Catch(fn)
	require.Error(t, err)
	assert.True(t, outline.IsContractViolation(err), "not a contract violation: %v", err)
	assert.True(t, errors.Is(err, kind), "want %v, got %v", kind, err)
}

func TestQueries(t *testing.T) {
	s := sample()

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []string{"A", "A1", "A2", "A2a", "B"}, s.Items())
	assert.Equal(t, []string{"A", "B"}, s.RootItems())
	assert.Equal(t, []string{"A1", "A2"}, s.Children("A"))
	assert.Nil(t, s.Children("missing"))
	assert.Equal(t, []string{"A1", "A2", "A2a"}, s.Descendants("A"))
	assert.Equal(t, []string{"A2a"}, s.ChildrenOf(outline.Under("A2")))
	assert.Equal(t, []string{"A", "B"}, s.ChildrenOf(outline.Root[string]()))

	tests := []struct {
		item    string
		level   int
		index   int
		inLevel int
	}{
		{"A", 0, 0, 0},
		{"A1", 1, 1, 0},
		{"A2", 1, 2, 1},
		{"A2a", 2, 3, 0},
		{"B", 0, 4, 1},
		{"missing", -1, -1, -1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.level, s.Level(tc.item), "Level(%s)", tc.item)
		assert.Equal(t, tc.index, s.Index(tc.item), "Index(%s)", tc.item)
		assert.Equal(t, tc.inLevel, s.IndexInParent(tc.item), "IndexInParent(%s)", tc.item)
	}

	p, ok := s.Parent("A2a")
	require.True(t, ok)
	assert.Equal(t, "A2", p)
	_, ok = s.Parent("A")
	assert.False(t, ok, "root items have no parent")
	assert.True(t, s.ParentRef("B").IsRoot())
}

func TestVisibility(t *testing.T) {
	s := sample()
	s.Expand("A")

	assert.True(t, s.IsVisible("A"))
	assert.True(t, s.IsVisible("A1"))
	assert.False(t, s.IsVisible("A2a"), "A2 is collapsed")
	assert.False(t, s.IsVisible("missing"))
	assert.Equal(t, []string{"A", "A1", "A2", "B"}, s.VisibleItems())

	s.ExpandParents("A2a")
	assert.True(t, s.IsVisible("A2a"))
	assert.Equal(t, []string{"A", "A2"}, s.ExpandedItems())
}

func TestExpandAllCollapseAll(t *testing.T) {
	s := sample()

	s.ExpandAll()
	assert.Equal(t, []string{"A", "A2"}, s.ExpandedItems(), "leaves stay collapsed")

	s.CollapseAll()
	s.Expand("A1")
	s.ExpandAll()
	assert.Equal(t, []string{"A", "A1", "A2"}, s.ExpandedItems(), "leaf flags survive")
	assert.Equal(t, s.Items(), s.VisibleItems())

	s.CollapseAll()
	assert.Empty(t, s.ExpandedItems())
	assert.Equal(t, []string{"A", "B"}, s.VisibleItems())
}

func TestGroups(t *testing.T) {
	s := outline.Build(
		outline.Node("Favorites", outline.Node("Home")).AsGroup(),
		outline.Node("Tags", outline.Node("Red")),
	)

	assert.Equal(t, []string{"Favorites"}, s.GroupItems())
	assert.True(t, s.IsGroup("Favorites"))
	assert.False(t, s.IsExpanded("Favorites"))
	assert.True(t, s.ShowsExpanded("Favorites"), "groups are not collapsible by default")
	assert.True(t, s.IsVisible("Home"))

	s.SetGroupsCollapsible(true)
	assert.False(t, s.ShowsExpanded("Favorites"))
	assert.False(t, s.IsVisible("Home"))

	requireViolation(t, outline.ErrNotRootItem, func() { s.MarkGroups("Red") })

	s.MarkGroups("Tags")
	s.MoveChildren("Favorites", 0, "Tags")
	assert.False(t, s.IsGroup("Tags"), "group flag is dropped below the root level")

	s.UnmarkGroups("Favorites")
	assert.Empty(t, s.GroupItems())
}

func TestSub(t *testing.T) {
	s := sample()
	s.Expand("A2")

	sub := s.Sub("A", false)
	assert.Equal(t, []string{"A1", "A2"}, sub.RootItems())
	assert.Equal(t, []string{"A2a"}, sub.Children("A2"))
	assert.True(t, sub.IsExpanded("A2"))
	assert.False(t, sub.Contains("A"))

	withParent := s.Sub("A", true)
	assert.Equal(t, []string{"A"}, withParent.RootItems())
	assert.Equal(t, []string{"A", "A1", "A2", "A2a"}, withParent.Items())

	requireViolation(t, outline.ErrItemNotFound, func() { s.Sub("missing", true) })
}

func TestCloneIsCopyOnWrite(t *testing.T) {
	s := sample()
	c := s.Clone()
	require.True(t, s.Equal(c))

	c.Delete("A")
	assert.True(t, s.Contains("A1"), "original unaffected by clone mutation")
	assert.False(t, c.Contains("A1"))

	s.Append("Z")
	assert.False(t, c.Contains("Z"), "clone unaffected by original mutation")

	c2 := s.Clone()
	c2.Expand("A")
	assert.False(t, s.IsExpanded("A"), "flags are copied on write too")
}

func TestClone_ConcurrentMutation(t *testing.T) {
	for round := 0; round < 50; round++ {
		a := outline.New[int]()
		for i := range 200 {
			a.Append(i)
		}
		b := a.Clone()
		c := a.Clone()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.Append(2000)
		}()
		go func() {
			defer wg.Done()
			c.Append(3000)
		}()
		a.Append(1000)
		wg.Wait()

		assert.Equal(t, 201, a.Len())
		assert.True(t, a.Contains(1000))
		assert.False(t, a.Contains(2000) || a.Contains(3000))
		assert.True(t, b.Contains(2000) && !b.Contains(1000) && !b.Contains(3000))
		assert.True(t, c.Contains(3000) && !c.Contains(1000) && !c.Contains(2000))
	}
}

func TestNew_Empty(t *testing.T) {
	for _, s := range []*outline.Snapshot[string]{outline.New[string](), outline.Build[string]()} {
		assert.Zero(t, s.Len())
		assert.False(t, s.Contains("A"))
		s.Append("A")
		assert.Equal(t, []string{"A"}, s.Items())
	}
}

func TestIndexFollowsMutations(t *testing.T) {
	s := sample()
	require.Equal(t, 4, s.Index("B"))

	s.InsertChildren("A", 0, "A0")
	assert.Equal(t, 5, s.Index("B"))
	assert.Equal(t, 1, s.Index("A0"))

	s.Delete("A2")
	assert.Equal(t, 3, s.Index("B"))
	assert.Equal(t, -1, s.Index("A2a"))
}

func TestEqualAndEqualState(t *testing.T) {
	a := sample()
	b := sample()
	assert.True(t, a.Equal(b))
	assert.True(t, a.EqualState(b))

	b.Expand("A")
	assert.True(t, a.Equal(b), "Equal ignores expansion")
	assert.False(t, a.EqualState(b))

	b.MoveChildren("A", 0, "A2")
	assert.False(t, a.Equal(b))
}

func TestString(t *testing.T) {
	s := outline.Build(
		outline.Node("A", outline.Node("A1")).Expand(),
		outline.Node("G").AsGroup(),
	)
	assert.Equal(t, "+ A\n  - A1\n# G\n", s.String())
}

func TestWalk_SkipSubtree(t *testing.T) {
	s := sample()
	var seen []string
	var levels []int
	s.Walk(func(item string, level int) bool {
		seen = append(seen, item)
		levels = append(levels, level)
		return item != "A2"
	})
	assert.Equal(t, []string{"A", "A1", "A2", "B"}, seen)
	assert.Equal(t, []int{0, 1, 1, 0}, levels)
}

func TestBuilder(t *testing.T) {
	s := outline.Build(
		outline.Node("Inbox").AsGroup(),
		outline.Node("Projects",
			outline.Node("Alpha"),
			outline.Node("Beta", outline.Node("Spec")).Expand(),
		).Expand(),
	)

	assert.Equal(t, []string{"Inbox", "Projects", "Alpha", "Beta", "Spec"}, s.Items())
	assert.Equal(t, []string{"Projects", "Beta"}, s.ExpandedItems())
	assert.Equal(t, []string{"Inbox"}, s.GroupItems())

	again := outline.Build(s.Branches()...)
	assert.True(t, again.EqualState(s), "Branches is the inverse of Build")

	s.AppendBranchesTo("Alpha", outline.Node("Notes", outline.Node("Todo")))
	assert.Equal(t, []string{"Notes"}, s.Children("Alpha"))
	assert.Equal(t, 3, s.Level("Todo"))
}

func TestBuilder_Violations(t *testing.T) {
	requireViolation(t, outline.ErrDuplicateItem, func() {
		outline.Build(outline.Node("A", outline.Node("X")), outline.Node("X"))
	})
	requireViolation(t, outline.ErrNotRootItem, func() {
		outline.Build(outline.Node("A", outline.Node("G").AsGroup()))
	})

	s := sample()
	before := s.Clone()
	requireViolation(t, outline.ErrDuplicateItem, func() {
		s.AppendBranchesTo("B", outline.Node("New"), outline.Node("A1"))
	})
	assert.True(t, s.EqualState(before), "failed call leaves the snapshot untouched")
	requireViolation(t, outline.ErrItemNotFound, func() {
		s.AppendBranchesTo("missing", outline.Node("New"))
	})
}
