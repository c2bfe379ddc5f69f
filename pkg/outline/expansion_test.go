package outline_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

func TestExpansionDelta(t *testing.T) {
	old := outline.Build(outline.Node("A").Expand(), outline.Node("B"))
	next := outline.Build(outline.Node("A"), outline.Node("B").Expand())

	expand, collapse := outline.ExpansionDelta(old, next)
	assert.Equal(t, []string{"B"}, expand)
	assert.Equal(t, []string{"A"}, collapse)
}

func TestExpansionDelta_Groups(t *testing.T) {
	old := outline.Build(outline.Node("G", outline.Node("G1")).AsGroup())
	next := old.Clone()

	expand, collapse := outline.ExpansionDelta(old, next)
	assert.Empty(t, expand)
	assert.Empty(t, collapse)

	// Making groups collapsible hides G unless its own flag is set.
	next.SetGroupsCollapsible(true)
	expand, collapse = outline.ExpansionDelta(old, next)
	assert.Empty(t, expand)
	assert.Equal(t, []string{"G"}, collapse)

	next.Expand("G")
	expand, collapse = outline.ExpansionDelta(old, next)
	assert.Empty(t, expand)
	assert.Empty(t, collapse)
}

func TestExpansionDelta_AddedAndRemovedItems(t *testing.T) {
	old := outline.Build(outline.Node("A", outline.Node("A1")).Expand())
	next := outline.Build(outline.Node("N", outline.Node("N1")).Expand())

	expand, collapse := outline.ExpansionDelta(old, next)
	assert.Equal(t, []string{"N"}, expand)
	assert.Equal(t, []string{"A"}, collapse, "set difference includes removed items")
}

// recorder is a View that logs every call.
type recorder struct {
	calls []string
	depth int
}

func (r *recorder) BeginUpdates() { r.depth++; r.calls = append(r.calls, "begin") }
func (r *recorder) EndUpdates()   { r.depth--; r.calls = append(r.calls, "end") }

func (r *recorder) InsertChild(item string, index int, parent outline.Ref[string]) {
	r.calls = append(r.calls, fmt.Sprintf("insert %s %d@%v", item, index, parent))
}

func (r *recorder) RemoveChild(index int, parent outline.Ref[string]) {
	r.calls = append(r.calls, fmt.Sprintf("remove %d@%v", index, parent))
}

func (r *recorder) MoveChild(fromIndex int, fromParent outline.Ref[string], toIndex int, toParent outline.Ref[string]) {
	r.calls = append(r.calls, fmt.Sprintf("move %d@%v -> %d@%v", fromIndex, fromParent, toIndex, toParent))
}

func (r *recorder) ExpandNode(item string)   { r.calls = append(r.calls, "expand "+item) }
func (r *recorder) CollapseNode(item string) { r.calls = append(r.calls, "collapse "+item) }

func TestDiff_DropsCollapseOfRemovedItems(t *testing.T) {
	old := outline.Build(outline.Node("A", outline.Node("A1")).Expand(), outline.Node("B"))
	next := outline.Build(outline.Node("B", outline.Node("B1")).Expand())

	u := outline.Diff(old, next, outline.DefaultDiffOptions())
	assert.Equal(t, []string{"B"}, u.Expand)
	assert.Empty(t, u.Collapse)
	assert.Equal(t, outline.Stats{Inserts: 1, Removes: 1}, u.Stats())
}

func TestDiff_SortsExpansion(t *testing.T) {
	old := outline.Build(
		outline.Node("A", outline.Node("A1", outline.Node("A1x"))),
		outline.Node("B", outline.Node("B1")),
		outline.Node("C", outline.Node("C1")).Expand(),
	)
	next := old.Clone()
	next.Expand("B", "A1", "A")
	next.Collapse("C")

	u := outline.Diff(old, next, outline.DiffOptions{SortExpansion: true})
	assert.Empty(t, u.Script)
	assert.Equal(t, []string{"A", "A1", "B"}, u.Expand, "parents before children")
	assert.Equal(t, []string{"C"}, u.Collapse)
	assert.False(t, u.IsEmpty())
	assert.True(t, outline.Diff(next, next, outline.DefaultDiffOptions()).IsEmpty())
}

func TestApply_Order(t *testing.T) {
	old := outline.Build(
		outline.Node("A", outline.Node("A1")).Expand(),
		outline.Node("B"),
	)
	next := outline.Build(
		outline.Node("A", outline.Node("A1"), outline.Node("A2")),
		outline.Node("B", outline.Node("B1")).Expand(),
	)

	r := &recorder{}
	u := outline.Transition(r, old, next)
	require.Len(t, u.Script, 2)

	assert.Equal(t, []string{
		"begin",
		"insert A2 1@A",
		"insert B1 0@B",
		"collapse A",
		"expand B",
		"end",
	}, r.calls)
	assert.Zero(t, r.depth, "updates are balanced")
}

func TestApply_MoveCall(t *testing.T) {
	old := outline.Build(outline.Node("X"), outline.Node("Y"))
	next := outline.Build(outline.Node("Y", outline.Node("X")))

	r := &recorder{}
	outline.Apply[string](r, outline.Diff(old, next, outline.DiffOptions{}))
	assert.Equal(t, "begin|move 0@<root> -> 0@Y|end", strings.Join(r.calls, "|"))
}

func TestTransition_NoChange(t *testing.T) {
	s := sample()
	r := &recorder{}
	u := outline.Transition(r, s, s.Clone())
	assert.True(t, u.IsEmpty())
	assert.Empty(t, r.calls, "empty updates do not open a batch")
}
