package outlineview

import (
	"time"

	"github.com/joshuapare/outlinekit/internal/forest"
	"github.com/joshuapare/outlinekit/internal/logger"
	"github.com/joshuapare/outlinekit/pkg/outline"
)

// TreeState holds the complete tree structure and the derived list of
// visible rows. Rows are rebuilt lazily after structural or expansion changes.
type TreeState[T comparable] struct {
	tree  *forest.Forest[T]
	rows  []Row[T] // Visible rows (children of collapsed items are skipped)
	stale bool
}

// NewTreeState creates a new, empty tree state
func NewTreeState[T comparable]() *TreeState[T] {
	return &TreeState[T]{
		tree: forest.New[T](),
		rows: make([]Row[T], 0),
	}
}

// Reset replaces the tree with the structure and display state of snap.
func (ts *TreeState[T]) Reset(snap *outline.Snapshot[T]) {
	tree := forest.New[T]()
	snap.Walk(func(item T, _ int) bool {
		tree.Append(item, snap.ParentRef(item))
		tree.SetExpanded(item, snap.ShowsExpanded(item))
		tree.SetGroup(item, snap.IsGroup(item))
		return true
	})
	ts.tree = tree
	ts.invalidate()
}

// Len returns the total number of items, visible or not.
func (ts *TreeState[T]) Len() int {
	return ts.tree.Len()
}

// Contains reports whether item is in the tree.
func (ts *TreeState[T]) Contains(item T) bool {
	return ts.tree.Contains(item)
}

// Children returns the direct children at ref.
func (ts *TreeState[T]) Children(ref outline.Ref[T]) []T {
	return ts.tree.Children(ref)
}

// IsExpanded checks if an item is expanded
func (ts *TreeState[T]) IsExpanded(item T) bool {
	return ts.tree.Expanded(item)
}

// SetExpanded sets the expanded state for an item
func (ts *TreeState[T]) SetExpanded(item T, expanded bool) {
	if ts.tree.Expanded(item) == expanded {
		return
	}
	ts.tree.SetExpanded(item, expanded)
	ts.invalidate()
}

// Rows returns the visible rows, rebuilding them if needed
func (ts *TreeState[T]) Rows() []Row[T] {
	if ts.stale {
		ts.rebuild()
	}
	return ts.rows
}

// RowIndex returns the visible row index of item, or -1 when it is hidden or
// unknown.
func (ts *TreeState[T]) RowIndex(item T) int {
	for i, row := range ts.Rows() {
		if row.Item == item {
			return i
		}
	}
	return -1
}

func (ts *TreeState[T]) invalidate() {
	ts.stale = true
}

func (ts *TreeState[T]) rebuild() {
	start := time.Now()
	rows := make([]Row[T], 0, len(ts.rows))
	ts.tree.Walk(forest.Root[T](), func(item T, depth int) bool {
		children := ts.tree.ChildCount(forest.Under(item))
		expanded := ts.tree.Expanded(item)
		rows = append(rows, Row[T]{
			Item:        item,
			Parent:      ts.tree.Parent(item),
			Depth:       depth,
			HasChildren: children > 0,
			ChildCount:  children,
			Expanded:    expanded,
			Group:       ts.tree.Group(item),
		})
		return expanded
	})
	ts.rows = rows
	ts.stale = false

	logger.Debug("outlineview: rows rebuilt",
		"items", ts.tree.Len(),
		"visible", len(rows),
		"duration", time.Since(start),
	)
}

// Export returns the tree as a snapshot. Expansion flags reflect the
// displayed state; groups are exported as group items.
func (ts *TreeState[T]) Export() *outline.Snapshot[T] {
	var branches func(ref outline.Ref[T]) []outline.Branch[T]
	branches = func(ref outline.Ref[T]) []outline.Branch[T] {
		items := ts.tree.Children(ref)
		if len(items) == 0 {
			return nil
		}
		out := make([]outline.Branch[T], 0, len(items))
		for _, item := range items {
			out = append(out, outline.Branch[T]{
				Item:     item,
				Expanded: ts.tree.Expanded(item),
				Group:    ts.tree.Group(item),
				Children: branches(forest.Under(item)),
			})
		}
		return out
	}
	return outline.Build(branches(forest.Root[T]())...)
}
