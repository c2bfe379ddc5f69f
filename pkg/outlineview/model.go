package outlineview

import (
	"github.com/cockroachdb/errors"

	"github.com/joshuapare/outlinekit/internal/forest"
	"github.com/joshuapare/outlinekit/pkg/outline"
)

// Model is an in-memory outline view. It implements outline.View, keeps the
// visible rows and a cursor, and keeps the cursor on the selected item
// across update batches.
//
// Structural calls must happen inside BeginUpdates/EndUpdates. Invalid
// indices, unknown parents and unbalanced batches panic with an assertion
// failure: the caller replayed a script that does not match the view.
type Model[T comparable] struct {
	state *TreeState[T]
	nav   *Navigator

	batch    int // open BeginUpdates calls
	updates  int // completed outermost batches
	applied  int // structural calls applied
	selected T
	hasSel   bool
}

var _ outline.View[string] = (*Model[string])(nil)

// New creates an empty model.
func New[T comparable]() *Model[T] {
	return &Model[T]{
		state: NewTreeState[T](),
		nav:   NewNavigator(),
	}
}

// Load replaces the model contents with snap and resets the cursor.
func (m *Model[T]) Load(snap *outline.Snapshot[T]) {
	if m.batch > 0 {
		panic(errors.AssertionFailedf("outlineview: Load inside an update batch"))
	}
	m.state.Reset(snap)
	m.nav.SetCursor(0)
}

// Snapshot exports the current structure and display state.
func (m *Model[T]) Snapshot() *outline.Snapshot[T] {
	return m.state.Export()
}

// Rows returns the visible rows.
func (m *Model[T]) Rows() []Row[T] {
	return m.state.Rows()
}

// Len returns the total number of items, visible or not.
func (m *Model[T]) Len() int {
	return m.state.Len()
}

// Updates returns the number of completed update batches.
func (m *Model[T]) Updates() int {
	return m.updates
}

// Applied returns the number of structural calls applied so far.
func (m *Model[T]) Applied() int {
	return m.applied
}

// Cursor returns the row index under the cursor.
func (m *Model[T]) Cursor() int {
	return m.nav.Cursor()
}

// Selected returns the item under the cursor.
func (m *Model[T]) Selected() (T, bool) {
	rows := m.state.Rows()
	c := m.nav.Cursor()
	if c < 0 || c >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[c].Item, true
}

// Select moves the cursor to item. Returns false if item is not visible.
func (m *Model[T]) Select(item T) bool {
	i := m.state.RowIndex(item)
	if i < 0 {
		return false
	}
	m.nav.SetCursor(i)
	return true
}

// MoveUp moves the cursor one row up.
func (m *Model[T]) MoveUp() bool {
	return m.nav.MoveUp()
}

// MoveDown moves the cursor one row down.
func (m *Model[T]) MoveDown() bool {
	return m.nav.MoveDown(len(m.state.Rows()))
}

// BeginUpdates opens an update batch. Batches nest.
func (m *Model[T]) BeginUpdates() {
	if m.batch == 0 {
		m.selected, m.hasSel = m.Selected()
	}
	m.batch++
}

// EndUpdates closes an update batch. Closing the outermost batch restores
// the cursor onto the previously selected item when it is still visible.
func (m *Model[T]) EndUpdates() {
	if m.batch == 0 {
		panic(errors.AssertionFailedf("outlineview: EndUpdates without BeginUpdates"))
	}
	m.batch--
	if m.batch > 0 {
		return
	}
	m.updates++
	if !m.hasSel || !m.Select(m.selected) {
		m.nav.Clamp(len(m.state.Rows()))
	}
	var zero T
	m.selected, m.hasSel = zero, false
}

// InsertChild implements outline.View.
func (m *Model[T]) InsertChild(item T, index int, parent outline.Ref[T]) {
	m.mustBatch("InsertChild")
	tree := m.state.tree
	m.mustParent("InsertChild", parent)
	if tree.Contains(item) {
		panic(errors.AssertionFailedf("outlineview: InsertChild: %v already present", item))
	}
	if index < 0 || index > tree.ChildCount(parent) {
		panic(errors.AssertionFailedf("outlineview: InsertChild: index %d out of range in %v", index, parent))
	}
	tree.Insert(item, parent, index)
	m.changed()
}

// RemoveChild implements outline.View.
func (m *Model[T]) RemoveChild(index int, parent outline.Ref[T]) {
	m.mustBatch("RemoveChild")
	item := m.childAt("RemoveChild", index, parent)
	m.state.tree.Remove(item)
	m.changed()
}

// MoveChild implements outline.View.
func (m *Model[T]) MoveChild(fromIndex int, fromParent outline.Ref[T], toIndex int, toParent outline.Ref[T]) {
	m.mustBatch("MoveChild")
	tree := m.state.tree
	item := m.childAt("MoveChild", fromIndex, fromParent)
	m.mustParent("MoveChild", toParent)
	if p, ok := toParent.Item(); ok && (p == item || tree.IsAncestor(item, p)) {
		panic(errors.AssertionFailedf("outlineview: MoveChild: %v cannot move under %v", item, p))
	}

	tree.Detach(item)
	if toIndex < 0 || toIndex > tree.ChildCount(toParent) {
		tree.Attach(item, fromParent, fromIndex)
		panic(errors.AssertionFailedf("outlineview: MoveChild: index %d out of range in %v", toIndex, toParent))
	}
	tree.Attach(item, toParent, toIndex)
	if !toParent.IsRoot() {
		tree.SetGroup(item, false)
	}
	m.changed()
}

// ExpandNode implements outline.View.
func (m *Model[T]) ExpandNode(item T) {
	m.mustItem("ExpandNode", item)
	m.state.SetExpanded(item, true)
}

// CollapseNode implements outline.View.
func (m *Model[T]) CollapseNode(item T) {
	m.mustItem("CollapseNode", item)
	m.state.SetExpanded(item, false)
}

// ToggleSelected expands or collapses the item under the cursor. Items
// without children are left alone. Returns true if the state changed.
func (m *Model[T]) ToggleSelected() bool {
	item, ok := m.Selected()
	if !ok || m.state.tree.ChildCount(forest.Under(item)) == 0 {
		return false
	}
	m.state.SetExpanded(item, !m.state.IsExpanded(item))
	return true
}

// CollapseSelected collapses the item under the cursor, or moves the cursor
// to its parent when it is already collapsed or a leaf.
func (m *Model[T]) CollapseSelected() bool {
	item, ok := m.Selected()
	if !ok {
		return false
	}
	if m.state.IsExpanded(item) {
		m.state.SetExpanded(item, false)
		return true
	}
	if parent, ok := m.state.tree.Parent(item).Item(); ok {
		return m.Select(parent)
	}
	return false
}

func (m *Model[T]) changed() {
	m.applied++
	m.state.invalidate()
}

func (m *Model[T]) mustBatch(op string) {
	if m.batch == 0 {
		panic(errors.AssertionFailedf("outlineview: %s outside an update batch", errors.Safe(op)))
	}
}

func (m *Model[T]) mustItem(op string, item T) {
	if !m.state.tree.Contains(item) {
		panic(errors.AssertionFailedf("outlineview: %s: unknown item %v", errors.Safe(op), item))
	}
}

func (m *Model[T]) mustParent(op string, parent outline.Ref[T]) {
	if p, ok := parent.Item(); ok {
		m.mustItem(op, p)
	}
}

func (m *Model[T]) childAt(op string, index int, parent outline.Ref[T]) T {
	m.mustParent(op, parent)
	children := m.state.tree.Children(parent)
	if index < 0 || index >= len(children) {
		panic(errors.AssertionFailedf("outlineview: %s: index %d out of range in %v", errors.Safe(op), index, parent))
	}
	return children[index]
}
