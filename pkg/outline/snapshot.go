package outline

import (
	"fmt"
	"strings"

	"github.com/joshuapare/outlinekit/internal/forest"
	"github.com/joshuapare/outlinekit/pkg/orderedset"
)

// Ref is an optional parent: the root level (zero value) or a specific item.
type Ref[T comparable] = forest.Ref[T]

// Root returns the Ref for the root level.
func Root[T comparable]() Ref[T] {
	return forest.Root[T]()
}

// Under returns the Ref for the children of item.
func Under[T comparable](item T) Ref[T] {
	return forest.Under(item)
}

// Snapshot is an ordered tree of unique items with per-item expansion state.
//
// A *Snapshot is a handle with value semantics: Clone is O(1) and the two
// handles never observe each other's mutations. A snapshot must not be
// mutated concurrently, but distinct clones may be used from different
// goroutines.
//
// The zero value is not usable; create snapshots with New or Build.
type Snapshot[T comparable] struct {
	f *forest.Forest[T]

	// order is the flattened pre-order of all items, rebuilt lazily.
	// nil when stale.
	order *orderedset.Set[T]

	groupsCollapsible bool
}

// New returns an empty snapshot.
func New[T comparable]() *Snapshot[T] {
	return &Snapshot[T]{f: forest.New[T]()}
}

// Clone returns an independent snapshot with the same contents.
func (s *Snapshot[T]) Clone() *Snapshot[T] {
	return &Snapshot[T]{
		f:                 s.f.Share(),
		order:             s.order,
		groupsCollapsible: s.groupsCollapsible,
	}
}

// mutable prepares s for a mutation that has already been validated.
func (s *Snapshot[T]) mutable() *forest.Forest[T] {
	s.f = s.f.Own()
	s.order = nil
	return s.f
}

// ordered returns the flattened item order, rebuilding it if needed.
func (s *Snapshot[T]) ordered() *orderedset.Set[T] {
	if s.order == nil {
		order := orderedset.WithCapacity[T](s.f.Len())
		s.f.Walk(Root[T](), func(item T, _ int) bool {
			order.Append(item)
			return true
		})
		s.order = order
	}
	return s.order
}

// Len returns the number of items in the snapshot.
func (s *Snapshot[T]) Len() int {
	return s.f.Len()
}

// Contains reports whether item is anywhere in the snapshot.
func (s *Snapshot[T]) Contains(item T) bool {
	return s.f.Contains(item)
}

// Items returns every item in depth-first pre-order.
func (s *Snapshot[T]) Items() []T {
	return s.ordered().Items()
}

// Index returns the position of item in Items, or -1.
func (s *Snapshot[T]) Index(item T) int {
	return s.ordered().Index(item)
}

// RootItems returns the items at the root level in order.
func (s *Snapshot[T]) RootItems() []T {
	return clone(s.f.Children(Root[T]()))
}

// Parent returns the parent of item. ok is false for root items and for
// items not in the snapshot.
func (s *Snapshot[T]) Parent(item T) (parent T, ok bool) {
	return s.f.Parent(item).Item()
}

// ParentRef returns the Ref naming item's parent level.
func (s *Snapshot[T]) ParentRef(item T) Ref[T] {
	return s.f.Parent(item)
}

// Children returns the direct children of item, or nil for unknown items.
func (s *Snapshot[T]) Children(item T) []T {
	if !s.f.Contains(item) {
		return nil
	}
	return clone(s.f.Children(Under(item)))
}

// ChildrenOf returns the children at ref (root items for the root level).
func (s *Snapshot[T]) ChildrenOf(ref Ref[T]) []T {
	return clone(s.f.Children(ref))
}

// Descendants returns every item below item in pre-order.
func (s *Snapshot[T]) Descendants(item T) []T {
	if !s.f.Contains(item) {
		return nil
	}
	return s.f.Descendants(Under(item))
}

// Level returns the number of ancestors of item (0 for root items), or -1
// when item is not in the snapshot.
func (s *Snapshot[T]) Level(item T) int {
	if !s.f.Contains(item) {
		return -1
	}
	return s.f.Depth(item)
}

// IndexInParent returns item's position among its siblings, or -1.
func (s *Snapshot[T]) IndexInParent(item T) int {
	return s.f.IndexInParent(item)
}

// IsExpanded reports the expansion flag of item. Group items report their
// flag as well; see ShowsExpanded for the effective state.
func (s *Snapshot[T]) IsExpanded(item T) bool {
	return s.f.Expanded(item)
}

// ShowsExpanded reports whether item is displayed expanded: its flag is set,
// or it is a group item and groups cannot be collapsed.
func (s *Snapshot[T]) ShowsExpanded(item T) bool {
	if s.f.Expanded(item) {
		return true
	}
	return !s.groupsCollapsible && s.f.Group(item)
}

// IsGroup reports whether item is a group item.
func (s *Snapshot[T]) IsGroup(item T) bool {
	return s.f.Group(item)
}

// GroupsCollapsible reports whether group items honour their expansion flag.
func (s *Snapshot[T]) GroupsCollapsible() bool {
	return s.groupsCollapsible
}

// IsVisible reports whether every ancestor of item is shown expanded.
// Root items are always visible; unknown items never are.
func (s *Snapshot[T]) IsVisible(item T) bool {
	if !s.f.Contains(item) {
		return false
	}
	parent, ok := s.f.Parent(item).Item()
	for ok {
		if !s.ShowsExpanded(parent) {
			return false
		}
		parent, ok = s.f.Parent(parent).Item()
	}
	return true
}

// VisibleItems returns the items a tree view would display, in order.
func (s *Snapshot[T]) VisibleItems() []T {
	out := make([]T, 0, s.f.Len())
	s.f.Walk(Root[T](), func(item T, _ int) bool {
		out = append(out, item)
		return s.ShowsExpanded(item)
	})
	return out
}

// ExpandedItems returns the items whose expansion flag is set, in pre-order.
func (s *Snapshot[T]) ExpandedItems() []T {
	var out []T
	for _, item := range s.ordered().All() {
		if s.f.Expanded(item) {
			out = append(out, item)
		}
	}
	return out
}

// GroupItems returns the group items in root order.
func (s *Snapshot[T]) GroupItems() []T {
	var out []T
	for _, item := range s.f.Children(Root[T]()) {
		if s.f.Group(item) {
			out = append(out, item)
		}
	}
	return out
}

// Sub extracts the subtree under parent as a standalone snapshot. With
// includeParent the parent itself becomes the single root item; otherwise
// its children become the roots. Expansion flags are carried over.
func (s *Snapshot[T]) Sub(parent T, includeParent bool) *Snapshot[T] {
	const op = "Sub"
	s.mustContain(op, parent)

	sub := New[T]()
	sub.groupsCollapsible = s.groupsCollapsible
	dst := sub.f
	if includeParent {
		dst.Append(parent, Root[T]())
		dst.SetExpanded(parent, s.f.Expanded(parent))
		dst.SetGroup(parent, s.f.Group(parent))
		copySubtree(dst, s.f, parent, Under(parent))
	} else {
		copySubtree(dst, s.f, parent, Root[T]())
	}
	return sub
}

// copySubtree appends the children of item in src below ref in dst.
func copySubtree[T comparable](dst, src *forest.Forest[T], item T, ref Ref[T]) {
	for _, child := range src.Children(Under(item)) {
		dst.Append(child, ref)
		dst.SetExpanded(child, src.Expanded(child))
		copySubtree(dst, src, child, Under(child))
	}
}

// Equal reports whether s and other have the same structure: the same root
// order and the same ordered children for every item. Expansion and group
// flags are not compared; see EqualState.
func (s *Snapshot[T]) Equal(other *Snapshot[T]) bool {
	return s.f == other.f || s.f.Equal(other.f)
}

// EqualState reports whether s and other have equal structure and the same
// expansion and group flags.
func (s *Snapshot[T]) EqualState(other *Snapshot[T]) bool {
	if !s.Equal(other) || s.groupsCollapsible != other.groupsCollapsible {
		return false
	}
	for _, item := range s.ordered().All() {
		if s.f.Expanded(item) != other.f.Expanded(item) || s.f.Group(item) != other.f.Group(item) {
			return false
		}
	}
	return true
}

// String renders the snapshot as an indented outline, two spaces per level.
// Expanded items are prefixed with "+", group items with "#".
func (s *Snapshot[T]) String() string {
	var sb strings.Builder
	s.f.Walk(Root[T](), func(item T, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		switch {
		case s.f.Group(item):
			sb.WriteString("# ")
		case s.f.Expanded(item):
			sb.WriteString("+ ")
		default:
			sb.WriteString("- ")
		}
		fmt.Fprintf(&sb, "%v\n", item)
		return true
	})
	return sb.String()
}

// Walk visits every item in pre-order with its level. Returning false skips
// the item's subtree.
func (s *Snapshot[T]) Walk(fn func(item T, level int) bool) {
	s.f.Walk(Root[T](), fn)
}

func clone[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
