package outline

import (
	"cmp"
	"slices"
)

// View is the structural tree-view API an edit script is replayed against.
//
// Calls between BeginUpdates and EndUpdates form one batch; a view may defer
// layout until EndUpdates.
type View[T comparable] interface {
	BeginUpdates()
	EndUpdates()

	// InsertChild creates item as a leaf at index among parent's children.
	InsertChild(item T, index int, parent Ref[T])
	// RemoveChild removes the child at index of parent with its subtree.
	RemoveChild(index int, parent Ref[T])
	// MoveChild relocates the child at fromIndex of fromParent, with its
	// subtree, so that it ends at toIndex of toParent.
	MoveChild(fromIndex int, fromParent Ref[T], toIndex int, toParent Ref[T])

	ExpandNode(item T)
	CollapseNode(item T)
}

// DiffOptions configures Diff.
type DiffOptions struct {
	// SortExpansion orders Expand and Collapse by position in the new
	// snapshot, so parents come before their children.
	SortExpansion bool
}

// DefaultDiffOptions returns the options used by the command line tools.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{SortExpansion: true}
}

// Update is everything needed to move a view from one snapshot to the next.
type Update[T comparable] struct {
	Script   []Instruction[T]
	Expand   []T
	Collapse []T
}

// IsEmpty reports whether applying u would change nothing.
func (u Update[T]) IsEmpty() bool {
	return len(u.Script) == 0 && len(u.Expand) == 0 && len(u.Collapse) == 0
}

// Stats summarizes the structural part of u.
func (u Update[T]) Stats() Stats {
	return Summarize(u.Script)
}

// Diff computes the update from one snapshot to another. Collapse omits
// items that no longer exist in to, since their removal already hides them.
func Diff[T comparable](from, to *Snapshot[T], opts DiffOptions) Update[T] {
	u := Update[T]{Script: Reconcile(from, to)}

	expand, collapse := ExpansionDelta(from, to)
	u.Expand = expand
	for _, item := range collapse {
		if to.Contains(item) {
			u.Collapse = append(u.Collapse, item)
		}
	}

	if opts.SortExpansion {
		byIndex := func(a, b T) int { return cmp.Compare(to.Index(a), to.Index(b)) }
		slices.SortFunc(u.Expand, byIndex)
		slices.SortFunc(u.Collapse, byIndex)
	}
	return u
}

// Apply replays u against view in a single update batch: the structural
// instructions in order, then collapses, then expansions.
func Apply[T comparable](view View[T], u Update[T]) {
	view.BeginUpdates()
	defer view.EndUpdates()

	for _, in := range u.Script {
		switch in.Kind {
		case KindInsert:
			view.InsertChild(in.Item, in.Index, in.Parent)
		case KindRemove:
			view.RemoveChild(in.Index, in.Parent)
		case KindMove:
			view.MoveChild(in.Index, in.Parent, in.ToIndex, in.ToParent)
		}
	}
	for _, item := range u.Collapse {
		view.CollapseNode(item)
	}
	for _, item := range u.Expand {
		view.ExpandNode(item)
	}
}

// Transition diffs from against to with the default options and applies the
// result to view. It returns the applied update.
func Transition[T comparable](view View[T], from, to *Snapshot[T]) Update[T] {
	u := Diff(from, to, DefaultDiffOptions())
	if !u.IsEmpty() {
		Apply(view, u)
	}
	return u
}
