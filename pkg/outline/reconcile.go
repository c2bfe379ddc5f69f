package outline

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"znkr.io/diff"

	"github.com/joshuapare/outlinekit/internal/forest"
	"github.com/joshuapare/outlinekit/internal/logger"
)

// Reconcile computes the edit script that turns from into to.
//
// Applying the returned instructions in order to a structural copy of from
// yields a tree with the same root order and children as to. Expansion state
// is not part of the script; see ExpansionDelta.
//
// The script has these properties:
//   - an item that exists in both snapshots is never removed and re-inserted;
//     a change of position or parent is a single Move
//   - each item is moved at most once
//   - Remove takes the item's whole subtree, and is only emitted for items
//     absent from to whose subtree holds nothing that survives
//   - a parent is in place before any instruction touches its children
//
// Reconcile panics with an assertion failure if it detects an internal
// inconsistency; that is a bug in this package, not in the input.
func Reconcile[T comparable](from, to *Snapshot[T]) []Instruction[T] {
	start := time.Now()
	r := &reconciler[T]{
		work:   from.f.Copy(),
		target: to.f,
		moved:  make(map[T]struct{}),
	}

	r.level(Root[T]())
	r.sweep()

	if !r.work.Equal(r.target) {
		panic(errors.AssertionFailedf("outline: reconciled tree does not match target after %d instructions", len(r.script)))
	}

	st := Summarize(r.script)
	logger.Debug("outline: reconcile",
		"instructions", len(r.script),
		"inserts", st.Inserts,
		"removes", st.Removes,
		"moves", st.Moves,
		"levels", r.levels,
		"deferred", r.deferred,
		"duration", time.Since(start),
	)
	return r.script
}

// reconciler holds the state of one Reconcile call. work starts as a copy of
// the old tree and receives every instruction as soon as it is emitted, so
// instruction indices always describe the partially edited tree.
type reconciler[T comparable] struct {
	work   *forest.Forest[T]
	target *forest.Forest[T]
	moved  map[T]struct{}
	script []Instruction[T]

	levels   int
	deferred int
}

// level brings the children of parent in line with the target, then
// recurses into each target child in order.
//
// When level runs, parent already sits at its final position, and so do all
// of its ancestors: levels are visited in target pre-order and an item is
// only ever placed by the level of its target parent.
func (r *reconciler[T]) level(parent Ref[T]) {
	r.levels++
	r.removeVanished(parent)

	target := r.target.Children(parent)

	// Work children that stay at this level. Children bound for another
	// level are moved when that level runs.
	var staying []T
	for _, item := range r.work.Children(parent) {
		if r.target.Contains(item) && r.target.Parent(item) == parent {
			staying = append(staying, item)
		}
	}

	var prev T
	hasPrev := false
	for _, e := range diff.Edits(staying, target) {
		switch e.Op {
		case diff.Match:
			prev, hasPrev = e.X, true
		case diff.Insert:
			r.place(e.Y, parent, prev, hasPrev)
			prev, hasPrev = e.Y, true
		case diff.Delete:
			// Still wanted at this level: its Insert edit moves it.
		}
	}

	for _, item := range target {
		r.level(Under(item))
	}
}

// place puts item right after prev (or first) in parent's children, moving
// it if it already exists anywhere in the work tree.
func (r *reconciler[T]) place(item T, parent Ref[T], prev T, hasPrev bool) {
	if !r.work.Contains(item) {
		index := r.indexAfter(parent, prev, hasPrev)
		r.work.Insert(item, parent, index)
		r.emit(Instruction[T]{Kind: KindInsert, Item: item, Index: index, Parent: parent})
		return
	}

	if _, dup := r.moved[item]; dup {
		panic(errors.AssertionFailedf("outline: item %v moved twice", item))
	}
	if p, ok := parent.Item(); ok && (p == item || r.work.IsAncestor(item, p)) {
		panic(errors.AssertionFailedf("outline: moving %v under %v creates a cycle", item, p))
	}

	fromParent, fromIndex := r.work.Detach(item)
	index := r.indexAfter(parent, prev, hasPrev)
	r.work.Attach(item, parent, index)
	r.moved[item] = struct{}{}
	r.emit(Instruction[T]{
		Kind:     KindMove,
		Item:     item,
		Index:    fromIndex,
		Parent:   fromParent,
		ToIndex:  index,
		ToParent: parent,
	})
}

// indexAfter returns the child index just past prev, or 0 without prev.
func (r *reconciler[T]) indexAfter(parent Ref[T], prev T, hasPrev bool) int {
	if !hasPrev {
		return 0
	}
	i := slices.Index(r.work.Children(parent), prev)
	if i < 0 {
		panic(errors.AssertionFailedf("outline: anchor %v missing from %v", prev, parent))
	}
	return i + 1
}

// removeVanished removes the children of parent that are gone from the
// target, unless their subtree still holds items the target keeps. Those are
// removed by sweep once the survivors have been moved out.
func (r *reconciler[T]) removeVanished(parent Ref[T]) {
	children := r.work.Children(parent)
	for i := 0; i < len(children); {
		item := children[i]
		if r.target.Contains(item) {
			i++
			continue
		}
		if r.hasSurvivor(item) {
			r.deferred++
			i++
			continue
		}
		r.work.Remove(item)
		r.emit(Instruction[T]{Kind: KindRemove, Item: item, Index: i, Parent: parent})
		children = r.work.Children(parent)
	}
}

// hasSurvivor reports whether any descendant of item is in the target.
func (r *reconciler[T]) hasSurvivor(item T) bool {
	found := false
	r.work.Walk(Under(item), func(d T, _ int) bool {
		if r.target.Contains(d) {
			found = true
		}
		return !found
	})
	return found
}

// sweep removes the top-most items that are not in the target.
func (r *reconciler[T]) sweep() {
	var doomed []T
	r.work.Walk(Root[T](), func(item T, _ int) bool {
		if r.target.Contains(item) {
			return true
		}
		doomed = append(doomed, item)
		return false
	})
	for _, item := range doomed {
		if r.hasSurvivor(item) {
			panic(errors.AssertionFailedf("outline: %v still holds a surviving item", item))
		}
		parent := r.work.Parent(item)
		index := r.work.IndexInParent(item)
		r.work.Remove(item)
		r.emit(Instruction[T]{Kind: KindRemove, Item: item, Index: index, Parent: parent})
	}
}

func (r *reconciler[T]) emit(in Instruction[T]) {
	r.script = append(r.script, in)
}
