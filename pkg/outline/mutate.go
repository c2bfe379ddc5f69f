package outline

import "slices"

// Every mutation validates its whole input before the first change, so a
// call that panics with a *ContractError leaves the snapshot untouched.

// Append adds items as trailing root items.
func (s *Snapshot[T]) Append(items ...T) {
	s.insert("Append", Root[T](), s.f.ChildCount(Root[T]()), items)
}

// AppendChildren adds items as trailing children of parent.
func (s *Snapshot[T]) AppendChildren(parent T, items ...T) {
	const op = "AppendChildren"
	s.mustContain(op, parent)
	s.insert(op, Under(parent), s.f.ChildCount(Under(parent)), items)
}

// Insert adds items at index among the root items.
func (s *Snapshot[T]) Insert(index int, items ...T) {
	s.insert("Insert", Root[T](), index, items)
}

// InsertChildren adds items at index among the children of parent.
func (s *Snapshot[T]) InsertChildren(parent T, index int, items ...T) {
	const op = "InsertChildren"
	s.mustContain(op, parent)
	s.insert(op, Under(parent), index, items)
}

// InsertBefore adds items immediately before anchor, under anchor's parent.
func (s *Snapshot[T]) InsertBefore(anchor T, items ...T) {
	const op = "InsertBefore"
	s.mustContain(op, anchor)
	s.insert(op, s.f.Parent(anchor), s.f.IndexInParent(anchor), items)
}

// InsertAfter adds items immediately after anchor, under anchor's parent.
func (s *Snapshot[T]) InsertAfter(anchor T, items ...T) {
	const op = "InsertAfter"
	s.mustContain(op, anchor)
	s.insert(op, s.f.Parent(anchor), s.f.IndexInParent(anchor)+1, items)
}

// insert places new items at index within ref.
func (s *Snapshot[T]) insert(op string, ref Ref[T], index int, items []T) {
	s.mustFitIndex(op, ref, index, s.f.ChildCount(ref))
	s.mustBeNew(op, items)
	if len(items) == 0 {
		return
	}

	f := s.mutable()
	for i, item := range items {
		f.Insert(item, ref, index+i)
	}
}

// Move relocates items (with their subtrees) to index among the root items.
// index counts positions among the root items that are not being moved.
func (s *Snapshot[T]) Move(index int, items ...T) {
	s.move("Move", Root[T](), index, items)
}

// MoveChildren relocates items to index among the children of parent.
// index counts positions among the children that are not being moved.
func (s *Snapshot[T]) MoveChildren(parent T, index int, items ...T) {
	const op = "MoveChildren"
	s.mustContain(op, parent)
	s.move(op, Under(parent), index, items)
}

// MoveBefore relocates items to sit immediately before anchor.
func (s *Snapshot[T]) MoveBefore(anchor T, items ...T) {
	const op = "MoveBefore"
	s.mustAnchor(op, anchor, items)
	ref := s.f.Parent(anchor)
	s.move(op, ref, s.stayingBefore(ref, anchor, items), items)
}

// MoveAfter relocates items to sit immediately after anchor.
func (s *Snapshot[T]) MoveAfter(anchor T, items ...T) {
	const op = "MoveAfter"
	s.mustAnchor(op, anchor, items)
	ref := s.f.Parent(anchor)
	s.move(op, ref, s.stayingBefore(ref, anchor, items)+1, items)
}

// stayingBefore counts the children of ref ahead of anchor that are not
// among items.
func (s *Snapshot[T]) stayingBefore(ref Ref[T], anchor T, items []T) int {
	n := 0
	for _, child := range s.f.Children(ref) {
		if child == anchor {
			break
		}
		if !slices.Contains(items, child) {
			n++
		}
	}
	return n
}

// move detaches items and re-attaches them in order starting at index within
// ref. Expansion flags are untouched; items that leave the root level lose
// their group flag.
func (s *Snapshot[T]) move(op string, ref Ref[T], index int, items []T) {
	s.mustMove(op, ref, items)

	staying := 0
	for _, child := range s.f.Children(ref) {
		if !slices.Contains(items, child) {
			staying++
		}
	}
	s.mustFitIndex(op, ref, index, staying)
	if len(items) == 0 {
		return
	}

	f := s.mutable()
	for _, item := range items {
		f.Detach(item)
	}
	for i, item := range items {
		f.Attach(item, ref, index+i)
		if !ref.IsRoot() {
			f.SetGroup(item, false)
		}
	}
}

// Delete removes items and all their descendants.
func (s *Snapshot[T]) Delete(items ...T) {
	const op = "Delete"
	for _, item := range items {
		s.mustContain(op, item)
	}
	if len(items) == 0 {
		return
	}
	f := s.mutable()
	for _, item := range items {
		// An earlier item may have taken this one with it.
		f.Remove(item)
	}
}

// DeleteAll removes every item.
func (s *Snapshot[T]) DeleteAll() {
	s.mutable().Clear()
}

// ReplaceChildren deletes the subtree below parent and splices in the
// contents of other: its root items become parent's children. Expansion
// flags of the spliced items are carried over.
func (s *Snapshot[T]) ReplaceChildren(parent T, other *Snapshot[T]) {
	const op = "ReplaceChildren"
	s.mustContain(op, parent)
	for _, item := range other.f.PreOrder() {
		if item == parent || (s.f.Contains(item) && !s.f.IsAncestor(parent, item)) {
			violate(op, ErrDuplicateItem, "item %v already exists outside %v", item, parent)
		}
	}

	src := other.f
	f := s.mutable()
	for _, child := range clone(f.Children(Under(parent))) {
		f.Remove(child)
	}
	for _, root := range src.Children(Root[T]()) {
		f.Append(root, Under(parent))
		f.SetExpanded(root, src.Expanded(root))
		copySubtree(f, src, root, Under(root))
	}
}

// Expand sets the expansion flag of items.
func (s *Snapshot[T]) Expand(items ...T) {
	s.setExpanded("Expand", items, true)
}

// Collapse clears the expansion flag of items.
func (s *Snapshot[T]) Collapse(items ...T) {
	s.setExpanded("Collapse", items, false)
}

func (s *Snapshot[T]) setExpanded(op string, items []T, expanded bool) {
	for _, item := range items {
		s.mustContain(op, item)
	}
	if len(items) == 0 {
		return
	}
	f := s.mutable()
	for _, item := range items {
		f.SetExpanded(item, expanded)
	}
}

// ExpandAll expands every item that has children. Flags on leaves are left
// as they are.
func (s *Snapshot[T]) ExpandAll() {
	f := s.mutable()
	f.Walk(Root[T](), func(item T, _ int) bool {
		if f.ChildCount(Under(item)) > 0 {
			f.SetExpanded(item, true)
		}
		return true
	})
}

// CollapseAll clears every expansion flag.
func (s *Snapshot[T]) CollapseAll() {
	f := s.mutable()
	f.Walk(Root[T](), func(item T, _ int) bool {
		f.SetExpanded(item, false)
		return true
	})
}

// ExpandParents expands every ancestor of item so that it becomes visible.
func (s *Snapshot[T]) ExpandParents(item T) {
	s.mustContain("ExpandParents", item)
	f := s.mutable()
	parent, ok := f.Parent(item).Item()
	for ok {
		f.SetExpanded(parent, true)
		parent, ok = f.Parent(parent).Item()
	}
}

// MarkGroups flags root items as group items.
func (s *Snapshot[T]) MarkGroups(items ...T) {
	s.setGroup("MarkGroups", items, true)
}

// UnmarkGroups clears the group flag of items.
func (s *Snapshot[T]) UnmarkGroups(items ...T) {
	s.setGroup("UnmarkGroups", items, false)
}

func (s *Snapshot[T]) setGroup(op string, items []T, group bool) {
	for _, item := range items {
		s.mustContain(op, item)
		if group && !s.f.Parent(item).IsRoot() {
			violate(op, ErrNotRootItem, "item %v", item)
		}
	}
	if len(items) == 0 {
		return
	}
	f := s.mutable()
	for _, item := range items {
		f.SetGroup(item, group)
	}
}

// SetGroupsCollapsible controls whether group items honour their expansion
// flag. When false (the default) group items always show expanded.
func (s *Snapshot[T]) SetGroupsCollapsible(collapsible bool) {
	s.groupsCollapsible = collapsible
}

func (s *Snapshot[T]) mustContain(op string, item T) {
	if !s.f.Contains(item) {
		violate(op, ErrItemNotFound, "item %v", item)
	}
}

func (s *Snapshot[T]) mustBeNew(op string, items []T) {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup || s.f.Contains(item) {
			violate(op, ErrDuplicateItem, "item %v", item)
		}
		seen[item] = struct{}{}
	}
}

func (s *Snapshot[T]) mustFitIndex(op string, ref Ref[T], index, count int) {
	if index < 0 || index > count {
		violate(op, ErrIndexOutOfRange, "index %d in %v (count %d)", index, ref, count)
	}
}

func (s *Snapshot[T]) mustAnchor(op string, anchor T, items []T) {
	s.mustContain(op, anchor)
	for _, item := range items {
		if item == anchor {
			violate(op, ErrInvalidAnchor, "anchor %v is being moved", anchor)
		}
	}
}

// mustMove checks that items exist, are distinct, and that none of them is
// ref's item or one of its ancestors.
func (s *Snapshot[T]) mustMove(op string, ref Ref[T], items []T) {
	target, hasTarget := ref.Item()
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		s.mustContain(op, item)
		if _, dup := seen[item]; dup {
			violate(op, ErrDuplicateItem, "item %v listed twice", item)
		}
		seen[item] = struct{}{}
		if hasTarget && (item == target || s.f.IsAncestor(item, target)) {
			violate(op, ErrCycle, "cannot move %v under %v", item, target)
		}
	}
}
