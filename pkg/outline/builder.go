package outline

// Branch is a declarative description of an item and its subtree, used to
// build snapshots from nested literals:
//
//	snap := outline.Build(
//	    outline.Node("Inbox").AsGroup(),
//	    outline.Node("Projects",
//	        outline.Node("Alpha"),
//	        outline.Node("Beta"),
//	    ).Expand(),
//	)
type Branch[T comparable] struct {
	Item     T
	Expanded bool
	Group    bool
	Children []Branch[T]
}

// Node returns a collapsed branch for item with the given children.
func Node[T comparable](item T, children ...Branch[T]) Branch[T] {
	return Branch[T]{Item: item, Children: children}
}

// Expand returns a copy of b marked expanded.
func (b Branch[T]) Expand() Branch[T] {
	b.Expanded = true
	return b
}

// AsGroup returns a copy of b marked as a group item.
func (b Branch[T]) AsGroup() Branch[T] {
	b.Group = true
	return b
}

// Build creates a snapshot from branches, which become the root items.
func Build[T comparable](branches ...Branch[T]) *Snapshot[T] {
	s := New[T]()
	s.AppendBranches(branches...)
	return s
}

// AppendBranches appends branches (with their subtrees) as trailing root items.
func (s *Snapshot[T]) AppendBranches(branches ...Branch[T]) {
	s.appendBranches("AppendBranches", Root[T](), branches)
}

// AppendBranchesTo appends branches as trailing children of parent.
func (s *Snapshot[T]) AppendBranchesTo(parent T, branches ...Branch[T]) {
	const op = "AppendBranchesTo"
	s.mustContain(op, parent)
	s.appendBranches(op, Under(parent), branches)
}

func (s *Snapshot[T]) appendBranches(op string, ref Ref[T], branches []Branch[T]) {
	var items []T
	var check func(bs []Branch[T], root bool)
	check = func(bs []Branch[T], root bool) {
		for _, b := range bs {
			if b.Group && !root {
				violate(op, ErrNotRootItem, "item %v", b.Item)
			}
			items = append(items, b.Item)
			check(b.Children, false)
		}
	}
	check(branches, ref.IsRoot())
	s.mustBeNew(op, items)
	if len(items) == 0 {
		return
	}

	f := s.mutable()
	var add func(bs []Branch[T], ref Ref[T])
	add = func(bs []Branch[T], ref Ref[T]) {
		for _, b := range bs {
			f.Append(b.Item, ref)
			f.SetExpanded(b.Item, b.Expanded)
			f.SetGroup(b.Item, b.Group)
			add(b.Children, Under(b.Item))
		}
	}
	add(branches, ref)
}

// Branches exports the snapshot as nested branches, the inverse of Build.
func (s *Snapshot[T]) Branches() []Branch[T] {
	var export func(items []T) []Branch[T]
	export = func(items []T) []Branch[T] {
		if len(items) == 0 {
			return nil
		}
		out := make([]Branch[T], 0, len(items))
		for _, item := range items {
			out = append(out, Branch[T]{
				Item:     item,
				Expanded: s.f.Expanded(item),
				Group:    s.f.Group(item),
				Children: export(s.f.Children(Under(item))),
			})
		}
		return out
	}
	return export(s.f.Children(Root[T]()))
}
