package outline

// Replay returns a copy of base with script applied in order. Inserted items
// start collapsed; moved items keep their expansion flag.
//
// Each instruction is checked against the tree as left by the previous ones:
// the item must sit at the stated origin, destinations must exist and fit.
// A mismatch panics with a *ContractError and base is left untouched.
func Replay[T comparable](base *Snapshot[T], script []Instruction[T]) *Snapshot[T] {
	const op = "Replay"
	if len(script) == 0 {
		return base.Clone()
	}
	f := base.f.Copy()

	mustAt := func(i int, in Instruction[T]) {
		if p, ok := in.Parent.Item(); ok && !f.Contains(p) {
			violate(op, ErrItemNotFound, "instruction %d (%v): parent %v", i, in, p)
		}
		list := f.Children(in.Parent)
		if in.Index < 0 || in.Index >= len(list) || list[in.Index] != in.Item {
			violate(op, ErrIndexOutOfRange, "instruction %d (%v): item not at %d@%v", i, in, in.Index, in.Parent)
		}
	}
	mustFit := func(i int, in Instruction[T], ref Ref[T], index int) {
		if p, ok := ref.Item(); ok && !f.Contains(p) {
			violate(op, ErrItemNotFound, "instruction %d (%v): parent %v", i, in, p)
		}
		if index < 0 || index > f.ChildCount(ref) {
			violate(op, ErrIndexOutOfRange, "instruction %d (%v): index %d in %v", i, in, index, ref)
		}
	}

	for i, in := range script {
		switch in.Kind {
		case KindInsert:
			if f.Contains(in.Item) {
				violate(op, ErrDuplicateItem, "instruction %d (%v)", i, in)
			}
			mustFit(i, in, in.Parent, in.Index)
			f.Insert(in.Item, in.Parent, in.Index)
		case KindRemove:
			mustAt(i, in)
			f.Remove(in.Item)
		case KindMove:
			mustAt(i, in)
			if p, ok := in.ToParent.Item(); ok && (p == in.Item || f.IsAncestor(in.Item, p)) {
				violate(op, ErrCycle, "instruction %d (%v)", i, in)
			}
			f.Detach(in.Item)
			mustFit(i, in, in.ToParent, in.ToIndex)
			f.Attach(in.Item, in.ToParent, in.ToIndex)
			if !in.ToParent.IsRoot() {
				f.SetGroup(in.Item, false)
			}
		default:
			violate(op, ErrInvalidAnchor, "instruction %d: unknown kind %v", i, in.Kind)
		}
	}

	return &Snapshot[T]{f: f, groupsCollapsible: base.groupsCollapsible}
}
