package outline

// ExpansionDelta returns the items that must be expanded and collapsed when
// moving from one snapshot to another.
//
// An item counts as expanded when its flag is set, or when it is a group item
// of a snapshot whose groups cannot be collapsed. The result is the set
// difference in each direction; the order of both slices is unspecified.
func ExpansionDelta[T comparable](from, to *Snapshot[T]) (expand, collapse []T) {
	before := from.shownExpanded()
	after := to.shownExpanded()

	for item := range after {
		if _, ok := before[item]; !ok {
			expand = append(expand, item)
		}
	}
	for item := range before {
		if _, ok := after[item]; !ok {
			collapse = append(collapse, item)
		}
	}
	return expand, collapse
}

// shownExpanded returns the set of items displayed expanded.
func (s *Snapshot[T]) shownExpanded() map[T]struct{} {
	set := make(map[T]struct{})
	s.f.Walk(Root[T](), func(item T, _ int) bool {
		if s.ShowsExpanded(item) {
			set[item] = struct{}{}
		}
		return true
	})
	return set
}
