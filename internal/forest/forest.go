package forest

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Ref names a position in the hierarchy: either the root level (zero value)
// or the child list of a specific item.
type Ref[T comparable] struct {
	item  T
	valid bool
}

// Root returns the Ref for the root level.
func Root[T comparable]() Ref[T] {
	return Ref[T]{}
}

// Under returns the Ref for the child list of item.
func Under[T comparable](item T) Ref[T] {
	return Ref[T]{item: item, valid: true}
}

// Item returns the referenced parent item and true, or the zero value and
// false for the root level.
func (r Ref[T]) Item() (T, bool) {
	return r.item, r.valid
}

// IsRoot reports whether r names the root level.
func (r Ref[T]) IsRoot() bool {
	return !r.valid
}

// String implements fmt.Stringer.
func (r Ref[T]) String() string {
	if !r.valid {
		return "<root>"
	}
	return fmt.Sprint(r.item)
}

// node holds the per-item structure.
type node[T comparable] struct {
	parent   Ref[T]
	children []T
	expanded bool
	group    bool
}

// Forest is an ordered, multi-rooted tree keyed by item identity.
//
// Forest performs no validation: inserting a duplicate, referencing a missing
// item, or creating a cycle corrupts it. Callers are expected to have checked
// their input already (the outline package does so before every mutation).
type Forest[T comparable] struct {
	roots []T
	nodes map[T]*node[T]

	// refs counts additional holders sharing this forest (copy-on-write).
	refs atomic.Int32
}

// New creates an empty forest.
func New[T comparable]() *Forest[T] {
	return &Forest[T]{
		roots: make([]T, 0),
		nodes: make(map[T]*node[T]),
	}
}

// Share registers one more holder of f and returns f.
func (f *Forest[T]) Share() *Forest[T] {
	f.refs.Add(1)
	return f
}

// Own returns a forest the caller may mutate: f itself when it has no other
// holders, otherwise a private deep copy (and f loses one holder).
//
// The copy is taken while the caller still holds its share, so the last
// holder cannot start mutating f while it is being copied.
func (f *Forest[T]) Own() *Forest[T] {
	var c *Forest[T]
	for {
		n := f.refs.Load()
		if n <= 0 {
			return f
		}
		if c == nil {
			c = f.Copy()
		}
		if f.refs.CompareAndSwap(n, n-1) {
			return c
		}
	}
}

// Len returns the number of items in the forest.
func (f *Forest[T]) Len() int {
	return len(f.nodes)
}

// Contains reports whether item is in the forest.
func (f *Forest[T]) Contains(item T) bool {
	_, ok := f.nodes[item]
	return ok
}

// Parent returns the Ref of item's parent. Missing items report the root level.
func (f *Forest[T]) Parent(item T) Ref[T] {
	if n, ok := f.nodes[item]; ok {
		return n.parent
	}
	return Ref[T]{}
}

// Children returns the child list at ref. The returned slice is owned by the
// forest and must not be modified.
func (f *Forest[T]) Children(ref Ref[T]) []T {
	if !ref.valid {
		return f.roots
	}
	if n, ok := f.nodes[ref.item]; ok {
		return n.children
	}
	return nil
}

// ChildCount returns the number of children at ref.
func (f *Forest[T]) ChildCount(ref Ref[T]) int {
	return len(f.Children(ref))
}

// IndexInParent returns item's position within its parent's child list, or -1.
func (f *Forest[T]) IndexInParent(item T) int {
	n, ok := f.nodes[item]
	if !ok {
		return -1
	}
	return slices.Index(f.Children(n.parent), item)
}

// Depth returns the number of ancestors of item (0 for root items).
func (f *Forest[T]) Depth(item T) int {
	depth := 0
	n, ok := f.nodes[item]
	for ok && n.parent.valid {
		depth++
		n, ok = f.nodes[n.parent.item]
	}
	return depth
}

// IsAncestor reports whether a is a proper ancestor of b.
func (f *Forest[T]) IsAncestor(a, b T) bool {
	n, ok := f.nodes[b]
	for ok && n.parent.valid {
		if n.parent.item == a {
			return true
		}
		n, ok = f.nodes[n.parent.item]
	}
	return false
}

// Expanded reports the expansion flag of item.
func (f *Forest[T]) Expanded(item T) bool {
	if n, ok := f.nodes[item]; ok {
		return n.expanded
	}
	return false
}

// SetExpanded sets the expansion flag of item.
func (f *Forest[T]) SetExpanded(item T, expanded bool) {
	if n, ok := f.nodes[item]; ok {
		n.expanded = expanded
	}
}

// Group reports whether item is flagged as a group item.
func (f *Forest[T]) Group(item T) bool {
	if n, ok := f.nodes[item]; ok {
		return n.group
	}
	return false
}

// SetGroup sets the group flag of item.
func (f *Forest[T]) SetGroup(item T, group bool) {
	if n, ok := f.nodes[item]; ok {
		n.group = group
	}
}

// Insert creates item as a leaf at index within ref's child list.
func (f *Forest[T]) Insert(item T, ref Ref[T], index int) {
	f.nodes[item] = &node[T]{parent: ref}
	f.Attach(item, ref, index)
}

// Append creates item as the last child of ref.
func (f *Forest[T]) Append(item T, ref Ref[T]) {
	f.Insert(item, ref, f.ChildCount(ref))
}

// Move relocates item (with its subtree) so that it ends at index within
// ref's child list. Returns item's previous parent and index.
func (f *Forest[T]) Move(item T, ref Ref[T], index int) (Ref[T], int) {
	fromRef, fromIndex := f.Detach(item)
	f.Attach(item, ref, index)
	return fromRef, fromIndex
}

// Remove deletes item and its whole subtree. Returns the number of items removed.
func (f *Forest[T]) Remove(item T) int {
	if _, ok := f.nodes[item]; !ok {
		return 0
	}
	f.Detach(item)
	return f.drop(item)
}

// Clear removes every item.
func (f *Forest[T]) Clear() {
	f.roots = make([]T, 0)
	f.nodes = make(map[T]*node[T])
}

// drop deletes item and its descendants from the node map.
func (f *Forest[T]) drop(item T) int {
	n := f.nodes[item]
	count := 1
	for _, child := range n.children {
		count += f.drop(child)
	}
	delete(f.nodes, item)
	return count
}

// Detach unlinks item from its parent's child list, keeping its node and
// subtree. The item must be re-attached before the forest is used further.
// Returns the previous parent and index.
func (f *Forest[T]) Detach(item T) (Ref[T], int) {
	n := f.nodes[item]
	ref := n.parent
	list := f.Children(ref)
	index := slices.Index(list, item)
	list = slices.Delete(list, index, index+1)
	f.setChildren(ref, list)
	return ref, index
}

// Attach links a detached item into ref's child list at index.
func (f *Forest[T]) Attach(item T, ref Ref[T], index int) {
	f.nodes[item].parent = ref
	f.setChildren(ref, slices.Insert(f.Children(ref), index, item))
}

func (f *Forest[T]) setChildren(ref Ref[T], list []T) {
	if !ref.valid {
		f.roots = list
		return
	}
	f.nodes[ref.item].children = list
}

// Walk visits items under ref in pre-order. depth is relative to ref's
// children (0). Returning false from fn skips the item's subtree.
func (f *Forest[T]) Walk(ref Ref[T], fn func(item T, depth int) bool) {
	f.walk(f.Children(ref), 0, fn)
}

func (f *Forest[T]) walk(items []T, depth int, fn func(T, int) bool) {
	for _, item := range items {
		if fn(item, depth) {
			f.walk(f.nodes[item].children, depth+1, fn)
		}
	}
}

// PreOrder returns every item in depth-first pre-order.
func (f *Forest[T]) PreOrder() []T {
	out := make([]T, 0, len(f.nodes))
	f.Walk(Ref[T]{}, func(item T, _ int) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Descendants returns all items below ref in pre-order.
func (f *Forest[T]) Descendants(ref Ref[T]) []T {
	var out []T
	f.Walk(ref, func(item T, _ int) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Copy returns a deep copy of f with no other holders.
func (f *Forest[T]) Copy() *Forest[T] {
	c := &Forest[T]{
		roots: slices.Clone(f.roots),
		nodes: make(map[T]*node[T], len(f.nodes)),
	}
	if c.roots == nil {
		c.roots = make([]T, 0)
	}
	for item, n := range f.nodes {
		c.nodes[item] = &node[T]{
			parent:   n.parent,
			children: slices.Clone(n.children),
			expanded: n.expanded,
			group:    n.group,
		}
	}
	return c
}

// Equal reports whether f and other have identical structure: the same root
// order and the same ordered children for every item. Flags are ignored.
func (f *Forest[T]) Equal(other *Forest[T]) bool {
	if len(f.nodes) != len(other.nodes) || !slices.Equal(f.roots, other.roots) {
		return false
	}
	for item, n := range f.nodes {
		o, ok := other.nodes[item]
		if !ok || n.parent != o.parent || !slices.Equal(n.children, o.children) {
			return false
		}
	}
	return true
}
