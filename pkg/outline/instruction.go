package outline

import "fmt"

// Kind is the type of an edit instruction.
type Kind uint8

const (
	// KindInsert creates a new item (as a leaf) at Index of Parent.
	KindInsert Kind = iota
	// KindRemove deletes the item at Index of Parent together with its subtree.
	KindRemove
	// KindMove relocates the item at Index of Parent, with its subtree, so it
	// ends at ToIndex of ToParent.
	KindMove
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindRemove:
		return "remove"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// Instruction is one step of an edit script.
//
// Indices are relative to the tree as left by the preceding instructions of
// the same script, so a script must be applied in order and in full.
type Instruction[T comparable] struct {
	Kind Kind
	Item T

	// Index and Parent locate the item before the step (Remove, Move) or the
	// position it is created at (Insert).
	Index  int
	Parent Ref[T]

	// ToIndex and ToParent are the destination of a Move. ToIndex is the
	// final position, after the item has been detached from its origin.
	ToIndex  int
	ToParent Ref[T]
}

// IsReparent reports whether the instruction is a Move that changes parents.
func (in Instruction[T]) IsReparent() bool {
	return in.Kind == KindMove && in.Parent != in.ToParent
}

// String returns a one-line description, e.g. "move A 0@<root> -> 1@<root>".
func (in Instruction[T]) String() string {
	switch in.Kind {
	case KindMove:
		return fmt.Sprintf("move %v %d@%v -> %d@%v", in.Item, in.Index, in.Parent, in.ToIndex, in.ToParent)
	default:
		return fmt.Sprintf("%s %v %d@%v", in.Kind, in.Item, in.Index, in.Parent)
	}
}

// Stats summarizes an edit script.
type Stats struct {
	Inserts   int
	Removes   int
	Moves     int
	Reparents int // moves that change parent; included in Moves
}

// Total returns the number of instructions.
func (s Stats) Total() int {
	return s.Inserts + s.Removes + s.Moves
}

// Summarize counts the instructions of script by kind.
func Summarize[T comparable](script []Instruction[T]) Stats {
	var st Stats
	for _, in := range script {
		switch in.Kind {
		case KindInsert:
			st.Inserts++
		case KindRemove:
			st.Removes++
		case KindMove:
			st.Moves++
			if in.IsReparent() {
				st.Reparents++
			}
		}
	}
	return st
}
