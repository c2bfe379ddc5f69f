package outline

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDuplicateItem indicates an item that already exists in the snapshot
	// (anywhere in the tree) or appears twice in the same call.
	ErrDuplicateItem = errors.New("outline: duplicate item")

	// ErrItemNotFound indicates a reference to an item that is not in the snapshot.
	ErrItemNotFound = errors.New("outline: item not found")

	// ErrIndexOutOfRange indicates a child index beyond the parent's child count.
	ErrIndexOutOfRange = errors.New("outline: index out of range")

	// ErrCycle indicates a move that would make an item its own ancestor.
	ErrCycle = errors.New("outline: move would create a cycle")

	// ErrInvalidAnchor indicates an anchor that is itself being moved.
	ErrInvalidAnchor = errors.New("outline: invalid anchor")

	// ErrNotRootItem indicates a group flag on an item below the root level.
	ErrNotRootItem = errors.New("outline: group items must be root items")
)

// ContractError describes a programmer error detected by a snapshot
// operation. Snapshot methods panic with a *ContractError before touching any
// state; use Catch to turn the panic back into an error.
type ContractError struct {
	// Op is the name of the failing operation, e.g. "AppendChildren".
	Op string

	// Kind is the sentinel describing the violation (ErrDuplicateItem, ...).
	Kind error

	err error
}

func (e *ContractError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error, which carries the stack of the call
// that violated the contract.
func (e *ContractError) Unwrap() error {
	return e.err
}

// Is matches the violation kind so both errors.Is implementations work.
func (e *ContractError) Is(target error) bool {
	return target == e.Kind
}

// violate panics with a ContractError of the given kind.
func violate(op string, kind error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	err := errors.Mark(errors.NewWithDepthf(1, "outline: %s: %s", op, msg), kind)
	panic(&ContractError{Op: op, Kind: kind, err: err})
}

// Catch runs fn and returns the contract violation it panicked with, if any.
// Panics that are not contract violations are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	fn()
	return nil
}

// IsContractViolation reports whether err is (or wraps) a *ContractError.
func IsContractViolation(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
