package qtip

import (
	"errors"
	"fmt"
	"os"
)

// Error kinds. Every failure returned by this package wraps exactly one of
// these sentinels, so callers branch with errors.Is:
//
//	if _, err := p.SetCell(1, 1, "x", ColSpan(9)); errors.Is(err, ErrOutOfRange) { ... }
var (
	// ErrInvalidArgument: a parameter has a bad value (column count,
	// margin, justification, key).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange: a line/column index is outside the current grid, or a
	// colspan would extend past the last column.
	ErrOutOfRange = errors.New("out of range")

	// ErrOverlappingCells: the requested span collides with a cell anchored
	// at a different column.
	ErrOverlappingCells = errors.New("overlapping cells")

	// ErrPrecondition: structural ordering violated, e.g. adding a line
	// before any column exists.
	ErrPrecondition = errors.New("precondition violated")

	// ErrConflictingState: the mutation is unsafe given derived state, e.g.
	// changing the margin of a column inside an unresolved colspan.
	ErrConflictingState = errors.New("conflicting state")
)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func outOfRangef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}

func errOverlapf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOverlappingCells, fmt.Sprintf(format, args...))
}

func errPreconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func errConflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflictingState, fmt.Sprintf(format, args...))
}

// ErrorHandler receives errors raised by user cleanup hooks during panel
// release. Release never propagates hook errors - teardown is unconditional.
// Replace this to route hook failures somewhere other than stderr.
var ErrorHandler = func(err error) {
	fmt.Fprintln(os.Stderr, "qtip:", err)
}
