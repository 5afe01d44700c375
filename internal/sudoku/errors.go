package sudoku

import "errors"

var (
	// ErrBadSize means the input is not exactly 9 rows of 9 cells.
	ErrBadSize = errors.New("grid must be 9x9")
	// ErrBadCell means a cell holds a value outside [0,9].
	ErrBadCell = errors.New("cell value out of range")
	// ErrInconsistent means the pre-filled digits already violate a
	// row, column or box uniqueness constraint, so enumerating
	// completions would produce garbage.
	ErrInconsistent = errors.New("grid givens are inconsistent")
)
