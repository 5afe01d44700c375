package sudoku

import "context"

// Possible reports whether digit can be placed at (row, col) without
// duplicating it in that row, that column, or the 3x3 box containing
// the cell. It assumes row and col are in [0,9) and digit in [1,9];
// the solver guarantees this by construction.
func Possible(g *Grid, row, col int, digit uint8) bool {
	for i := range 9 {
		if g[row][i] == digit {
			return false
		}
	}
	for i := range 9 {
		if g[i][col] == digit {
			return false
		}
	}
	r0, c0 := row-row%3, col-col%3
	for r := r0; r < r0+3; r++ {
		for c := c0; c < c0+3; c++ {
			if g[r][c] == digit {
				return false
			}
		}
	}
	return true
}

// Solve enumerates every completion of g by depth-first backtracking
// and calls emit once per completion with an independent snapshot of
// the solved grid. Solutions arrive in the order the search discovers
// them: first empty cell in row-major order, digits 1 through 9
// ascending. emit may return false to stop the enumeration early;
// ctx is checked before each descent, so cancelling it also stops
// the search.
//
// The grid is validated up front: a cell outside [0,9] fails with
// ErrBadCell and mutually conflicting givens fail with
// ErrInconsistent. g is mutated during the search but every placement
// is undone, so it is unchanged when Solve returns.
func Solve(ctx context.Context, g *Grid, emit func(Grid) bool) error {
	if err := g.check(); err != nil {
		return err
	}
	if !Consistent(g) {
		return ErrInconsistent
	}
	solve(ctx, g, emit)
	return ctx.Err()
}

func solve(ctx context.Context, g *Grid, emit func(Grid) bool) bool {
	row, col, ok := firstEmpty(g)
	if !ok {
		// No empty cell left. Every placement passed Possible, so
		// the grid is a solution; the array dereference snapshots it.
		return emit(*g)
	}
	for digit := uint8(1); digit <= 9; digit++ {
		if ctx.Err() != nil {
			return false
		}
		if Possible(g, row, col, digit) {
			g[row][col] = digit
			more := solve(ctx, g, emit)
			g[row][col] = 0
			if !more {
				return false
			}
		}
	}
	return true
}

func firstEmpty(g *Grid) (int, int, bool) {
	for r := range 9 {
		for c := range 9 {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// SolveAll collects the solutions of g in discovery order. It works
// on a private copy, so the caller's grid is never touched. A limit
// of zero or less means unbounded; beware that an under-constrained
// grid can have a combinatorially large number of completions.
func SolveAll(ctx context.Context, g *Grid, limit int) ([]Grid, error) {
	work := *g
	var solutions []Grid
	err := Solve(ctx, &work, func(s Grid) bool {
		solutions = append(solutions, s)
		return limit <= 0 || len(solutions) < limit
	})
	if err != nil {
		return nil, err
	}
	return solutions, nil
}
