package sudoku

// Consistent reports whether the filled cells of g respect row,
// column and box uniqueness. Empty cells are ignored, so a partial
// puzzle with non-conflicting givens is consistent.
func Consistent(g *Grid) bool {
	var rows, cols, boxes [9]uint16
	for r := range 9 {
		for c := range 9 {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			box := r/3*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[box]&bit != 0 {
				return false
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[box] |= bit
		}
	}
	return true
}

// Solved reports whether g is a complete solution: no empty cells
// and every row, column and box a permutation of 1..9.
func Solved(g *Grid) bool {
	for r := range 9 {
		for c := range 9 {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return Consistent(g)
}
