package sudoku

import (
	"fmt"
	"strings"
)

// Grid is a 9x9 sudoku grid. A zero cell is empty. Grid is a plain
// array value, so assigning one makes an independent deep copy.
type Grid [9][9]uint8

// NewGrid builds a Grid from dynamically shaped data (decoded JSON,
// parsed text) and enforces the structural contract: exactly 9 rows
// of 9 cells, every value in [0,9].
func NewGrid(cells [][]int) (Grid, error) {
	var g Grid
	if len(cells) != 9 {
		return g, fmt.Errorf("%w: %d rows", ErrBadSize, len(cells))
	}
	for r, row := range cells {
		if len(row) != 9 {
			return g, fmt.Errorf("%w: row %d has %d cells", ErrBadSize, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return g, fmt.Errorf("%w: %d at %d:%d", ErrBadCell, v, r, c)
			}
			g[r][c] = uint8(v)
		}
	}
	return g, nil
}

// ParseDigits decodes the 81-character digit-string form of a grid,
// row-major, '0' meaning empty.
func ParseDigits(s string) (Grid, error) {
	var g Grid
	if len(s) != 81 {
		return g, fmt.Errorf("%w: %d characters", ErrBadSize, len(s))
	}
	for i, ch := range []byte(s) {
		if ch < '0' || ch > '9' {
			return g, fmt.Errorf("%w: %q at index %d", ErrBadCell, ch, i)
		}
		g[i/9][i%9] = ch - '0'
	}
	return g, nil
}

// Digits is the inverse of [ParseDigits].
func (g Grid) Digits() string {
	b := make([]byte, 0, 81)
	for r := range 9 {
		for c := range 9 {
			b = append(b, '0'+g[r][c])
		}
	}
	return string(b)
}

// String renders the grid with rows joined by newlines and cells
// separated by tabs. Empty cells print as a literal "0".
func (g Grid) String() string {
	var b strings.Builder
	for r := range 9 {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range 9 {
			if c > 0 {
				b.WriteByte('\t')
			}
			b.WriteByte('0' + g[r][c])
		}
	}
	return b.String()
}

// Rows converts the grid back to dynamically shaped data for JSON
// responses.
func (g Grid) Rows() [][]int {
	rows := make([][]int, 9)
	for r := range 9 {
		rows[r] = make([]int, 9)
		for c := range 9 {
			rows[r][c] = int(g[r][c])
		}
	}
	return rows
}

// check guards against grids built by direct cell assignment rather
// than through [NewGrid] or [ParseDigits].
func (g *Grid) check() error {
	for r := range 9 {
		for c := range 9 {
			if g[r][c] > 9 {
				return fmt.Errorf("%w: %d at %d:%d", ErrBadCell, g[r][c], r, c)
			}
		}
	}
	return nil
}
