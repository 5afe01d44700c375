package sudoku

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSolution = Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolveSample(t *testing.T) {
	t.Parallel()

	grid := Sample()
	solutions, err := SolveAll(context.Background(), &grid, 0)
	require.NoError(t, err)
	require.Len(t, solutions, 1)

	assert.Equal(t, sampleSolution, solutions[0])
	assert.Equal(t,
		[9]uint8{5, 3, 4, 6, 7, 8, 9, 1, 2},
		solutions[0][0],
	)
	assert.True(t, Solved(&solutions[0]))
}

func TestSolveAllLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	grid := Sample()
	_, err := SolveAll(context.Background(), &grid, 0)
	require.NoError(t, err)
	assert.Equal(t, Sample(), grid)
}

func TestSolveRestoresGrid(t *testing.T) {
	t.Parallel()

	grid := Sample()
	err := Solve(context.Background(), &grid, func(Grid) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, Sample(), grid)
}

func TestSolveFullGridIsItsOwnSolution(t *testing.T) {
	t.Parallel()

	grid := sampleSolution
	solutions, err := SolveAll(context.Background(), &grid, 0)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, sampleSolution, solutions[0])
}

func TestSolveEmptyGridHasManySolutions(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	var grid Grid
	solutions, err := SolveAll(context.Background(), &grid, 5)
	require.NoError(t, err)
	require.Len(t, solutions, 5)
	for i := range solutions {
		assert.True(t, Solved(&solutions[i]), "solution %d is invalid", i)
	}
}

func TestSolveIdempotent(t *testing.T) {
	t.Parallel()

	grid := Sample()
	first, err := SolveAll(context.Background(), &grid, 0)
	require.NoError(t, err)
	second, err := SolveAll(context.Background(), &grid, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveEmitStopsEnumeration(t *testing.T) {
	t.Parallel()

	var grid Grid
	calls := 0
	err := Solve(context.Background(), &grid, func(Grid) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSolveHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var grid Grid
	calls := 0
	err := Solve(ctx, &grid, func(Grid) bool {
		calls++
		return true
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestSolveSnapshotsAreIndependent(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	var grid Grid
	solutions, err := SolveAll(context.Background(), &grid, 3)
	require.NoError(t, err)
	require.Len(t, solutions, 3)
	// Continued search mutates the working grid after each emit; a
	// shared buffer would make earlier snapshots equal to later ones.
	assert.NotEqual(t, solutions[0], solutions[1])
	assert.NotEqual(t, solutions[1], solutions[2])
}

func TestSolveRejectsInconsistentGivens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mut  func(*Grid)
	}{
		{
			name: "row duplicate",
			mut:  func(g *Grid) { g[0][0], g[0][8] = 5, 5 },
		},
		{
			name: "column duplicate",
			mut:  func(g *Grid) { g[0][0], g[8][0] = 5, 5 },
		},
		{
			name: "box duplicate",
			mut:  func(g *Grid) { g[0][0], g[1][1] = 5, 5 },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var grid Grid
			test.mut(&grid)
			err := Solve(context.Background(), &grid, func(Grid) bool { return true })
			assert.ErrorIs(t, err, ErrInconsistent)
		})
	}
}

func TestSolveRejectsOutOfRangeCell(t *testing.T) {
	t.Parallel()

	var grid Grid
	grid[4][4] = 10
	err := Solve(context.Background(), &grid, func(Grid) bool { return true })
	assert.ErrorIs(t, err, ErrBadCell)
}

func TestPossible(t *testing.T) {
	t.Parallel()

	var grid Grid
	grid[3][7] = 4 // row constraint for (3, 0)
	grid[8][2] = 6 // column constraint for (0, 2)
	grid[7][7] = 9 // box constraint for (6, 6)

	tests := []struct {
		name     string
		row, col int
		digit    uint8
		want     bool
	}{
		{name: "digit already in row", row: 3, col: 0, digit: 4, want: false},
		{name: "digit already in column", row: 0, col: 2, digit: 6, want: false},
		{name: "digit already in box", row: 6, col: 6, digit: 9, want: false},
		{name: "same cell other digit", row: 3, col: 0, digit: 5, want: true},
		{name: "same digit elsewhere", row: 0, col: 0, digit: 9, want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := Possible(&grid, test.row, test.col, test.digit)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestPossibleHoldsAfterEveryPlacement(t *testing.T) {
	t.Parallel()

	grid := Sample()
	// Re-run the search manually and assert the uniqueness invariant
	// after each placement, not just on completed grids.
	var dfs func() bool
	dfs = func() bool {
		r, c, ok := firstEmpty(&grid)
		if !ok {
			return true
		}
		for digit := uint8(1); digit <= 9; digit++ {
			if Possible(&grid, r, c, digit) {
				grid[r][c] = digit
				if !Consistent(&grid) {
					t.Fatalf("placing %d at %d:%d broke consistency", digit, r, c)
				}
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	require.True(t, dfs())
}
