package handlers

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsafer/sudoku-server/internal/sudoku"
)

func TestParseCreateSolveDTO(t *testing.T) {
	t.Parallel()

	dto, err := ParseCreateSolveDTO(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, defaultSolutionLimit, dto.Limit)

	dto, err = ParseCreateSolveDTO(url.Values{"limit": {"3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, dto.Limit)

	_, err = ParseCreateSolveDTO(url.Values{"limit": {"many"}})
	assert.Error(t, err)
}

func TestEnumerateSample(t *testing.T) {
	t.Parallel()

	solutions, exhausted, err := enumerate(
		context.Background(), sudoku.Sample(), defaultSolutionLimit,
	)
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.True(t, exhausted)

	grid, err := sudoku.ParseDigits(solutions[0])
	require.NoError(t, err)
	assert.True(t, sudoku.Solved(&grid))
}

func TestEnumerateHitsLimit(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	var empty sudoku.Grid
	solutions, exhausted, err := enumerate(context.Background(), empty, 4)
	require.NoError(t, err)
	assert.Len(t, solutions, 4)
	assert.False(t, exhausted)
}

func TestEnumerateRejectsConflictingGivens(t *testing.T) {
	t.Parallel()

	grid := sudoku.Sample()
	grid[0][2] = 5
	_, _, err := enumerate(context.Background(), grid, defaultSolutionLimit)
	assert.ErrorIs(t, err, sudoku.ErrInconsistent)
}
