package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsistent(t *testing.T) {
	t.Parallel()

	grid := Sample()
	assert.True(t, Consistent(&grid))

	var empty Grid
	assert.True(t, Consistent(&empty))

	grid = Sample()
	grid[0][2] = 5 // duplicates the 5 at 0:0
	assert.False(t, Consistent(&grid))
}

func TestSolved(t *testing.T) {
	t.Parallel()

	grid := Sample()
	assert.False(t, Solved(&grid), "puzzle with holes is not solved")

	assert.True(t, Solved(&sampleSolution))

	full := sampleSolution
	full[4][4], full[4][5] = full[4][5], full[4][4]
	assert.False(t, Solved(&full), "swapped cells break row or column uniqueness")
}
