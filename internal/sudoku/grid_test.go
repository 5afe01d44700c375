package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Parallel()

	rows := Sample().Rows()
	grid, err := NewGrid(rows)
	require.NoError(t, err)
	assert.Equal(t, Sample(), grid)
}

func TestNewGridRejectsBadShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells [][]int
		want  error
	}{
		{name: "nil", cells: nil, want: ErrBadSize},
		{name: "too few rows", cells: make([][]int, 8), want: ErrBadSize},
		{
			name: "short row",
			cells: func() [][]int {
				cells := Sample().Rows()
				cells[4] = cells[4][:8]
				return cells
			}(),
			want: ErrBadSize,
		},
		{
			name: "cell too large",
			cells: func() [][]int {
				cells := Sample().Rows()
				cells[0][0] = 10
				return cells
			}(),
			want: ErrBadCell,
		},
		{
			name: "negative cell",
			cells: func() [][]int {
				cells := Sample().Rows()
				cells[8][8] = -1
				return cells
			}(),
			want: ErrBadCell,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewGrid(test.cells)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestDigitsRoundTrip(t *testing.T) {
	t.Parallel()

	digits := Sample().Digits()
	require.Len(t, digits, 81)

	grid, err := ParseDigits(digits)
	require.NoError(t, err)
	assert.Equal(t, Sample(), grid)
}

func TestParseDigitsRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := ParseDigits("123")
	assert.ErrorIs(t, err, ErrBadSize)

	bad := strings.Repeat("0", 80) + "x"
	_, err = ParseDigits(bad)
	assert.ErrorIs(t, err, ErrBadCell)
}

func TestGridString(t *testing.T) {
	t.Parallel()

	s := Sample().String()
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "5\t3\t0\t0\t7\t0\t0\t0\t0", lines[0])
	assert.Equal(t, "0\t0\t0\t0\t8\t0\t0\t7\t9", lines[8])
}
