package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Solution struct {
	SolveRequestId int64
	Ord            int32
	Grid           string
}

// AddSolutions bulk-inserts the solutions of a request, preserving
// discovery order in ord.
func (q Queries) AddSolutions(
	ctx context.Context, solveRequestId int64, grids []string,
) (int64, error) {
	rows := make([][]any, len(grids))
	for i, grid := range grids {
		rows[i] = []any{solveRequestId, int32(i + 1), grid}
	}
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"solution"},
		[]string{"solve_request_id", "ord", "grid"},
		pgx.CopyFromRows(rows),
	)
}

func (q Queries) ListSolutions(
	ctx context.Context, solveRequestId int64,
) ([]Solution, error) {
	rows, err := q.db.Query(
		ctx,
		"SELECT * FROM solution WHERE solve_request_id = $1 ORDER BY ord",
		solveRequestId,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Solution])
}
