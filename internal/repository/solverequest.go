package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SolveRequest struct {
	SolveRequestId int64
	AccountId      *int64
	Puzzle         string
	SolutionLimit  int32
	SolutionCount  int32
	Exhausted      bool
	CreatedAt      pgtype.Timestamptz
}

type CreateSolveRequestParams struct {
	AccountId     *int64
	Puzzle        string
	SolutionLimit int32
	SolutionCount int32
	Exhausted     bool
}

func (q Queries) CreateSolveRequest(
	ctx context.Context, params CreateSolveRequestParams,
) (*SolveRequest, error) {
	args := pgx.NamedArgs{
		"puzzle":         params.Puzzle,
		"solution_limit": params.SolutionLimit,
		"solution_count": params.SolutionCount,
		"exhausted":      params.Exhausted,
	}
	if params.AccountId != nil {
		args["account_id"] = *params.AccountId
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_request (
			account_id, puzzle, solution_limit, solution_count, exhausted
		)
		VALUES (
			@account_id, @puzzle, @solution_limit, @solution_count, @exhausted
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[SolveRequest],
	)
}

func (q Queries) FetchSolveRequest(
	ctx context.Context, solveRequestId int64,
) (*SolveRequest, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM solve_request WHERE solve_request_id = $1",
		solveRequestId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveRequest])
}

func (q Queries) ListAccountSolveRequests(
	ctx context.Context, accountId int64,
) ([]SolveRequest, error) {
	rows, err := q.db.Query(
		ctx,
		"SELECT * FROM solve_request WHERE account_id = $1 ORDER BY created_at DESC",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveRequest])
}
