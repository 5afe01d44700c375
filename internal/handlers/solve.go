package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lsafer/sudoku-server/internal/config"
	"github.com/lsafer/sudoku-server/internal/middleware"
	"github.com/lsafer/sudoku-server/internal/repository"
	"github.com/lsafer/sudoku-server/internal/sudoku"
)

const (
	defaultSolutionLimit = 10
	maxSolutionLimit     = 1000

	// An under-constrained puzzle can have an astronomical number of
	// completions; the search is cut off rather than left running.
	solveTimeout = 10 * time.Second
)

var ErrBadLimit = fmt.Errorf("limit must be between 1 and %d", maxSolutionLimit)

type Solve struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewSolve(logger *slog.Logger, db *pgxpool.Pool, ws *config.WebSocket) *Solve {
	return &Solve{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

func contextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, solveTimeout)
}

// enumerate runs the backtracking search over puzzle, collecting at
// most limit solutions in digit-string form. exhausted reports
// whether the search space was fully explored.
func enumerate(
	ctx context.Context, puzzle sudoku.Grid, limit int,
) (solutions []string, exhausted bool, err error) {
	ctx, cancel := contextWithTimeout(ctx)
	defer cancel()

	err = sudoku.Solve(ctx, &puzzle, func(s sudoku.Grid) bool {
		solutions = append(solutions, s.Digits())
		return len(solutions) < limit
	})
	if err == nil {
		exhausted = len(solutions) < limit
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		// Partial results are still worth returning.
		err = nil
	}
	return solutions, exhausted, err
}

func (h Solve) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateSolveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if dto.Limit < 1 || dto.Limit > maxSolutionLimit {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(ErrBadLimit))
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	puzzle, err := sudoku.ParseDigits(r.FormValue("puzzle"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	solutions, exhausted, err := enumerate(r.Context(), puzzle, dto.Limit)
	if errors.Is(err, sudoku.ErrInconsistent) || errors.Is(err, sudoku.ErrBadCell) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to solve puzzle", "error", err)
		return
	}

	var accountId *int64
	if claims, ok := r.Context().Value(middleware.CtxAccountClaims).(*config.AccountClaims); ok {
		accountId = &claims.AccountId
	}

	req, err := h.repo.CreateSolveRequest(r.Context(), repository.CreateSolveRequestParams{
		AccountId:     accountId,
		Puzzle:        puzzle.Digits(),
		SolutionLimit: int32(dto.Limit),
		SolutionCount: int32(len(solutions)),
		Exhausted:     exhausted,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create solve request", "error", err)
		return
	}

	if len(solutions) > 0 {
		if _, err := h.repo.AddSolutions(r.Context(), req.SolveRequestId, solutions); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			h.logger.Error("unable to store solutions", "error", err)
			return
		}
	}

	sendJSONOrLog(w, h.logger, NewSolveRequestDTO(req, solutions))
}

func (h Solve) Fetch(w http.ResponseWriter, r *http.Request) {
	solveRequestId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req, err := h.repo.FetchSolveRequest(r.Context(), solveRequestId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch solve request", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewSolveRequestDTO(req, nil))
}

func (h Solve) Solutions(w http.ResponseWriter, r *http.Request) {
	solveRequestId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req, err := h.repo.FetchSolveRequest(r.Context(), solveRequestId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch solve request", "error", err)
		return
	}

	stored, err := h.repo.ListSolutions(r.Context(), req.SolveRequestId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list solutions", "error", err)
		return
	}

	solutions := make([]string, len(stored))
	for i, s := range stored {
		solutions[i] = s.Grid
	}

	sendJSONOrLog(w, h.logger, NewSolveRequestDTO(req, solutions))
}

func (h Solve) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.CtxAccountClaims).(*config.AccountClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	reqs, err := h.repo.ListAccountSolveRequests(r.Context(), claims.AccountId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to list solve requests", "error", err)
		return
	}

	dtos := make([]*SolveRequestDTO, len(reqs))
	for i := range reqs {
		dtos[i] = NewSolveRequestDTO(&reqs[i], nil)
	}

	sendJSONOrLog(w, h.logger, dtos)
}
