package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/lsafer/sudoku-server/internal/sudoku"
)

type streamSummary struct {
	SolutionCount int  `json:"solution_count"`
	Exhausted     bool `json:"exhausted"`
}

// ConnectWS re-runs the search of a stored solve request and streams
// each solution to the client the moment the backtracker finds it,
// followed by a summary frame. Closing the connection cancels the
// search through the request context.
func (h Solve) ConnectWS(w http.ResponseWriter, r *http.Request) {
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

	puzzle, err := sudoku.ParseDigits(req.Puzzle)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid solve_request.puzzle", "error", err)
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	count := 0
	limit := int(req.SolutionLimit)
	solveCtx, cancel := contextWithTimeout(r.Context())
	defer cancel()

	err = sudoku.Solve(solveCtx, &puzzle, func(s sudoku.Grid) bool {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(s.Digits())); err != nil {
			return false
		}
		count++
		return count < limit
	})
	if err != nil && !errors.Is(err, solveCtx.Err()) {
		h.logger.Error("stored puzzle failed to solve", "error", err)
		conn.WriteJSON(wrapError(err))
		return
	}

	conn.WriteJSON(streamSummary{
		SolutionCount: count,
		Exhausted:     err == nil && count < limit,
	})

	conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
