package handlers

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/lsafer/sudoku-server/internal/repository"
)

type CreateSolveDTO struct {
	Limit int `schema:"limit"`
}

func ParseCreateSolveDTO(src map[string][]string) (CreateSolveDTO, error) {
	dto := CreateSolveDTO{Limit: defaultSolutionLimit}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type SolveRequestDTO struct {
	SolveRequestId string   `json:"solve_request_id"`
	Puzzle         string   `json:"puzzle"`
	SolutionLimit  int      `json:"solution_limit"`
	SolutionCount  int      `json:"solution_count"`
	Exhausted      bool     `json:"exhausted"`
	CreatedAt      int64    `json:"created_at"`
	Solutions      []string `json:"solutions,omitempty"`
}

func NewSolveRequestDTO(req *repository.SolveRequest, solutions []string) *SolveRequestDTO {
	var createdAt int64
	if req.CreatedAt.Valid {
		createdAt = req.CreatedAt.Time.UnixMilli()
	} else {
		createdAt = time.Now().UnixMilli()
	}
	return &SolveRequestDTO{
		SolveRequestId: strconv.FormatInt(req.SolveRequestId, 10),
		Puzzle:         req.Puzzle,
		SolutionLimit:  int(req.SolutionLimit),
		SolutionCount:  int(req.SolutionCount),
		Exhausted:      req.Exhausted,
		CreatedAt:      createdAt,
		Solutions:      solutions,
	}
}
