package app

import (
	"github.com/lsafer/sudoku-server/internal/handlers"
)

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	solve := handlers.NewSolve(a.logger, a.db, a.ws)

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	a.router.HandleFunc("POST /v1/solve", solve.Create)
	a.router.HandleFunc("GET /v1/solve/{id}", solve.Fetch)
	a.router.HandleFunc("GET /v1/solve/{id}/solutions", solve.Solutions)
	a.router.HandleFunc("GET /v1/mysolves", solve.ListMine)

	a.router.HandleFunc("/v1/solve/{id}/connect", solve.ConnectWS)
}
