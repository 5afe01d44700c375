package middleware

import (
	"context"
	"net/http"

	"github.com/lsafer/sudoku-server/internal/config"
)

type CtxKey int

const (
	CtxAccountClaims CtxKey = iota
)

// Auth decodes the signed account cookies into request context. An
// unparseable cookie pair is cleared and the request continues
// anonymously; handlers decide whether identity is required.
func Auth(cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParseAccountClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxAccountClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
