package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/lsafer/sudoku-server/internal/config"
	"github.com/lsafer/sudoku-server/internal/middleware"
	"github.com/lsafer/sudoku-server/internal/repository"
)

type Auth struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

type AccountInfo struct {
	AccountId int64  `json:"account_id"`
	Username  string `json:"username"`
}

type Status struct {
	LoggedIn bool         `json:"logged_in"`
	Account  *AccountInfo `json:"account,omitempty"`
}

func (a Auth) Status(w http.ResponseWriter, r *http.Request) {
	var status *Status
	claims, ok := r.Context().Value(middleware.CtxAccountClaims).(*config.AccountClaims)
	if ok {
		status = &Status{
			LoggedIn: true,
			Account:  &AccountInfo{claims.AccountId, claims.Username},
		}
		token, err := a.jwt.Sign(claims)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			a.logger.Error("unable to tokenize checked claims", "error", err)
			return
		}
		a.cookies.Refresh(w, token)
	} else {
		status = &Status{LoggedIn: false}
		a.cookies.Clear(w)
	}

	sendJSONOrLog(w, a.logger, status)
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrBadCredentials     = fmt.Errorf("invalid username or password")
)

func (a Auth) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadAuthBody))
		return
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadPasswordTooLong))
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to hash password", "error", err)
		return
	}

	account, err := a.repo.CreateAccount(r.Context(), repository.CreateAccountParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, a.logger, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to insert account", "error", err)
		return
	}

	token, err := a.jwt.Sign(
		config.NewAccountClaims(account.AccountId, account.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to create a jwt token", "error", err)
		return
	}

	a.cookies.Refresh(w, token)
	sendJSONOrLog(w, a.logger, &AccountInfo{account.AccountId, account.Username})
}

func (a Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadAuthBody))
		return
	}

	account, err := a.repo.FetchAccount(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadCredentials))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to fetch account", "error", err)
		return
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, a.logger, wrapError(ErrBadCredentials))
		return
	}

	token, err := a.jwt.Sign(
		config.NewAccountClaims(account.AccountId, account.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to create a jwt token", "error", err)
		return
	}

	a.cookies.Refresh(w, token)
	sendJSONOrLog(w, a.logger, &AccountInfo{account.AccountId, account.Username})
}

func (a Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
