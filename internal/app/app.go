package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/lsafer/sudoku-server/internal/config"
	"github.com/lsafer/sudoku-server/internal/database"
	"github.com/lsafer/sudoku-server/internal/middleware"
)

type App struct {
	logger     *slog.Logger
	router     *http.ServeMux
	db         *pgxpool.Pool
	cookies    *config.Cookies
	jwt        *config.JWT
	ws         *config.WebSocket
	migrations fs.FS
}

func New(logger *slog.Logger, migrations fs.FS) *App {
	return &App{
		logger:     logger,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

func (a *App) Start(ctx context.Context) error {
	db, _, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}
	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return err
	}
	a.cookies = cookies

	a.ws = config.NewWebSocket()

	a.loadRoutes()

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Auth(cookies),
			middleware.Logging(a.logger),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info("server listening", slog.String("addr", addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
