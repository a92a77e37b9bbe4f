package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/app"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	cleanup func()
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	application, cleanup, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &TestApp{
		App:     application,
		DB:      db,
		cleanup: cleanup,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.cleanup()
}
