package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	dbadapter "tasklist/internal/adapter/db"
	"tasklist/internal/config"
)

// withDatabase loads config, opens the configured database and hands it to fn.
// The connection is closed when fn returns.
func withDatabase(ctx context.Context, fn func(context.Context, *config.Config, *sqlx.DB) error) error {
	conf := config.LoadConfig()
	logger, err := setupLogger(conf)
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	db, err := dbadapter.ConnectDB(conf)
	if err != nil {
		logger.Error("failed to connect to database", zap.String("driver", conf.DbDriver), zap.Error(err))
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	return fn(ctx, conf, db)
}
