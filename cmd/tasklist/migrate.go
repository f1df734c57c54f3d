package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "tasklist/internal/adapter/db"
	"tasklist/internal/config"
)

// migrateCmd implements 'tasklist migrate'.
func migrateCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long:  "Create the tasks, completed_steps and projects tables if they do not exist yet.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, conf *config.Config, db *sqlx.DB) error {
				if err := dbadapter.Migrate(ctx, db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				zap.L().Info("schema is up to date", zap.String("driver", conf.DbDriver))
				cmd.Println("schema is up to date")
				if !seed {
					return nil
				}
				return runSeed(ctx, cmd, db)
			})
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "Insert sample tasks when the database is empty")
	return cmd
}

// seedCmd implements 'tasklist seed'.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample tasks into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), func(ctx context.Context, _ *config.Config, db *sqlx.DB) error {
				return runSeed(ctx, cmd, db)
			})
		},
	}
}

func runSeed(ctx context.Context, cmd *cobra.Command, db *sqlx.DB) error {
	inserted, err := dbadapter.Seed(ctx, db)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if inserted {
		cmd.Println("sample data inserted")
	} else {
		cmd.Println("tasks table is not empty, nothing seeded")
	}
	return nil
}
