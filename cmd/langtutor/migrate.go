package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/langtutor/internal/database"
	"github.com/at-ishikawa/langtutor/internal/providers"
	"github.com/at-ishikawa/langtutor/internal/resource"
	"github.com/at-ishikawa/langtutor/schemas"
)

func newMigrateCommand() *cobra.Command {
	var seed bool
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and seed the resource catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, err := database.Connect(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Connect > %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					slog.Default().Warn("failed to close the database", "error", err)
				}
			}()

			applied, err := database.Migrate(ctx, db, schemas.Migrations)
			if err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migrations\n", len(applied))
			if !seed {
				return nil
			}

			catalog, err := providers.Catalog(cfg)
			if err != nil {
				return err
			}
			count, err := resource.NewDBRepository(db).Seed(ctx, catalog)
			if err != nil {
				return fmt.Errorf("repository.Seed > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d catalog records\n", count)
			return nil
		},
	}
	command.Flags().BoolVar(&seed, "seed", true, "upsert the resource catalog after migrating")
	return command
}
