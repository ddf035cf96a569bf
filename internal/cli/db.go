package cli

import (
	"fmt"

	"showcase-portal-backend/internal/database"

	"github.com/spf13/cobra"
)

func newDBCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(true)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			a.ok(cmd.OutOrStdout(), "Database schema is up to date")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rollback",
		Short: "Revert the most recent schema migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB(true)
			if err != nil {
				return err
			}
			if err := database.RollbackLast(db); err != nil {
				return fmt.Errorf("failed to roll back migration: %w", err)
			}
			a.ok(cmd.OutOrStdout(), "Rolled back the last migration")
			return nil
		},
	})

	return cmd
}
