package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"showcase-portal-backend/internal/repository"
	"showcase-portal-backend/internal/service"

	"github.com/spf13/cobra"
)

func (a *app) migrationService() (*service.MigrationService, error) {
	db, err := a.openDB(false)
	if err != nil {
		return nil, err
	}
	return service.NewMigrationService(
		repository.NewPackageRepository(db),
		repository.NewUserRepository(db),
	), nil
}

func newMigrateCmd(a *app) *cobra.Command {
	var (
		file            string
		allowDuplicates bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Import legacy related items as showcases",
		Long: `Import related items exported from the legacy catalog as showcases.
Each item becomes a showcase and, when it names a dataset, an association
to that dataset. Items whose title matches an existing showcase are skipped
unless --allow-duplicates is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}

			items, err := service.LoadRelatedItems(r)
			if err != nil {
				return err
			}

			svc, err := a.migrationService()
			if err != nil {
				return err
			}
			result, err := svc.ImportRelatedItems(cmd.Context(), items, allowDuplicates)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return a.printJSON(out, result)
			}
			a.ok(out, "Created %d showcases, skipped %d", result.Created, result.Skipped)
			if len(result.Failed) > 0 {
				errorLabel.Fprintf(out, "Failed related items: %s\n", strings.Join(result.Failed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "YAML export of related items, - for stdin")
	cmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "Import items whose title is already taken")

	return cmd
}

func newMarkdownCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "markdown-to-html",
		Short: "Render the notes of every showcase from markdown to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.migrationService()
			if err != nil {
				return err
			}
			count, err := svc.MarkdownToHTML(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), map[string]int{"migrated": count})
			}
			a.ok(cmd.OutOrStdout(), "Migrated notes of %d showcases", count)
			return nil
		},
	}
}
