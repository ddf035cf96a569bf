package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"showcase-portal-backend/internal/config"
	"showcase-portal-backend/internal/database"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	okLabel    = color.New(color.FgGreen)
	errorLabel = color.New(color.FgRed)
)

// app carries the state shared by every subcommand of a single invocation
type app struct {
	jsonOutput bool
	cfg        *config.Config
	db         *gorm.DB
}

// NewRootCmd builds the showcasectl command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "showcasectl [command] [flags]",
		Short: "showcasectl - maintenance commands for the showcase portal",
		Long: `showcasectl runs the administrative tasks of the showcase portal
against the configured database.

Examples:
  # Apply pending schema migrations
  showcasectl db migrate

  # Import related items exported from the legacy catalog
  showcasectl migrate --file related_items.yaml

  # Grant showcase admin rights
  showcasectl admin add jdoe`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().BoolVarP(&a.jsonOutput, "json", "j", false, "Output in JSON format")

	root.AddCommand(newDBCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newMarkdownCmd(a))
	root.AddCommand(newAdminCmd(a))
	root.AddCommand(newUserCmd(a))
	root.AddCommand(newTokenCmd(a))

	return root
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	root := NewRootCmd()
	root.SilenceErrors = true
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) loadConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFile)
	a.cfg = cfg
	return nil
}

// openDB opens the connection once per invocation. Pending migrations are
// applied unless skipMigrations is set.
func (a *app) openDB(skipMigrations bool) (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.Initialize(a.cfg.DatabaseURL, &database.Options{SkipMigrations: skipMigrations})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.db = db
	return db, nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	a.db = nil
}

// siteActor is the identity maintenance commands run as. It holds sysadmin rights.
func siteActor() service.Actor {
	id := uuid.New()
	return service.Actor{UserID: &id, Username: "site_user", Sysadmin: true}
}

func (a *app) printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) ok(w io.Writer, format string, args ...interface{}) {
	okLabel.Fprintf(w, format+"\n", args...)
}
