package cli

import (
	"errors"
	"fmt"
	"time"

	"showcase-portal-backend/internal/auth"
	"showcase-portal-backend/internal/database/models"
	"showcase-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage catalog users",
	}

	var (
		email    string
		fullname string
		sysadmin bool
	)
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a catalog user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := &models.User{
				Name:     args[0],
				Email:    email,
				Fullname: fullname,
				Sysadmin: sysadmin,
				State:    models.PackageStateActive,
			}
			if err := validator.New().Struct(user); err != nil {
				return fmt.Errorf("invalid user: %w", err)
			}

			db, err := a.openDB(false)
			if err != nil {
				return err
			}
			repo := repository.NewUserRepository(db)
			if _, err := repo.GetByName(user.Name); err == nil {
				return fmt.Errorf("user %q already exists", user.Name)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up user: %w", err)
			}
			if err := repo.Create(user); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), user)
			}
			a.ok(cmd.OutOrStdout(), "Created user %s (%s)", user.Name, user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "Email address")
	create.Flags().StringVar(&fullname, "fullname", "", "Display name")
	create.Flags().BoolVar(&sysadmin, "sysadmin", false, "Grant sysadmin rights")
	cmd.AddCommand(create)

	return cmd
}

func newTokenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue API access tokens",
	}

	var lifetime time.Duration
	issue := &cobra.Command{
		Use:   "issue <username>",
		Short: "Issue a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			authConfig := auth.NewAuthConfig(a.cfg)
			if lifetime > 0 {
				authConfig.TokenLifetime = lifetime
			}
			authService, err := auth.NewAuthService(authConfig)
			if err != nil {
				return err
			}

			db, err := a.openDB(false)
			if err != nil {
				return err
			}
			user, err := repository.NewUserRepository(db).GetByNameOrID(args[0])
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("user %q not found", args[0])
				}
				return fmt.Errorf("failed to look up user: %w", err)
			}

			token, err := authService.GenerateJWT(user)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), map[string]string{
					"token":      token,
					"expires_at": time.Now().Add(authConfig.TokenLifetime).UTC().Format(time.RFC3339),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().DurationVar(&lifetime, "lifetime", 0, "Token lifetime, defaults to JWT_LIFETIME")
	cmd.AddCommand(issue)

	return cmd
}
