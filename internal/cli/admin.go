package cli

import (
	"fmt"
	"text/tabwriter"

	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/repository"
	"showcase-portal-backend/internal/service"

	"github.com/spf13/cobra"
)

func (a *app) adminService() (*service.AdminService, error) {
	db, err := a.openDB(false)
	if err != nil {
		return nil, err
	}
	authorizer, err := authz.NewAuthorizer()
	if err != nil {
		return nil, err
	}
	return service.NewAdminService(
		repository.NewUserRepository(db),
		repository.NewShowcaseAdminRepository(db),
		authorizer,
	), nil
}

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage showcase admins",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <username>",
		Short: "Grant a user showcase admin rights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.adminService()
			if err != nil {
				return err
			}
			admin, err := svc.Add(cmd.Context(), siteActor(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.printJSON(cmd.OutOrStdout(), admin)
			}
			a.ok(cmd.OutOrStdout(), "%s is now a showcase admin", admin.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <username>",
		Short: "Revoke showcase admin rights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.adminService()
			if err != nil {
				return err
			}
			if err := svc.Remove(cmd.Context(), siteActor(), args[0]); err != nil {
				return err
			}
			a.ok(cmd.OutOrStdout(), "%s is no longer a showcase admin", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List showcase admins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.adminService()
			if err != nil {
				return err
			}
			admins, err := svc.List(cmd.Context(), siteActor())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return a.printJSON(out, admins)
			}
			if len(admins) == 0 {
				fmt.Fprintln(out, "No showcase admins")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFULLNAME\tEMAIL")
			for _, admin := range admins {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", admin.Name, admin.Fullname, admin.Email)
			}
			return tw.Flush()
		},
	})

	return cmd
}
