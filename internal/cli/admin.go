package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin user-management commands",
	}

	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminPendingCmd())
	cmd.AddCommand(newAdminApproveCmd())
	cmd.AddCommand(newAdminRejectCmd())
	cmd.AddCommand(newAdminDeleteCmd())
	cmd.AddCommand(newAdminStatsCmd())

	return cmd
}

func newAdminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []User

			if err := client.Get("/api/v1/admin/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List users awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []User

			if err := client.Get("/api/v1/admin/users/pending", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <user-id>",
		Short: "Approve a pending user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/users/%s/approve", args[0])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("User approved")
			return nil
		},
	}
}

func newAdminRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <user-id>",
		Short: "Reject a pending user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/users/%s/reject", args[0])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("User rejected")
			return nil
		},
	}
}

func newAdminDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/users/%s", args[0])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("User deleted")
			return nil
		},
	}
}

func newAdminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the user statistics overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserStats

			if err := client.Get("/api/v1/admin/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
