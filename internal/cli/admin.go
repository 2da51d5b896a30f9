package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account operations (require --admin-token)",
	}

	cmd.AddCommand(newAdminGetCmd())
	cmd.AddCommand(newAdminVIPCmd())
	cmd.AddCommand(newAdminCreditCmd())

	return cmd
}

func newAdminGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AccountResult

			if err := client.Get("/api/v1/admin/accounts/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminVIPCmd() *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "vip <user-id>",
		Short: "Grant (or revoke with --revoke) VIP status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"vip": !revoke}
			var result AccountResult

			if err := client.Put("/api/v1/admin/accounts/"+args[0]+"/vip", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "Revoke VIP instead of granting it")

	return cmd
}

func newAdminCreditCmd() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "credit <user-id>",
		Short: "Credit coins to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount <= 0 {
				return fmt.Errorf("--amount must be positive")
			}

			req := map[string]int64{"amount": amount}
			var result AccountResult

			if err := client.Post("/api/v1/admin/accounts/"+args[0]+"/credit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "Number of coins to credit (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
