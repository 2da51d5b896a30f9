package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <command> [args...]",
		Short: "Dispatch a bot command as the configured user",
		Example: `  likebotctl send start -u 12345
  likebotctl send like bd 554433 -u 12345
  likebotctl send leaderboard bd br -u 12345`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.UserID == "" {
				return fmt.Errorf("--user is required")
			}

			req := map[string]any{
				"user_id": cfg.UserID,
				"command": args[0],
				"args":    args[1:],
			}
			var result ReplyResult

			if err := client.Post("/api/v1/commands", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}

func newCallbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "callback <data>",
		Short: "Deliver a callback event as the configured user",
		Example: `  likebotctl callback verify_joined -u 12345`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.UserID == "" {
				return fmt.Errorf("--user is required")
			}

			req := map[string]string{
				"user_id": cfg.UserID,
				"data":    args[0],
			}
			var result ReplyResult

			if err := client.Post("/api/v1/callbacks", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
