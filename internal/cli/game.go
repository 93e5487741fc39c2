package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game lifecycle commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameEndCmd())
	cmd.AddCommand(newGameResetCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Freeze the roster and begin play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Table

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/start", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <code>",
		Short: "End the game early and compute final standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Table

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/end", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <code>",
		Short: "Return a finished table to setup for a rematch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Table

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/reset", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
