package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <code> <name>",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			name := args[1]

			req := map[string]string{"name": name}
			var result Table

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/players", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <code> <index>",
		Short: "Remove a player from the roster by seat index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index: %w", err)
			}

			var result Table

			if err := client.Delete(fmt.Sprintf("/api/v1/tables/%s/players/%d", code, index), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
