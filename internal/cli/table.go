package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table management commands",
	}

	cmd.AddCommand(newTableCreateCmd())
	cmd.AddCommand(newTableGetCmd())
	cmd.AddCommand(newTableClaimCmd())

	return cmd
}

func newTableCreateCmd() *cobra.Command {
	var passcode string
	var maxPlayers int
	var noKeepRoster bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new table",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if passcode != "" {
				req["passcode"] = passcode
			}
			if maxPlayers > 0 {
				req["max_players"] = maxPlayers
			}
			if noKeepRoster {
				req["keep_roster"] = false
			}

			var result CreateTableResult

			if err := client.Post("/api/v1/tables", req, &result); err != nil {
				return err
			}

			// Keep the key so follow-up commands work without claiming
			if err := cfg.SaveToken(result.TableKey.Token); err != nil {
				return fmt.Errorf("failed to save table key: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&passcode, "passcode", "", "Passcode required to claim a table key")
	cmd.Flags().IntVar(&maxPlayers, "max-players", 0, "Roster size cap (default: server default)")
	cmd.Flags().BoolVar(&noKeepRoster, "no-keep-roster", false, "Clear the roster on reset instead of keeping it")

	return cmd
}

func newTableGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get table details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Table

			if err := client.Get(fmt.Sprintf("/api/v1/tables/%s", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTableClaimCmd() *cobra.Command {
	var passcode string

	cmd := &cobra.Command{
		Use:   "claim <code>",
		Short: "Claim a table key for an existing table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			req := map[string]string{}
			if passcode != "" {
				req["passcode"] = passcode
			}

			var result ClaimResult

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/claim", code), req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.TableKey.Token); err != nil {
				return fmt.Errorf("failed to save table key: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&passcode, "passcode", "", "Table passcode, if the table has one")

	return cmd
}
