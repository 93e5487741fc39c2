package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Working hand commands",
	}

	cmd.AddCommand(newDiceSetCmd())
	cmd.AddCommand(newDiceClearCmd())

	return cmd
}

func newDiceSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <code> <die> <value>",
		Short: "Enter one die's rolled face (die 0-4, value 1-6)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			die, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid die index: %w", err)
			}

			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid die value: %w", err)
			}

			req := map[string]int{"value": value}
			var result Table

			if err := client.Put(fmt.Sprintf("/api/v1/tables/%s/dice/%d", code, die), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDiceClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <code>",
		Short: "Clear the working hand for re-entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Table

			if err := client.Delete(fmt.Sprintf("/api/v1/tables/%s/dice", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <code> <category>",
		Short: "Score the entered hand against a category",
		Long: `Score the current player's hand against one of their open categories.

Categories: ones, twos, threes, fours, fives, sixes, three_of_a_kind,
four_of_a_kind, full_house, small_straight, large_straight, yahtzee,
chance.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			category := args[1]

			req := map[string]string{"category": category}
			var result Table

			if err := client.Post(fmt.Sprintf("/api/v1/tables/%s/score", code), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
