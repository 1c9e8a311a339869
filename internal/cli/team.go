package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage your team",
	}

	cmd.AddCommand(newTeamShowCmd())
	cmd.AddCommand(newTeamAddCmd())
	cmd.AddCommand(newTeamRemoveCmd())

	return cmd
}

func newTeamShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your team",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			if err := client.Get("/api/v1/team", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <player-id>",
		Short: "Add a player to your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid player id: %s", args[0])
			}

			req := map[string]int{"player_id": id}
			var result Team

			if err := client.Post("/api/v1/team/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			if err := client.Delete(fmt.Sprintf("/api/v1/team/players/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show your budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Budget

			if err := client.Get("/api/v1/budget", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
