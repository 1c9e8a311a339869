package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin catalog commands",
	}

	cmd.AddCommand(newAdminListCmd())
	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newAdminUpdateCmd())
	cmd.AddCommand(newAdminDeleteCmd())
	cmd.AddCommand(newAdminSummaryCmd())

	return cmd
}

func newAdminListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players with values",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/admin/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminCreateCmd() *cobra.Command {
	var name, university, category string
	var runs, wickets int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a player to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":       name,
				"university": university,
				"category":   category,
				"runs":       runs,
				"wickets":    wickets,
			}
			var result Player

			if err := client.Post("/api/v1/admin/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&university, "university", "", "University")
	cmd.Flags().StringVar(&category, "category", "", "Category: Batsman, Bowler, All-Rounder (required)")
	cmd.Flags().IntVar(&runs, "runs", 0, "Total runs")
	cmd.Flags().IntVar(&wickets, "wickets", 0, "Total wickets")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newAdminUpdateCmd() *cobra.Command {
	var name, university, category string
	var runs, wickets int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send the flags that were set so unset fields stay untouched
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("university") {
				req["university"] = university
			}
			if cmd.Flags().Changed("category") {
				req["category"] = category
			}
			if cmd.Flags().Changed("runs") {
				req["runs"] = runs
			}
			if cmd.Flags().Changed("wickets") {
				req["wickets"] = wickets
			}
			if len(req) == 0 {
				return fmt.Errorf("no fields to update")
			}

			var result Player
			if err := client.Patch(fmt.Sprintf("/api/v1/admin/players/%s", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&university, "university", "", "University")
	cmd.Flags().StringVar(&category, "category", "", "Category: Batsman, Bowler, All-Rounder")
	cmd.Flags().IntVar(&runs, "runs", 0, "Total runs")
	cmd.Flags().IntVar(&wickets, "wickets", 0, "Total wickets")

	return cmd
}

func newAdminDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a catalog player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/admin/players/%s", args[0]), nil); err != nil {
				return err
			}

			fmt.Println("Deleted")
			return nil
		},
	}
}

func newAdminSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the tournament summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summary

			if err := client.Get("/api/v1/admin/summary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
