package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Tournament commands",
	}

	cmd.AddCommand(newTournamentListCmd())
	cmd.AddCommand(newTournamentCreateCmd())
	cmd.AddCommand(newTournamentDeleteCmd())

	return cmd
}

func newTournamentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tournaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Tournament

			if err := client.Get("/api/v1/tournaments", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentCreateCmd() *cobra.Command {
	var name, location, start, end, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tournament (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := Tournament{
				Name:      name,
				Location:  location,
				StartDate: start,
				EndDate:   end,
				Status:    status,
			}
			var result Tournament

			if err := client.Post("/api/v1/tournaments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tournament name (required)")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "upcoming", "Status")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTournamentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tournament (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tournaments/%s", args[0])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Tournament deleted")
			return nil
		},
	}
}

func newNewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "News commands",
	}

	cmd.AddCommand(newNewsListCmd())
	cmd.AddCommand(newNewsCreateCmd())
	cmd.AddCommand(newNewsDeleteCmd())

	return cmd
}

func newNewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List news articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []News

			if err := client.Get("/api/v1/news", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newNewsCreateCmd() *cobra.Command {
	var title, content, author string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a news article (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := News{
				Title:   title,
				Content: content,
				Author:  author,
			}
			var result News

			if err := client.Post("/api/v1/news", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Article title (required)")
	cmd.Flags().StringVar(&content, "content", "", "Article body (required)")
	cmd.Flags().StringVar(&author, "author", "", "Author name")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newNewsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a news article (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/news/%s", args[0])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("News article deleted")
			return nil
		},
	}
}
