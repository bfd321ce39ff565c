package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

var (
	listGame  string
	listType  string
	listLimit int
)

// contentCmd groups the content inspection subcommands.
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect posts from the configured content source",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists posts, optionally filtered by game and type",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := newSource()
		if err != nil {
			return err
		}
		ctx := context.Background()

		var posts []content.Post
		if listGame != "" || listType != "" {
			if !content.ValidGame(listGame) || !content.ValidType(listType) {
				return fmt.Errorf("unknown game %q or type %q", listGame, listType)
			}
			posts, err = source.ListByGameAndType(ctx, listGame, listType)
		} else {
			posts, err = source.ListAll(ctx)
		}
		if err != nil {
			return err
		}

		if len(posts) == 0 {
			fmt.Println("No posts published yet.")
			return nil
		}
		if listLimit > 0 && len(posts) > listLimit {
			posts = posts[:listLimit]
		}
		for _, p := range posts {
			fmt.Printf("%s  %-18s %-10s %s\n", p.Date.Format("2006-01-02"), p.Game, p.Type, p.Title)
		}
		return nil
	},
}

var contentGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Shows a single post by slug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := newSource()
		if err != nil {
			return err
		}
		post, found, err := source.GetBySlug(context.Background(), args[0])
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("No post found for slug %q.\n", args[0])
			return nil
		}
		fmt.Printf("Title:       %s\n", post.Title)
		fmt.Printf("Date:        %s\n", post.Date.Format("2006-01-02"))
		fmt.Printf("Game/Type:   %s/%s\n", post.Game, post.Type)
		fmt.Printf("Cover:       %s\n", post.Cover)
		fmt.Printf("Source:      %s\n", post.Source)
		fmt.Printf("Description: %s\n", post.Description)
		return nil
	},
}

func init() {
	contentListCmd.Flags().StringVar(&listGame, "game", "", "filter by game taxonomy slug")
	contentListCmd.Flags().StringVar(&listType, "type", "", "filter by content type slug")
	contentListCmd.Flags().IntVar(&listLimit, "limit", 0, "limit the number of posts printed")
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentGetCmd)
	rootCmd.AddCommand(contentCmd)
}
