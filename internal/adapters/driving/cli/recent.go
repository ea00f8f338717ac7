package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

var recentJSON bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent documents and blog posts",
	Long: `Lists the newest documents and blog posts, fetched concurrently, and the
categories shown on the portal's landing page. If either request fails the
command fails with that error.`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().BoolVar(&recentJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	view := s.Landing.Load(ctx)
	switch {
	case view.Cancelled:
		return ctx.Err()
	case view.State == domain.LandingError:
		return fmt.Errorf("loading recent content: %s", view.ErrorMessage())
	}

	if recentJSON {
		return outputRecentJSON(cmd, view)
	}
	outputRecentText(cmd, view)
	return nil
}

type recentOutput struct {
	Documents  []documentOutput `json:"documents"`
	Posts      []postOutput     `json:"posts"`
	Categories []string         `json:"categories"`
}

type postOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

func outputRecentJSON(cmd *cobra.Command, view domain.LandingView) error {
	posts := make([]postOutput, len(view.Posts))
	for i, p := range view.Posts {
		posts[i] = postOutput{
			ID:          p.ID,
			Title:       p.DisplayTitle(),
			Author:      p.Author,
			URL:         p.URL,
			PublishedAt: formatDate(p.PublishedAt),
		}
	}
	categories := view.Categories
	if categories == nil {
		categories = []string{}
	}

	data, err := json.MarshalIndent(recentOutput{
		Documents:  toDocumentOutputs(view.Documents),
		Posts:      posts,
		Categories: categories,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recent content: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecentText(cmd *cobra.Command, view domain.LandingView) {
	cmd.Println("Recent documents:")
	if len(view.Documents) == 0 {
		cmd.Println("  (none)")
	}
	for i := range view.Documents {
		printDocument(cmd, i+1, &view.Documents[i])
	}

	cmd.Println("Blog:")
	if len(view.Posts) == 0 {
		cmd.Println("  (none)")
	}
	for _, p := range view.Posts {
		line := "  - " + p.DisplayTitle()
		if p.Author != "" {
			line += " (" + p.Author + ")"
		}
		cmd.Println(line)
	}

	cmd.Println()
	cmd.Println("Categories:")
	for _, c := range view.Categories {
		cmd.Printf("  - %s\n", c)
	}
}
