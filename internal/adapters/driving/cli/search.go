package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

var (
	searchCategory   string
	searchUniversity string
	searchFrom       string
	searchTo         string
	searchPage       int
	searchURL        string
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search portal documents",
	Long: `Searches the portal's documents by free-text term and filters.

Results accumulate page by page up to --page, exactly as scrolling does in
the terminal UI. The shareable URL printed at the end restores the same
search with --url, in the terminal UI or in the browser.

Examples:
  academico search "redes neuronales"
  academico search --category Medicina --from 2024-01-01
  academico search --url "https://portal.example/search?query=derecho&page=2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	flags := searchCmd.Flags()
	flags.StringVar(&searchCategory, "category", "", "filter by category")
	flags.StringVar(&searchUniversity, "university", "", "filter by university")
	flags.StringVar(&searchFrom, "from", "", "earliest publication date (YYYY-MM-DD)")
	flags.StringVar(&searchTo, "to", "", "latest publication date (YYYY-MM-DD)")
	flags.IntVarP(&searchPage, "page", "p", 0, "load results up to this page")
	flags.StringVar(&searchURL, "url", "", "restore a search from a shareable URL or query string")
	flags.BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	var term *string
	if len(args) == 1 {
		term = &args[0]
	}
	raw, err := seedLocation(searchURL, term, searchFilters(cmd), searchPage)
	if err != nil {
		return err
	}

	controller, err := s.OneShot.NewController(raw)
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}
	defer controller.Close()

	if err := controller.Start(commandContext(cmd)); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	state := controller.State()
	if searchJSON {
		return outputSearchJSON(cmd, state, controller.ShareURL())
	}
	outputSearchTable(cmd, state, controller.ShareURL())
	return nil
}

// searchFilters returns the filter flags that were set explicitly, so an
// empty flag can clear a filter restored from --url.
func searchFilters(cmd *cobra.Command) map[string]string {
	filters := map[string]string{}
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			filters[key] = value
		}
	}
	set("category", domain.ParamCategory, searchCategory)
	set("university", domain.ParamUniversity, searchUniversity)
	set("from", domain.ParamFromDate, searchFrom)
	set("to", domain.ParamToDate, searchTo)
	return filters
}

// seedLocation merges the term, filters and page over the query of rawURL
// and returns the location to seed the controller with. Filters are
// validated first so bad dates fail before any request is made.
func seedLocation(rawURL string, term *string, filters map[string]string, page int) (string, error) {
	rawURL = strings.TrimSpace(rawURL)

	var base *url.URL
	values := url.Values{}
	switch {
	case strings.Contains(rawURL, "://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("invalid --url: %w", err)
		}
		base = u
		values = u.Query()
	case rawURL != "":
		v, err := url.ParseQuery(strings.TrimPrefix(rawURL, "?"))
		if err != nil {
			return "", fmt.Errorf("invalid --url: %w", err)
		}
		values = v
	}

	if _, err := domain.ParseSearchQuery(values, 0).WithFilters(filters); err != nil {
		return "", err
	}
	for key, value := range filters {
		if value = strings.TrimSpace(value); value == "" {
			values.Del(key)
		} else {
			values.Set(key, value)
		}
	}
	if term != nil {
		if *term == "" {
			values.Del(domain.ParamQuery)
		} else {
			values.Set(domain.ParamQuery, *term)
		}
	}
	if page > 0 {
		values.Set(domain.ParamPage, strconv.Itoa(page))
	}

	if base == nil {
		return values.Encode(), nil
	}
	base.RawQuery = values.Encode()
	return base.String(), nil
}

// searchOutput is the JSON shape of the search command.
type searchOutput struct {
	Documents  []documentOutput `json:"documents"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	HasMore    bool             `json:"hasMore"`
	URL        string           `json:"url"`
}

type documentOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors,omitempty"`
	University  string   `json:"university,omitempty"`
	Category    string   `json:"category,omitempty"`
	URL         string   `json:"url,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

func toDocumentOutputs(docs []domain.DocumentSummary) []documentOutput {
	out := make([]documentOutput, len(docs))
	for i := range docs {
		d := &docs[i]
		out[i] = documentOutput{
			ID:          d.ID,
			Title:       d.DisplayTitle(),
			Authors:     d.Authors,
			University:  d.University,
			Category:    d.Category,
			URL:         d.URL,
			PublishedAt: formatDate(d.PublishedAt),
		}
	}
	return out
}

func outputSearchJSON(cmd *cobra.Command, state domain.SearchUIState, shareURL string) error {
	data, err := json.MarshalIndent(searchOutput{
		Documents:  toDocumentOutputs(state.Results),
		Page:       state.Query.Page,
		TotalPages: state.TotalPages,
		HasMore:    state.HasMore,
		URL:        shareURL,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, state domain.SearchUIState, shareURL string) {
	if len(state.Results) == 0 {
		cmd.Println("No results found.")
	} else {
		cmd.Println("Results:")
		cmd.Println()
		for i := range state.Results {
			printDocument(cmd, i+1, &state.Results[i])
		}
	}

	more := ""
	if state.HasMore {
		more = " (more available)"
	}
	cmd.Printf("Page %d/%d%s\n", state.Query.Page, state.TotalPages, more)
	cmd.Printf("URL: %s\n", shareURL)
}

func printDocument(cmd *cobra.Command, n int, d *domain.DocumentSummary) {
	cmd.Printf("  [%d] %s\n", n, d.DisplayTitle())

	var meta []string
	if len(d.Authors) > 0 {
		meta = append(meta, strings.Join(d.Authors, ", "))
	}
	for _, s := range []string{d.University, d.Category, formatDate(d.PublishedAt)} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	if len(meta) > 0 {
		cmd.Printf("      %s\n", strings.Join(meta, " · "))
	}
	cmd.Println()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
