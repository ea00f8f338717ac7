package portalhttp

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// searchResponse is the body of GET /documents/search.
type searchResponse struct {
	Data       []documentDTO `json:"data"`
	TotalPages int           `json:"totalPages"`
}

type documentDTO struct {
	ID          string    `json:"id"`
	MongoID     string    `json:"_id"`
	Title       string    `json:"title"`
	Authors     authors   `json:"authors"`
	Author      string    `json:"author"`
	University  string    `json:"university"`
	Category    string    `json:"category"`
	Abstract    string    `json:"abstract"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	FileURL     string    `json:"fileUrl"`
	PublishedAt timestamp `json:"publishedAt"`
	CreatedAt   timestamp `json:"createdAt"`
}

type blogPostDTO struct {
	ID          string    `json:"id"`
	MongoID     string    `json:"_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Slug        string    `json:"slug"`
	PublishedAt timestamp `json:"publishedAt"`
	CreatedAt   timestamp `json:"createdAt"`
}

// authors accepts a list of names, a list of {"name": ...} objects or a
// single comma separated string.
type authors []string

func (a *authors) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*a = names
		return nil
	}

	var objs []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &objs); err == nil {
		out := make([]string, 0, len(objs))
		for _, o := range objs {
			if o.Name != "" {
				out = append(out, o.Name)
			}
		}
		*a = out
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*a = out
	return nil
}

// timestamp accepts RFC 3339 or YYYY-MM-DD; anything else is zero.
type timestamp time.Time

func (t *timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, domain.DateLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}
	return nil
}

func (d documentDTO) toDomain() domain.DocumentSummary {
	doc := domain.DocumentSummary{
		ID:          firstNonEmpty(d.ID, d.MongoID),
		Title:       d.Title,
		Authors:     []string(d.Authors),
		University:  d.University,
		Category:    d.Category,
		Abstract:    firstNonEmpty(d.Abstract, d.Description),
		URL:         firstNonEmpty(d.URL, d.FileURL),
		PublishedAt: firstTime(d.PublishedAt, d.CreatedAt),
	}
	if len(doc.Authors) == 0 && d.Author != "" {
		doc.Authors = []string{d.Author}
	}
	return doc
}

func (p blogPostDTO) toDomain() domain.BlogPost {
	return domain.BlogPost{
		ID:          firstNonEmpty(p.ID, p.MongoID),
		Title:       p.Title,
		Author:      p.Author,
		Excerpt:     firstNonEmpty(p.Excerpt, excerpt(p.Content, 200)),
		URL:         firstNonEmpty(p.URL, p.Slug),
		PublishedAt: firstTime(p.PublishedAt, p.CreatedAt),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstTime(values ...timestamp) time.Time {
	for _, v := range values {
		if t := time.Time(v); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

func excerpt(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max])) + "…"
}
