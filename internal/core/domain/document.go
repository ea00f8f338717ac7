package domain

import "time"

// DocumentSummary is a document as listed by the portal.
// Only ID is guaranteed; everything else is display metadata.
type DocumentSummary struct {
	// ID is the portal identifier for the document.
	ID string

	// Title is the human-readable title.
	Title string

	// Authors lists the document authors in portal order.
	Authors []string

	// University is the institution the document belongs to.
	University string

	// Category is the subject area (e.g. "Ciencias").
	Category string

	// Abstract is a short summary of the content.
	Abstract string

	// URL links to the document page on the portal.
	URL string

	// PublishedAt is the publication date, zero when unknown.
	PublishedAt time.Time
}

// DisplayTitle returns the title, falling back to the ID.
func (d DocumentSummary) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// BlogPost is a blog entry as listed on the landing page.
type BlogPost struct {
	ID          string
	Title       string
	Author      string
	Excerpt     string
	URL         string
	PublishedAt time.Time
}

// DisplayTitle returns the title, falling back to the ID.
func (p BlogPost) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.ID
}
