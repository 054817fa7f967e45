package models

import "time"

// Post is a blog record as rendered by the site, whichever source it came from.
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty"` // HTML
	Excerpt     string    `json:"excerpt,omitempty"`
	Description string    `json:"description,omitempty"` // plain text for meta tags
	Date        time.Time `json:"date"`
	Language    string    `json:"language"`
	Image       string    `json:"image,omitempty"`
	Source      string    `json:"source"` // static, markdown, cms
}

// StaticPost is one entry of the bundled blog-posts.json file.
type StaticPost struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Date             string  `json:"date"`
	Language         string  `json:"language"`
	Slug             string  `json:"slug"`
	OriginalImageURL *string `json:"originalImageUrl"`
	LocalImage       *string `json:"localImage"`
}

// Listing splits a language-filtered post list into the cards shown on the page
// and the remainder kept in the crawler-only region.
type Listing struct {
	Primary []Post `json:"primary"`
	Hidden  []Post `json:"hidden"`
}
