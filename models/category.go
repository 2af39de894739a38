package models

import "strings"

type Category struct {
	ID    string `gorm:"primaryKey" json:"id"` // URL-safe slug
	Title string `gorm:"not null" json:"title"`
	Image string `json:"image"`
	URL   string `json:"url"` // anchor fragment, "#" + ID
}

// NewCategory derives the slug id and anchor url from the title.
func NewCategory(title, image string) Category {
	id := CategorySlug(title)
	return Category{
		ID:    id,
		Title: title,
		Image: image,
		URL:   "#" + id,
	}
}

// CategorySlug lowercases the title and collapses whitespace runs to "-".
func CategorySlug(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
