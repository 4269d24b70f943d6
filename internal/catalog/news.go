package catalog

import "time"

// NewsArticle represents a news or event post. Articles are ordered by
// PublishedAt descending everywhere; the newest one is the featured
// article on the listing page.
type NewsArticle struct {
	ID          string    `bson:"-" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	Image       string    `bson:"image" json:"image"`
	Author      string    `bson:"author" json:"author"`
	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt"`
	Category    string    `bson:"category" json:"category"`
}
