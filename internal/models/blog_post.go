package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a blog entry identified externally by its slug.
// PublishedAt is set at creation only when the post is published; the
// field is absent from the stored document otherwise.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Slug        string             `bson:"slug"`
	Excerpt     string             `bson:"excerpt,omitempty"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	Tags        []string           `bson:"tags"`
	Published   bool               `bson:"published"`
	PublishedAt *time.Time         `bson:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// BlogPostResponse is the external JSON shape of a post: the ObjectID as a
// hex "id" string and timestamps as ISO-8601 strings.
type BlogPostResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	PublishedAt string   `json:"published_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// Response maps the stored post to its external shape. Tags is never null.
func (p *BlogPost) Response() BlogPostResponse {
	r := BlogPostResponse{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Author:    p.Author,
		Tags:      p.Tags,
		Published: p.Published,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if p.PublishedAt != nil {
		r.PublishedAt = p.PublishedAt.UTC().Format(time.RFC3339)
	}
	return r
}

// SortTime is the ordering key for listings: published_at when present,
// created_at otherwise.
func (p *BlogPost) SortTime() time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}
