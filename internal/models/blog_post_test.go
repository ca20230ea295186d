package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBlogPostResponse(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := primitive.NewObjectID()
	p := &BlogPost{
		ID:          id,
		Title:       "Hello",
		Slug:        "hello",
		Content:     "body",
		Author:      "ann",
		Published:   true,
		PublishedAt: &now,
		CreatedAt:   now,
	}

	r := p.Response()
	if r.ID != id.Hex() {
		t.Fatalf("id = %q, want %q", r.ID, id.Hex())
	}
	if r.PublishedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("published_at = %q", r.PublishedAt)
	}
	if r.Tags == nil {
		t.Fatal("tags must not be nil")
	}
}

func TestBlogPostResponseUnpublished(t *testing.T) {
	p := &BlogPost{Slug: "draft", Published: false, CreatedAt: time.Now()}
	r := p.Response()
	if r.PublishedAt != "" {
		t.Fatalf("unpublished post must have empty published_at, got %q", r.PublishedAt)
	}
}

func TestBlogPostSortTime(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	published := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	p := &BlogPost{CreatedAt: created}
	if !p.SortTime().Equal(created) {
		t.Fatalf("SortTime without published_at = %v, want created_at", p.SortTime())
	}
	p.PublishedAt = &published
	if !p.SortTime().Equal(published) {
		t.Fatalf("SortTime with published_at = %v, want published_at", p.SortTime())
	}
}
