package blog

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

var (
	ErrSlugTaken = errors.New("slug already exists")
	ErrNotFound  = errors.New("post not found")
)

// Service encapsulates blog post business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create inserts a new post unless the slug is taken. published_at is
// stamped only when the post is published. Same check-then-insert race
// as signup: no transaction spans the two round-trips.
func (s *Service) Create(ctx context.Context, p *models.BlogPost) (string, error) {
	existing, err := s.repo.FindBySlug(ctx, p.Slug)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrSlugTaken
	}
	if p.Published && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	return s.repo.Insert(ctx, p)
}

// ListPublished returns published posts newest-first by published_at,
// falling back to created_at when published_at is absent.
func (s *Service) ListPublished(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].SortTime().After(posts[j].SortTime())
	})
	return posts, nil
}

// GetBySlug returns the post with the given slug regardless of publish status.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}
