package blog

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts []*models.BlogPost
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Insert(ctx context.Context, p *models.BlogPost) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	cp := *p
	m.posts = append(m.posts, &cp)
	return p.ID.Hex(), nil
}

func (m *MemoryRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) FindPublished(ctx context.Context) ([]*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*models.BlogPost{}
	for _, p := range m.posts {
		if p.Published {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
