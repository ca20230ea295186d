package blog

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/saaslanding/saaslanding/backend/api/internal/database"
	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

const collection = "blogpost"

// Repository defines persistence operations for blog posts
type Repository interface {
	Insert(ctx context.Context, p *models.BlogPost) (string, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	FindPublished(ctx context.Context) ([]*models.BlogPost, error)
}

// StoreRepository implements Repository on the document store
type StoreRepository struct {
	store *database.Store
}

func NewStoreRepository(store *database.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) Insert(ctx context.Context, p *models.BlogPost) (string, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return r.store.Insert(ctx, collection, p)
}

// FindBySlug returns (nil, nil) when no post has the given slug.
func (r *StoreRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.store.FindOne(ctx, collection, bson.M{"slug": slug}, &p); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// FindPublished returns published posts in store order; sorting is the
// service's responsibility.
func (r *StoreRepository) FindPublished(ctx context.Context) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	if err := r.store.Find(ctx, collection, bson.M{"published": true}, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
