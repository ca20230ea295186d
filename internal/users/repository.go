package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/saaslanding/saaslanding/backend/api/internal/database"
	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

const collection = "user"

// Repository defines persistence operations for users
type Repository interface {
	Insert(ctx context.Context, u *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// StoreRepository implements Repository on the document store
type StoreRepository struct {
	store *database.Store
}

func NewStoreRepository(store *database.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) Insert(ctx context.Context, u *models.User) (string, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return r.store.Insert(ctx, collection, u)
}

// FindByEmail returns (nil, nil) when no user has the given email.
func (r *StoreRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.store.FindOne(ctx, collection, bson.M{"email": email}, &u); err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
