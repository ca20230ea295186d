package contact

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saaslanding/saaslanding/backend/api/internal/database"
	"github.com/saaslanding/saaslanding/backend/api/internal/models"
)

const collection = "contactmessage"

// Repository defines persistence operations for contact messages.
// Messages are write-only: no endpoint reads them back.
type Repository interface {
	Insert(ctx context.Context, m *models.ContactMessage) (string, error)
}

// StoreRepository implements Repository on the document store
type StoreRepository struct {
	store *database.Store
}

func NewStoreRepository(store *database.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) Insert(ctx context.Context, m *models.ContactMessage) (string, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return r.store.Insert(ctx, collection, m)
}

// MemoryRepository is an in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu       sync.Mutex
	Messages []*models.ContactMessage
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(ctx context.Context, m *models.ContactMessage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	cp := *m
	r.Messages = append(r.Messages, &cp)
	return m.ID.Hex(), nil
}
