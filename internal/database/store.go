package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saaslanding/saaslanding/backend/api/pkg/metrics"
)

var (
	// ErrNotConnected is returned when no Mongo connection was established at startup.
	ErrNotConnected = errors.New("store not connected")
	// ErrNoDocuments signals an empty FindOne result.
	ErrNoDocuments = mongo.ErrNoDocuments
)

// Store is a collection-scoped adapter over a single Mongo database. It is
// constructed once in main and injected into repositories; a nil client
// yields a disconnected Store whose operations fail with ErrNotConnected
// instead of crashing the process.
type Store struct {
	client *mongo.Client
	name   string
}

func NewStore(client *mongo.Client, name string) *Store {
	return &Store{client: client, name: name}
}

// Connected reports whether a connection was established at startup.
func (s *Store) Connected() bool {
	return s.client != nil
}

// Name returns the database name the store was configured with.
func (s *Store) Name() string {
	return s.name
}

// Insert persists record in the named collection and returns the
// store-assigned identifier in hex string form.
func (s *Store) Insert(ctx context.Context, collection string, record interface{}) (string, error) {
	if s.client == nil {
		return "", ErrNotConnected
	}
	res, err := s.client.Database(s.name).Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", collection, res.InsertedID)
	}
	metrics.StoreInserts.WithLabelValues(collection).Inc()
	return id.Hex(), nil
}

// Find decodes all documents matching an equality filter into dest
// (a pointer to a slice). An empty filter matches every document.
// Order is unspecified; ordering is the caller's responsibility.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, dest interface{}) error {
	if s.client == nil {
		return ErrNotConnected
	}
	cur, err := s.client.Database(s.name).Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, dest); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// FindOne decodes the first document matching filter into dest, or returns
// ErrNoDocuments.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, dest interface{}) error {
	if s.client == nil {
		return ErrNotConnected
	}
	if err := s.client.Database(s.name).Collection(collection).FindOne(ctx, filter).Decode(dest); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoDocuments
		}
		return fmt.Errorf("find one %s: %w", collection, err)
	}
	return nil
}

// ListCollectionNames is used by the diagnostic endpoint only.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNotConnected
	}
	names, err := s.client.Database(s.name).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
