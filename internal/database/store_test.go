package database

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDisconnectedStore(t *testing.T) {
	s := NewStore(nil, "saaslanding")
	ctx := context.Background()

	if s.Connected() {
		t.Fatal("store with nil client should report disconnected")
	}
	if s.Name() != "saaslanding" {
		t.Fatalf("unexpected name: %s", s.Name())
	}

	if _, err := s.Insert(ctx, "user", bson.M{"name": "x"}); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Insert err = %v, want ErrNotConnected", err)
	}
	var out []bson.M
	if err := s.Find(ctx, "blogpost", bson.M{}, &out); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("Find err = %v, want ErrNotConnected", err)
	}
	var one bson.M
	if err := s.FindOne(ctx, "user", bson.M{"email": "a@b.c"}, &one); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("FindOne err = %v, want ErrNotConnected", err)
	}
	if _, err := s.ListCollectionNames(ctx); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("ListCollectionNames err = %v, want ErrNotConnected", err)
	}
}
