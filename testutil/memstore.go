// Package testutil provides an in-memory database.Store so handler and
// sweeper tests run without a MongoDB instance.
package testutil

import (
	"context"
	"sync"

	"batepapo/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemStore keeps documents per collection in insertion order. Setting
// Err makes every operation fail with it, for error-path tests.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	Err error
}

var _ database.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]bson.M)}
}

func (s *MemStore) FindAll(_ context.Context, collection string) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	docs := []bson.M{}
	for _, doc := range s.collections[collection] {
		docs = append(docs, clone(doc))
	}
	return docs, nil
}

func (s *MemStore) FindOneByField(_ context.Context, collection, field string, value any) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, doc := range s.collections[collection] {
		if doc[field] == value {
			return clone(doc), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *MemStore) InsertOne(_ context.Context, collection string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}

	s.collections[collection] = append(s.collections[collection], m)
	return nil
}

func (s *MemStore) DeleteOneByID(_ context.Context, collection string, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	docs := s.collections[collection]
	for i, doc := range docs {
		if doc["_id"] == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemStore) UpdateOneByID(_ context.Context, collection string, id primitive.ObjectID, patch bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	for _, doc := range s.collections[collection] {
		if doc["_id"] == id {
			for k, v := range patch {
				doc[k] = v
			}
			return nil
		}
	}
	return nil
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
