package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blog/internal/docmap"
	"blog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPostRepository is an in-memory implementation of PostRepository. Like
// MockUserRepository it stores exported storage documents so the document
// mapping is exercised end to end.
type MockPostRepository struct {
	docs map[string]bson.M
	mu   sync.RWMutex
}

// NewMockPostRepository creates a new instance of MockPostRepository.
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		docs: make(map[string]bson.M),
	}
}

// Create stores the exported post document under a freshly generated
// identifier and assigns that identifier back onto the model.
func (r *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	doc, err := docmap.ToDocument(post, false)
	if err != nil {
		return fmt.Errorf("failed to export post: %w", err)
	}
	oid := primitive.NewObjectID()
	doc["_id"] = oid

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[oid.Hex()] = doc
	post.ID = models.ID(oid.Hex())
	return nil
}

// GetByID returns the post stored under the given identifier, or (nil, nil)
// when there is none.
func (r *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if _, err := models.ID(id).ObjectID(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	doc, ok := r.docs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var post models.Post
	if err := docmap.Decode(doc, &post); err != nil {
		return nil, fmt.Errorf("failed to import post %s: %w", id, err)
	}
	return &post, nil
}

// Update merges the exported fields into the stored document, mirroring the
// $set update the Mongo repository issues. Fields absent from the export
// (an unset created_at, for one) keep their stored values.
func (r *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	if _, err := post.ID.ObjectID(); err != nil {
		return err
	}
	post.UpdatedAt = time.Now().UTC()

	doc, err := docmap.ToDocument(post, false)
	if err != nil {
		return fmt.Errorf("failed to export post: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.docs[post.ID.String()]
	if !ok {
		return fmt.Errorf("post %s: %w", post.ID, ErrNotFound)
	}
	for k, v := range doc {
		existing[k] = v
	}
	return nil
}

// Delete removes the post with the given identifier.
func (r *MockPostRepository) Delete(ctx context.Context, id string) error {
	if _, err := models.ID(id).ObjectID(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	delete(r.docs, id)
	return nil
}
