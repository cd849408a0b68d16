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

// MockUserRepository is an in-memory implementation of UserRepository. It
// stores exported storage documents rather than model values, so the same
// document mapping runs as against a real database.
type MockUserRepository struct {
	docs map[string]bson.M
	mu   sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		docs: make(map[string]bson.M),
	}
}

// Create stores the exported user document under a freshly generated
// identifier and assigns that identifier back onto the model.
func (r *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc, err := docmap.ToDocument(user, false)
	if err != nil {
		return fmt.Errorf("failed to export user: %w", err)
	}
	oid := primitive.NewObjectID()
	doc["_id"] = oid

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[oid.Hex()] = doc
	user.ID = models.ID(oid.Hex())
	return nil
}

// GetByID returns the user stored under the given identifier, or (nil, nil)
// when there is none.
func (r *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := models.ID(id).ObjectID(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	doc, ok := r.docs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var user models.User
	if err := docmap.Decode(doc, &user); err != nil {
		return nil, fmt.Errorf("failed to import user %s: %w", id, err)
	}
	return &user, nil
}

// Update merges the exported fields into the stored document, mirroring the
// $set update the Mongo repository issues. Fields absent from the export
// (an unset created_at, for one) keep their stored values.
func (r *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	if _, err := user.ID.ObjectID(); err != nil {
		return err
	}
	user.UpdatedAt = time.Now().UTC()

	doc, err := docmap.ToDocument(user, false)
	if err != nil {
		return fmt.Errorf("failed to export user: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.docs[user.ID.String()]
	if !ok {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}
	for k, v := range doc {
		existing[k] = v
	}
	return nil
}

// Delete removes the user with the given identifier.
func (r *MockUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := models.ID(id).ObjectID(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	delete(r.docs, id)
	return nil
}
