package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog/internal/docmap"
	"blog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository is a MongoDB implementation of UserRepository backed by
// the "users" collection.
type MongoUserRepository struct {
	users *mongo.Collection
}

// NewMongoUserRepository creates a new instance of MongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users: db.Collection("users"),
	}
}

// Create inserts a new user and writes the storage-assigned identifier back
// onto the model as its hex string form.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc, err := docmap.ToDocument(user, false)
	if err != nil {
		return fmt.Errorf("failed to export user: %w", err)
	}
	result, err := r.users.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	user.ID = models.ID(oid.Hex())
	return nil
}

// GetByID retrieves a user by its hex identifier. A missing record is
// reported as (nil, nil).
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := models.ID(id).ObjectID()
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	var user models.User
	if err := docmap.Decode(doc, &user); err != nil {
		return nil, fmt.Errorf("failed to import user %s: %w", id, err)
	}
	return &user, nil
}

// Update applies the exported fields to the stored document with $set. An
// unset CreatedAt is omitted from the export, so updates built from a request
// body never erase the stored creation timestamp.
func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	oid, err := user.ID.ObjectID()
	if err != nil {
		return err
	}
	user.UpdatedAt = time.Now().UTC()

	doc, err := docmap.ToDocument(user, false)
	if err != nil {
		return fmt.Errorf("failed to export user: %w", err)
	}
	result, err := r.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the user with the given identifier.
func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := models.ID(id).ObjectID()
	if err != nil {
		return err
	}
	result, err := r.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}
