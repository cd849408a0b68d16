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

// MongoPostRepository is a MongoDB implementation of PostRepository backed by
// the "posts" collection.
type MongoPostRepository struct {
	posts *mongo.Collection
}

// NewMongoPostRepository creates a new instance of MongoPostRepository.
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{
		posts: db.Collection("posts"),
	}
}

// Create inserts a new post and writes the storage-assigned identifier back
// onto the model as its hex string form. The author reference is stored in
// binary form like every identifier field.
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	doc, err := docmap.ToDocument(post, false)
	if err != nil {
		return fmt.Errorf("failed to export post: %w", err)
	}
	result, err := r.posts.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	post.ID = models.ID(oid.Hex())
	return nil
}

// GetByID retrieves a post by its hex identifier. A missing record is
// reported as (nil, nil).
func (r *MongoPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := models.ID(id).ObjectID()
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := r.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by ID %s: %w", id, err)
	}
	var post models.Post
	if err := docmap.Decode(doc, &post); err != nil {
		return nil, fmt.Errorf("failed to import post %s: %w", id, err)
	}
	return &post, nil
}

// Update applies the exported fields to the stored document with $set. An
// unset CreatedAt is omitted from the export, so updates built from a request
// body never erase the stored creation timestamp.
func (r *MongoPostRepository) Update(ctx context.Context, post *models.Post) error {
	oid, err := post.ID.ObjectID()
	if err != nil {
		return err
	}
	post.UpdatedAt = time.Now().UTC()

	doc, err := docmap.ToDocument(post, false)
	if err != nil {
		return fmt.Errorf("failed to export post: %w", err)
	}
	result, err := r.posts.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update post %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", post.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the post with the given identifier.
func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := models.ID(id).ObjectID()
	if err != nil {
		return err
	}
	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}
