package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/pkg/rabbitmq"
)

// ErrAuthorNotFound is returned by CreatePost when the referenced author does
// not exist.
var ErrAuthorNotFound = errors.New("author not found")

// PostService handles business logic related to posts.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client // may be nil, events are then skipped
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// CreatePost validates the post, checks that the referenced author exists and
// persists it, returning the post with the storage-assigned identifier.
func (s *PostService) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to look up author %s: %w", post.AuthorID, err)
	}
	if author == nil {
		return nil, fmt.Errorf("author %s: %w", post.AuthorID, ErrAuthorNotFound)
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post in repository: %w", err)
	}

	s.publishEvent("post.created", map[string]interface{}{
		"postID":   post.ID,
		"authorID": post.AuthorID,
		"title":    post.Title,
	})

	return post, nil
}

// GetPostByID retrieves a single post. A missing post is (nil, nil).
func (s *PostService) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost validates and persists changes to an existing post.
func (s *PostService) UpdatePost(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		return fmt.Errorf("post ID is required for update")
	}
	if err := post.Validate(); err != nil {
		return err
	}
	return s.postRepo.Update(ctx, post)
}

// DeletePost removes a post by its identifier.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent("post.deleted", map[string]interface{}{"postID": id})
	return nil
}

func (s *PostService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event to JSON: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
