package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/pkg/rabbitmq"
)

// UserService handles business logic related to users.
type UserService struct {
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client // may be nil, events are then skipped
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// CreateUser validates and persists a new user, returning it with the
// storage-assigned identifier filled in.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.publishEvent("user.created", map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	})

	return user, nil
}

// GetUserByID retrieves a single user. A missing user is (nil, nil).
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser validates and persists changes to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return fmt.Errorf("user ID is required for update")
	}
	if err := user.Validate(); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

// DeleteUser removes a user by its identifier.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent("user.deleted", map[string]interface{}{"userID": id})
	return nil
}

// publishEvent sends a JSON event to the message broker. Event delivery is
// best effort: failures are logged, never surfaced to the caller.
func (s *UserService) publishEvent(routingKey string, payload map[string]interface{}) {
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
