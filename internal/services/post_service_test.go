package services_test

import (
	"context"
	"testing"

	"blog/internal/models"
	"blog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const validPostHex = "507f191e810c19729de860ea"

// MockPostRepo is a mock implementation of repositories.PostRepository
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepo) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPostService_CreatePost(t *testing.T) {
	mockPostRepo := new(MockPostRepo)
	mockUserRepo := new(MockUserRepo)
	service := services.NewPostService(mockPostRepo, mockUserRepo, nil)
	ctx := context.Background()

	author := &models.User{ID: validUserHex, Username: "johndoe", Email: "john@example.com"}
	newPost := &models.Post{Title: "Test Post", Content: "This is a test post", AuthorID: validUserHex}

	mockUserRepo.On("GetByID", ctx, validUserHex).Return(author, nil).Once()
	mockPostRepo.On("Create", ctx, newPost).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Post).ID = validPostHex
	}).Return(nil).Once()

	created, err := service.CreatePost(ctx, newPost)
	assert.NoError(t, err)
	assert.Equal(t, models.ID(validPostHex), created.ID)
	assert.Equal(t, models.ID(validUserHex), created.AuthorID)
	mockPostRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestPostService_CreatePostUnknownAuthor(t *testing.T) {
	mockPostRepo := new(MockPostRepo)
	mockUserRepo := new(MockUserRepo)
	service := services.NewPostService(mockPostRepo, mockUserRepo, nil)
	ctx := context.Background()

	missingAuthor := "ffffffffffffffffffffffff"
	post := &models.Post{Title: "Test Post", Content: "This is a test post", AuthorID: models.ID(missingAuthor)}

	mockUserRepo.On("GetByID", ctx, missingAuthor).Return(nil, nil).Once()

	created, err := service.CreatePost(ctx, post)
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, services.ErrAuthorNotFound)
	mockPostRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockUserRepo.AssertExpectations(t)
}

func TestPostService_CreatePostValidation(t *testing.T) {
	mockPostRepo := new(MockPostRepo)
	mockUserRepo := new(MockUserRepo)
	service := services.NewPostService(mockPostRepo, mockUserRepo, nil)

	// Missing author reference: validation fails before any lookup.
	post := &models.Post{Title: "Test Post", Content: "This is a test post"}
	created, err := service.CreatePost(context.Background(), post)
	assert.Error(t, err)
	assert.Nil(t, created)
	mockUserRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockPostRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostService_GetPostByID(t *testing.T) {
	mockPostRepo := new(MockPostRepo)
	mockUserRepo := new(MockUserRepo)
	service := services.NewPostService(mockPostRepo, mockUserRepo, nil)
	ctx := context.Background()

	expected := &models.Post{ID: validPostHex, Title: "Test Post", Content: "This is a test post", AuthorID: validUserHex}

	mockPostRepo.On("GetByID", ctx, validPostHex).Return(expected, nil).Once()
	post, err := service.GetPostByID(ctx, validPostHex)
	assert.NoError(t, err)
	assert.Equal(t, expected, post)
	mockPostRepo.AssertExpectations(t)

	missing := "ffffffffffffffffffffffff"
	mockPostRepo.On("GetByID", ctx, missing).Return(nil, nil).Once()
	post, err = service.GetPostByID(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, post)
	mockPostRepo.AssertExpectations(t)
}

func TestPostService_UpdatePost(t *testing.T) {
	mockPostRepo := new(MockPostRepo)
	mockUserRepo := new(MockUserRepo)
	service := services.NewPostService(mockPostRepo, mockUserRepo, nil)
	ctx := context.Background()

	post := &models.Post{ID: validPostHex, Title: "Updated", Content: "Updated content", AuthorID: validUserHex}
	mockPostRepo.On("Update", ctx, post).Return(nil).Once()
	assert.NoError(t, service.UpdatePost(ctx, post))
	mockPostRepo.AssertExpectations(t)

	err := service.UpdatePost(ctx, &models.Post{Title: "No ID", Content: "x", AuthorID: validUserHex})
	assert.Error(t, err)
}

func TestPostService_DeletePost(t *testing.T) {
	mockPostRepo := new(MockPostRepo)
	mockUserRepo := new(MockUserRepo)
	service := services.NewPostService(mockPostRepo, mockUserRepo, nil)
	ctx := context.Background()

	mockPostRepo.On("Delete", ctx, validPostHex).Return(nil).Once()
	assert.NoError(t, service.DeletePost(ctx, validPostHex))
	mockPostRepo.AssertExpectations(t)
}
