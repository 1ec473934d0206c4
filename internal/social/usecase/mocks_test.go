package usecase_test

import (
	"context"
	"io"

	"snapfeed/internal/social/domain/model"

	"github.com/stretchr/testify/mock"
)

// Mock profile repository
type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileRepository) GetByAccountID(ctx context.Context, accountID string) (*model.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileRepository) List(ctx context.Context, limit int64) ([]*model.Profile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

func (m *mockProfileRepository) Search(ctx context.Context, term string, limit int64) ([]*model.Profile, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

func (m *mockProfileRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Profile, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileRepository) AddFollowing(ctx context.Context, profileID, targetID string) error {
	args := m.Called(ctx, profileID, targetID)
	return args.Error(0)
}

func (m *mockProfileRepository) RemoveFollowing(ctx context.Context, profileID, targetID string) error {
	args := m.Called(ctx, profileID, targetID)
	return args.Error(0)
}

func (m *mockProfileRepository) AddFollower(ctx context.Context, profileID, followerID string) error {
	args := m.Called(ctx, profileID, followerID)
	return args.Error(0)
}

func (m *mockProfileRepository) RemoveFollower(ctx context.Context, profileID, followerID string) error {
	args := m.Called(ctx, profileID, followerID)
	return args.Error(0)
}

// Mock comment repository
type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentRepository) List(ctx context.Context) ([]*model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentRepository) UpdateText(ctx context.Context, id, text string) (*model.Comment, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock post repository
type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Post, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepository) AddLike(ctx context.Context, postID, userID string) (*model.Post, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostRepository) RemoveLike(ctx context.Context, postID, userID string) (*model.Post, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostRepository) ListRecent(ctx context.Context, limit int64) ([]*model.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostRepository) ListByCreator(ctx context.Context, creatorID string) ([]*model.Post, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostRepository) Search(ctx context.Context, term string, limit int64) ([]*model.Post, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostRepository) ListAfter(ctx context.Context, cursor string, limit int64) ([]*model.Post, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

// Mock saved-post repository
type mockSavedPostRepository struct {
	mock.Mock
}

func (m *mockSavedPostRepository) Create(ctx context.Context, save *model.SavedPost) error {
	args := m.Called(ctx, save)
	return args.Error(0)
}

func (m *mockSavedPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSavedPostRepository) ListByUser(ctx context.Context, userID string) ([]*model.SavedPost, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SavedPost), args.Error(1)
}

func (m *mockSavedPostRepository) GetByUserAndPost(ctx context.Context, userID, postID string) (*model.SavedPost, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedPost), args.Error(1)
}

// Mock file store
type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Upload(ctx context.Context, content io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, content, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockFileStore) PreviewURL(fileID string) string {
	args := m.Called(fileID)
	return args.String(0)
}

func (m *mockFileStore) Delete(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
