package http

import (
	"context"

	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/usecase"

	"github.com/stretchr/testify/mock"
)

type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) GetCurrentProfile(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileUsecase) GetProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileUsecase) ListProfiles(ctx context.Context, limit int64) ([]*model.Profile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

func (m *mockProfileUsecase) SearchProfiles(ctx context.Context, term string, limit int64) ([]*model.Profile, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Profile), args.Error(1)
}

func (m *mockProfileUsecase) UpdateProfile(ctx context.Context, req usecase.UpdateProfileRequest) (*model.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileUsecase) RegisterProfile(ctx context.Context, accountID, name, username, email string) (string, error) {
	args := m.Called(ctx, accountID, name, username, email)
	return args.String(0), args.Error(1)
}

func (m *mockProfileUsecase) ProfileIDByAccount(ctx context.Context, accountID string) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

type mockGraphUsecase struct {
	mock.Mock
}

func (m *mockGraphUsecase) Follow(ctx context.Context, targetID string) (*model.Profile, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockGraphUsecase) Unfollow(ctx context.Context, targetID string) (*model.Profile, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockGraphUsecase) IsFollowing(ctx context.Context, targetID string) bool {
	args := m.Called(ctx, targetID)
	return args.Bool(0)
}

func (m *mockGraphUsecase) FollowerCount(ctx context.Context, userID string) int {
	args := m.Called(ctx, userID)
	return args.Int(0)
}

func (m *mockGraphUsecase) FollowingCount(ctx context.Context, userID string) int {
	args := m.Called(ctx, userID)
	return args.Int(0)
}

type mockPostUsecase struct {
	mock.Mock
}

func (m *mockPostUsecase) CreatePost(ctx context.Context, req usecase.CreatePostRequest) (*model.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostUsecase) UpdatePost(ctx context.Context, req usecase.UpdatePostRequest) (*model.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostUsecase) DeletePost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostUsecase) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostUsecase) GetRecentPosts(ctx context.Context, limit int64) ([]*model.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostUsecase) GetUserPosts(ctx context.Context, userID string) ([]*model.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostUsecase) SearchPosts(ctx context.Context, term string, limit int64) ([]*model.Post, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostUsecase) GetInfinitePosts(ctx context.Context, cursor string, limit int64) ([]*model.Post, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *mockPostUsecase) LikePost(ctx context.Context, postID string) (*model.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostUsecase) UnlikePost(ctx context.Context, postID string) (*model.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *mockPostUsecase) SavePost(ctx context.Context, postID string) (*model.SavedPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedPost), args.Error(1)
}

func (m *mockPostUsecase) UnsavePost(ctx context.Context, saveID string) error {
	args := m.Called(ctx, saveID)
	return args.Error(0)
}

func (m *mockPostUsecase) GetSavedPosts(ctx context.Context) ([]*model.SavedPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SavedPost), args.Error(1)
}

type mockCommentUsecase struct {
	mock.Mock
}

func (m *mockCommentUsecase) Create(ctx context.Context, text, postID string) (*model.Comment, error) {
	args := m.Called(ctx, text, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentUsecase) List(ctx context.Context) ([]*model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentUsecase) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentUsecase) Edit(ctx context.Context, id, newText string) (*model.Comment, error) {
	args := m.Called(ctx, id, newText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockActivityStore struct {
	mock.Mock
}

func (m *mockActivityStore) Append(ctx context.Context, userID string, event *model.ActivityEvent) error {
	args := m.Called(ctx, userID, event)
	return args.Error(0)
}

func (m *mockActivityStore) Recent(ctx context.Context, userID string, limit int64) ([]*model.ActivityEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ActivityEvent), args.Error(1)
}

func (m *mockActivityStore) Subscribe(ctx context.Context, userID, lastID string, handler func(*model.ActivityEvent)) error {
	args := m.Called(ctx, userID, lastID, handler)
	return args.Error(0)
}
