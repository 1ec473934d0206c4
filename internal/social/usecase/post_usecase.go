package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/shared/eventbus"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/shared/utils"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/domain/repository"

	"github.com/google/uuid"
)

// PostUsecaseInterface defines the post store operations.
type PostUsecaseInterface interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*model.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	GetRecentPosts(ctx context.Context, limit int64) ([]*model.Post, error)
	GetUserPosts(ctx context.Context, userID string) ([]*model.Post, error)
	SearchPosts(ctx context.Context, term string, limit int64) ([]*model.Post, error)
	GetInfinitePosts(ctx context.Context, cursor string, limit int64) ([]*model.Post, error)
	LikePost(ctx context.Context, postID string) (*model.Post, error)
	UnlikePost(ctx context.Context, postID string) (*model.Post, error)
	SavePost(ctx context.Context, postID string) (*model.SavedPost, error)
	UnsavePost(ctx context.Context, saveID string) error
	GetSavedPosts(ctx context.Context) ([]*model.SavedPost, error)
}

// CreatePostRequest carries the inputs for creating a post. Tags arrive as
// a comma-separated string and are split and trimmed before storage.
type CreatePostRequest struct {
	Caption     string
	Location    string
	Tags        string
	File        io.Reader
	ContentType string
}

// UpdatePostRequest carries the inputs for editing a post. File is nil when
// the image is unchanged.
type UpdatePostRequest struct {
	PostID      string
	Caption     string
	Location    string
	Tags        string
	File        io.Reader
	ContentType string
}

// PostUsecase implements post creation with attached media, edits, likes,
// saves, and the feed queries.
type PostUsecase struct {
	posts  repository.PostRepository
	saves  repository.SavedPostRepository
	files  repository.FileStore
	events *eventbus.EventBus
	log    logger.Logger
}

// NewPostUsecase creates a new post usecase.
func NewPostUsecase(
	posts repository.PostRepository,
	saves repository.SavedPostRepository,
	files repository.FileStore,
	events *eventbus.EventBus,
	log logger.Logger,
) *PostUsecase {
	return &PostUsecase{
		posts:  posts,
		saves:  saves,
		files:  files,
		events: events,
		log:    log.WithComponent("post_usecase"),
	}
}

// CreatePost uploads the attached file and then creates the post document.
// If the document create fails after the upload succeeded, the uploaded
// file is deleted before the error is surfaced so no orphan is left behind.
func (uc *PostUsecase) CreatePost(ctx context.Context, req CreatePostRequest) (*model.Post, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	if req.File == nil {
		return nil, apperrors.NewValidationError("post image is required")
	}

	fileID, err := uc.files.Upload(ctx, req.File, req.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFileUploadFailed, err)
	}

	now := time.Now().UTC()
	post := &model.Post{
		ID:        uuid.NewString(),
		Creator:   callerID,
		Caption:   req.Caption,
		ImageURL:  uc.files.PreviewURL(fileID),
		ImageID:   fileID,
		Location:  req.Location,
		Tags:      model.ParseTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := post.ValidateFields(); err != nil {
		uc.compensateUpload(ctx, fileID)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.posts.Create(ctx, post); err != nil {
		uc.compensateUpload(ctx, fileID)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypePostCreated,
		map[string]string{"postId": post.ID, "actorId": callerID},
		"post_usecase",
	))

	return post, nil
}

// UpdatePost edits a post's caption, location, and tags, optionally
// replacing its image. A newly uploaded image gets the same compensating
// delete if the document update fails; on success the replaced image is
// deleted instead.
func (uc *PostUsecase) UpdatePost(ctx context.Context, req UpdatePostRequest) (*model.Post, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	if req.PostID == "" {
		return nil, apperrors.NewValidationError("post id is required")
	}

	existing, err := uc.posts.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if existing.Creator != callerID {
		return nil, apperrors.NewAuthorizationError("only the creator can edit a post")
	}

	fields := map[string]interface{}{
		"caption":    req.Caption,
		"location":   req.Location,
		"tags":       model.ParseTags(req.Tags),
		"updated_at": time.Now().UTC(),
	}

	newFileID := ""
	if req.File != nil {
		newFileID, err = uc.files.Upload(ctx, req.File, req.ContentType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFileUploadFailed, err)
		}
		fields["imageId"] = newFileID
		fields["imageUrl"] = uc.files.PreviewURL(newFileID)
	}

	updated, err := uc.posts.UpdateFields(ctx, req.PostID, fields)
	if err != nil {
		if newFileID != "" {
			uc.compensateUpload(ctx, newFileID)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if newFileID != "" && existing.ImageID != "" {
		if err := uc.files.Delete(ctx, existing.ImageID); err != nil {
			uc.log.WithContext(ctx).Warnf("failed to delete replaced image %s: %v", existing.ImageID, err)
		}
	}

	return updated, nil
}

// DeletePost removes the post document and then its stored image.
func (uc *PostUsecase) DeletePost(ctx context.Context, id string) error {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return apperrors.ErrIdentityMissing
	}

	post, err := uc.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load post: %w", err)
	}
	if post.Creator != callerID {
		return apperrors.NewAuthorizationError("only the creator can delete a post")
	}

	if err := uc.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if post.ImageID != "" {
		if err := uc.files.Delete(ctx, post.ImageID); err != nil {
			uc.log.WithContext(ctx).Warnf("failed to delete image %s for removed post %s: %v", post.ImageID, id, err)
		}
	}

	return nil
}

// GetPostByID returns a single post.
func (uc *PostUsecase) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("post id is required")
	}
	return uc.posts.GetByID(ctx, id)
}

// GetRecentPosts returns the newest posts, most recent first.
func (uc *PostUsecase) GetRecentPosts(ctx context.Context, limit int64) ([]*model.Post, error) {
	return uc.posts.ListRecent(ctx, limit)
}

// GetUserPosts returns every post created by userID.
func (uc *PostUsecase) GetUserPosts(ctx context.Context, userID string) ([]*model.Post, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user id is required")
	}
	return uc.posts.ListByCreator(ctx, userID)
}

// SearchPosts returns posts whose caption matches the search term.
func (uc *PostUsecase) SearchPosts(ctx context.Context, term string, limit int64) ([]*model.Post, error) {
	if term == "" {
		return nil, apperrors.NewValidationError("search term is required")
	}
	return uc.posts.Search(ctx, term, limit)
}

// GetInfinitePosts returns a page of posts ordered by update time
// descending, starting after the cursor post when one is given.
func (uc *PostUsecase) GetInfinitePosts(ctx context.Context, cursor string, limit int64) ([]*model.Post, error) {
	return uc.posts.ListAfter(ctx, cursor, limit)
}

// LikePost adds the caller to the post's likes set with an atomic set-add.
func (uc *PostUsecase) LikePost(ctx context.Context, postID string) (*model.Post, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}

	post, err := uc.posts.AddLike(ctx, postID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypePostLiked,
		map[string]string{"postId": postID, "actorId": callerID, "creatorId": post.Creator},
		"post_usecase",
	))

	return post, nil
}

// UnlikePost removes the caller from the post's likes set.
func (uc *PostUsecase) UnlikePost(ctx context.Context, postID string) (*model.Post, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}

	post, err := uc.posts.RemoveLike(ctx, postID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}
	return post, nil
}

// SavePost creates a join record linking the caller to the post. Saving an
// already-saved post returns the existing record.
func (uc *PostUsecase) SavePost(ctx context.Context, postID string) (*model.SavedPost, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	if postID == "" {
		return nil, apperrors.NewValidationError("post id is required")
	}

	existing, err := uc.saves.GetByUserAndPost(ctx, callerID, postID)
	if err == nil && existing != nil {
		return existing, nil
	}

	save := &model.SavedPost{
		ID:        uuid.NewString(),
		UserID:    callerID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.saves.Create(ctx, save); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}
	return save, nil
}

// UnsavePost removes a saved-post join record. The post itself is untouched.
func (uc *PostUsecase) UnsavePost(ctx context.Context, saveID string) error {
	if saveID == "" {
		return apperrors.NewValidationError("save id is required")
	}
	if err := uc.saves.Delete(ctx, saveID); err != nil {
		return fmt.Errorf("failed to unsave post: %w", err)
	}
	return nil
}

// GetSavedPosts lists the caller's saved-post records.
func (uc *PostUsecase) GetSavedPosts(ctx context.Context) ([]*model.SavedPost, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	return uc.saves.ListByUser(ctx, callerID)
}

func (uc *PostUsecase) compensateUpload(ctx context.Context, fileID string) {
	if err := uc.files.Delete(ctx, fileID); err != nil {
		uc.log.WithContext(ctx).Errorf("failed to delete orphaned upload %s: %v", fileID, err)
	}
}

var _ PostUsecaseInterface = (*PostUsecase)(nil)
