package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/shared/eventbus"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/shared/utils"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// enrichmentConcurrency bounds the author-lookup fan-out during listing.
const enrichmentConcurrency = 8

// CommentUsecaseInterface defines the comment store operations.
type CommentUsecaseInterface interface {
	Create(ctx context.Context, text, postID string) (*model.Comment, error)
	List(ctx context.Context) ([]*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	Edit(ctx context.Context, id, newText string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}

// CommentUsecase maintains comment documents keyed by a client-generated
// uuid and denormalizes author display data on read.
type CommentUsecase struct {
	comments repository.CommentRepository
	profiles repository.ProfileRepository
	posts    repository.PostRepository
	events   *eventbus.EventBus
	log      logger.Logger
}

// NewCommentUsecase creates a new comment usecase.
func NewCommentUsecase(
	comments repository.CommentRepository,
	profiles repository.ProfileRepository,
	posts repository.PostRepository,
	events *eventbus.EventBus,
	log logger.Logger,
) *CommentUsecase {
	return &CommentUsecase{
		comments: comments,
		profiles: profiles,
		posts:    posts,
		events:   events,
		log:      log.WithComponent("comment_usecase"),
	}
}

// Create stores a new comment authored by the caller. Fails closed when the
// caller identity cannot be resolved from the context.
func (uc *CommentUsecase) Create(ctx context.Context, text, postID string) (*model.Comment, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}

	comment := &model.Comment{
		ID:          uuid.NewString(),
		UserID:      callerID,
		PostID:      postID,
		CommentText: text,
		CreatedAt:   time.Now().UTC(),
	}
	if err := comment.ValidateFields(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	payload := map[string]string{"commentId": comment.ID, "postId": postID, "actorId": callerID}
	if post, err := uc.posts.GetByID(ctx, postID); err == nil {
		payload["creatorId"] = post.Creator
	}
	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeCommentCreated, payload, "comment_usecase",
	))

	return comment, nil
}

// List returns every comment across all posts, each enriched with the
// author's current display name and avatar. Author lookups run with a
// bounded concurrent fan-out; a comment whose lookup fails is skipped so a
// single bad record never fails the whole listing.
func (uc *CommentUsecase) List(ctx context.Context) ([]*model.Comment, error) {
	comments, err := uc.comments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return uc.enrich(ctx, comments), nil
}

// ListByPost returns the comments on a single post, enriched the same way
// as List.
func (uc *CommentUsecase) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	if postID == "" {
		return nil, apperrors.NewValidationError("post id is required")
	}
	comments, err := uc.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post: %w", err)
	}
	return uc.enrich(ctx, comments), nil
}

func (uc *CommentUsecase) enrich(ctx context.Context, comments []*model.Comment) []*model.Comment {
	type slot struct {
		comment *model.Comment
		ok      bool
	}
	slots := make([]slot, len(comments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentConcurrency)

	var mu sync.Mutex
	cache := make(map[string]*model.Profile)

	for i, comment := range comments {
		g.Go(func() error {
			mu.Lock()
			author, cached := cache[comment.UserID]
			mu.Unlock()

			if !cached {
				var err error
				author, err = uc.profiles.GetByID(gctx, comment.UserID)
				if err != nil {
					uc.log.WithContext(ctx).Warnf("skipping comment %s: author lookup failed: %v", comment.ID, err)
					return nil
				}
				mu.Lock()
				cache[comment.UserID] = author
				mu.Unlock()
			}

			comment.AuthorName = author.Name
			comment.AuthorAvatar = author.ImageURL
			slots[i] = slot{comment: comment, ok: true}
			return nil
		})
	}
	// Handlers never return errors; Wait only synchronizes the fan-out.
	_ = g.Wait()

	enriched := make([]*model.Comment, 0, len(comments))
	for _, s := range slots {
		if s.ok {
			enriched = append(enriched, s.comment)
		}
	}
	return enriched
}

// Edit updates only the text of the comment identified by id, located with
// a direct lookup, and returns the stored record after the update.
func (uc *CommentUsecase) Edit(ctx context.Context, id, newText string) (*model.Comment, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("comment id is required")
	}
	if newText == "" {
		return nil, apperrors.NewValidationError("comment text is required")
	}

	updated, err := uc.comments.UpdateText(ctx, id, newText)
	if err != nil {
		return nil, fmt.Errorf("failed to edit comment: %w", err)
	}
	return updated, nil
}

// Delete removes a comment by ID. Ownership checks are enforced upstream.
func (uc *CommentUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("comment id is required")
	}
	if err := uc.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

var _ CommentUsecaseInterface = (*CommentUsecase)(nil)
