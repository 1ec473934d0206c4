package usecase

import (
	"context"
	"fmt"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/shared/eventbus"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/shared/utils"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/domain/repository"
)

// GraphUsecaseInterface defines the social graph operations.
type GraphUsecaseInterface interface {
	Follow(ctx context.Context, targetID string) (*model.Profile, error)
	Unfollow(ctx context.Context, targetID string) (*model.Profile, error)
	IsFollowing(ctx context.Context, targetID string) bool
	FollowerCount(ctx context.Context, userID string) int
	FollowingCount(ctx context.Context, userID string) int
}

// GraphUsecase maintains the bidirectional follower/following lists across
// two profile documents. The two writes are sequential and not transactional:
// between them the lists can disagree, and a failure of the second write
// leaves them that way until the caller retries.
type GraphUsecase struct {
	profiles repository.ProfileRepository
	events   *eventbus.EventBus
	log      logger.Logger
}

// NewGraphUsecase creates a new social graph usecase.
func NewGraphUsecase(profiles repository.ProfileRepository, events *eventbus.EventBus, log logger.Logger) *GraphUsecase {
	return &GraphUsecase{
		profiles: profiles,
		events:   events,
		log:      log.WithComponent("graph_usecase"),
	}
}

// Follow adds target to the caller's following list and the caller to the
// target's follower list. Idempotent: following an already-followed target
// returns the caller's profile unchanged.
//
// The second write is not rolled back if it fails. The caller sees a
// partial-write error and the caller's following list keeps the target;
// retrying the follow converges because both writes are set operations.
func (uc *GraphUsecase) Follow(ctx context.Context, targetID string) (*model.Profile, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	if targetID == "" {
		return nil, apperrors.NewValidationError("target user id is required")
	}
	if targetID == callerID {
		return nil, apperrors.NewValidationError("cannot follow yourself")
	}

	caller, err := uc.profiles.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller profile: %w", err)
	}

	if caller.IsFollowing(targetID) {
		return caller, nil
	}

	if err := uc.profiles.AddFollowing(ctx, callerID, targetID); err != nil {
		return nil, fmt.Errorf("failed to update following list: %w", err)
	}

	if err := uc.profiles.AddFollower(ctx, targetID, callerID); err != nil {
		uc.log.WithContext(ctx).Errorf("follower list update failed after following list write: target=%s err=%v", targetID, err)
		return nil, apperrors.NewPartialWriteError(
			"follow partially applied: follower list update failed", "followingId",
		).WithCause(err)
	}

	caller.FollowingID = append(caller.FollowingID, targetID)

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeUserFollowed,
		map[string]string{"actorId": callerID, "targetId": targetID},
		"graph_usecase",
	))

	return caller, nil
}

// Unfollow removes target from the caller's following list and the caller
// from the target's follower list. Not-following is a no-op. Errors from
// either write propagate to the caller, matching Follow.
func (uc *GraphUsecase) Unfollow(ctx context.Context, targetID string) (*model.Profile, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	if targetID == "" {
		return nil, apperrors.NewValidationError("target user id is required")
	}

	caller, err := uc.profiles.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller profile: %w", err)
	}

	if !caller.IsFollowing(targetID) {
		return caller, nil
	}

	if err := uc.profiles.RemoveFollowing(ctx, callerID, targetID); err != nil {
		return nil, fmt.Errorf("failed to update following list: %w", err)
	}

	if err := uc.profiles.RemoveFollower(ctx, targetID, callerID); err != nil {
		uc.log.WithContext(ctx).Errorf("follower list update failed after following list write: target=%s err=%v", targetID, err)
		return nil, apperrors.NewPartialWriteError(
			"unfollow partially applied: follower list update failed", "followingId",
		).WithCause(err)
	}

	remaining := make([]string, 0, len(caller.FollowingID))
	for _, id := range caller.FollowingID {
		if id != targetID {
			remaining = append(remaining, id)
		}
	}
	caller.FollowingID = remaining

	uc.events.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeUserUnfollowed,
		map[string]string{"actorId": callerID, "targetId": targetID},
		"graph_usecase",
	))

	return caller, nil
}

// IsFollowing reports whether the caller follows targetID. Returns false,
// never an error, when the caller cannot be resolved.
func (uc *GraphUsecase) IsFollowing(ctx context.Context, targetID string) bool {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return false
	}

	caller, err := uc.profiles.GetByID(ctx, callerID)
	if err != nil {
		return false
	}

	return caller.IsFollowing(targetID)
}

// FollowerCount returns the length of the user's follower list, re-read on
// every call. Returns 0 on any resolution failure; a missing list field
// counts as 0.
func (uc *GraphUsecase) FollowerCount(ctx context.Context, userID string) int {
	profile, err := uc.profiles.GetByID(ctx, userID)
	if err != nil {
		return 0
	}
	return profile.FollowerCount()
}

// FollowingCount returns the length of the user's following list. Returns 0
// on any resolution failure.
func (uc *GraphUsecase) FollowingCount(ctx context.Context, userID string) int {
	profile, err := uc.profiles.GetByID(ctx, userID)
	if err != nil {
		return 0
	}
	return profile.FollowingCount()
}

var _ GraphUsecaseInterface = (*GraphUsecase)(nil)
