package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/shared/utils"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/domain/repository"

	"github.com/google/uuid"
)

// ProfileUsecaseInterface defines the user directory operations.
type ProfileUsecaseInterface interface {
	GetCurrentProfile(ctx context.Context) (*model.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*model.Profile, error)
	ListProfiles(ctx context.Context, limit int64) ([]*model.Profile, error)
	SearchProfiles(ctx context.Context, term string, limit int64) ([]*model.Profile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*model.Profile, error)

	// Directory hooks used by the auth module.
	RegisterProfile(ctx context.Context, accountID, name, username, email string) (string, error)
	ProfileIDByAccount(ctx context.Context, accountID string) (string, error)
}

// UpdateProfileRequest carries the inputs for editing a profile. Avatar is
// nil when the image is unchanged.
type UpdateProfileRequest struct {
	Name        string
	Bio         string
	Avatar      io.Reader
	ContentType string
}

// ProfileUsecase wraps identity-to-profile resolution and profile edits.
// Profiles are created at sign-up and never deleted by this layer.
type ProfileUsecase struct {
	profiles repository.ProfileRepository
	files    repository.FileStore
	log      logger.Logger
}

// NewProfileUsecase creates a new profile usecase.
func NewProfileUsecase(profiles repository.ProfileRepository, files repository.FileStore, log logger.Logger) *ProfileUsecase {
	return &ProfileUsecase{
		profiles: profiles,
		files:    files,
		log:      log.WithComponent("profile_usecase"),
	}
}

// GetCurrentProfile resolves the caller's profile from the context identity.
func (uc *ProfileUsecase) GetCurrentProfile(ctx context.Context) (*model.Profile, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}
	return uc.profiles.GetByID(ctx, callerID)
}

// GetProfileByID returns a single profile.
func (uc *ProfileUsecase) GetProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("profile id is required")
	}
	return uc.profiles.GetByID(ctx, id)
}

// ListProfiles returns profiles, newest first.
func (uc *ProfileUsecase) ListProfiles(ctx context.Context, limit int64) ([]*model.Profile, error) {
	return uc.profiles.List(ctx, limit)
}

// SearchProfiles returns profiles matching the search term.
func (uc *ProfileUsecase) SearchProfiles(ctx context.Context, term string, limit int64) ([]*model.Profile, error) {
	if term == "" {
		return nil, apperrors.NewValidationError("search term is required")
	}
	return uc.profiles.Search(ctx, term, limit)
}

// UpdateProfile edits the caller's display name, bio, and optionally the
// avatar. A newly uploaded avatar is deleted again if the document update
// fails; on success the replaced avatar is deleted instead.
func (uc *ProfileUsecase) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*model.Profile, error) {
	callerID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperrors.ErrIdentityMissing
	}

	existing, err := uc.profiles.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}

	newFileID := ""
	if req.Avatar != nil {
		newFileID, err = uc.files.Upload(ctx, req.Avatar, req.ContentType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFileUploadFailed, err)
		}
		fields["imageId"] = newFileID
		fields["imageUrl"] = uc.files.PreviewURL(newFileID)
	}

	updated, err := uc.profiles.UpdateFields(ctx, callerID, fields)
	if err != nil {
		if newFileID != "" {
			if delErr := uc.files.Delete(ctx, newFileID); delErr != nil {
				uc.log.WithContext(ctx).Errorf("failed to delete orphaned avatar %s: %v", newFileID, delErr)
			}
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if newFileID != "" && existing.ImageID != "" {
		if err := uc.files.Delete(ctx, existing.ImageID); err != nil {
			uc.log.WithContext(ctx).Warnf("failed to delete replaced avatar %s: %v", existing.ImageID, err)
		}
	}

	return updated, nil
}

// RegisterProfile creates the profile document for a new account and
// returns its ID. Called by the auth module during registration.
func (uc *ProfileUsecase) RegisterProfile(ctx context.Context, accountID, name, username, email string) (string, error) {
	now := time.Now().UTC()
	profile := &model.Profile{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Name:      name,
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := profile.ValidateFields(); err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}

	if err := uc.profiles.Create(ctx, profile); err != nil {
		return "", fmt.Errorf("failed to create profile: %w", err)
	}
	return profile.ID, nil
}

// ProfileIDByAccount resolves the profile document ID for an identity
// account. Called by the auth module at login.
func (uc *ProfileUsecase) ProfileIDByAccount(ctx context.Context, accountID string) (string, error) {
	profile, err := uc.profiles.GetByAccountID(ctx, accountID)
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}

var _ ProfileUsecaseInterface = (*ProfileUsecase)(nil)
