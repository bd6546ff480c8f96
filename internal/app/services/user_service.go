package services

import (
	"context"
	"fmt"
	"strings"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// UserService defines the interface for user operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	ModerateUser(ctx context.Context, req *dto.AdminUpdateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, caller *appauth.Identity, req *dto.UpdateProfileRequest) (*models.User, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns every account, newest first
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// ModerateUser changes the status and/or risk score of an account
func (s *userServiceImpl) ModerateUser(ctx context.Context, req *dto.AdminUpdateUserRequest) (*models.User, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId is required", apperrors.ErrValidationFailed)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, *req.Status)
	}
	if req.RiskScore != nil && !req.RiskScore.Valid() {
		return nil, fmt.Errorf("%w: unknown risk score %q", apperrors.ErrValidationFailed, *req.RiskScore)
	}

	user, err := s.userRepo.UpdateModeration(ctx, req.UserID, req.Status, req.RiskScore)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("status", string(user.Status)).
		Str("riskScore", string(user.RiskScore)).
		Msg("User moderated")
	return user, nil
}

// UpdateProfile patches the caller's profile. Without a token the body email
// identifies the user.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, caller *appauth.Identity, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user *models.User
	var err error
	switch {
	case caller != nil:
		user, err = s.userRepo.GetByID(ctx, caller.UserID)
	case validation.NormalizeEmail(req.Email) != "":
		user, err = s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(req.Email))
	default:
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	if err != nil {
		return nil, err
	}

	update := repositories.ProfileUpdate{
		Name:     trimmed(req.Name),
		Skills:   trimmed(req.Skills),
		College:  trimmed(req.College),
		Hometown: trimmed(req.Hometown),
	}
	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if update.IsEmpty() {
		return user, nil
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user.ID, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userID", updated.ID).Msg("Profile updated")
	return updated, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
