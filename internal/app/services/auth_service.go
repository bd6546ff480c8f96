package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/auth"
	"github.com/hirehunt/hirehunt/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AuthService handles registration and session issuance
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	hash       func(string) (string, error)
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		hash:       auth.HashPassword,
		logger:     logger,
	}
}

// Register creates an account. Role defaults to seeker; the account starts
// Pending with a Low risk score.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := validation.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	if missing := validation.MissingFields(
		validation.Required("name", name),
		validation.Required("email", email),
		validation.Required("password", req.Password),
	); len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing data: "+strings.Join(missing, ", "),
			map[string]interface{}{"missing": missing})
	}
	if !validation.IsEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", apperrors.ErrValidationFailed)
	}
	if len(req.Password) > auth.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidationFailed, auth.MaxPasswordBytes)
	}

	role := req.Role
	if role == "" {
		role = models.RoleSeeker
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Name:      name,
		Password:  &hashed,
		Role:      role,
		Status:    models.UserStatusPending,
		RiskScore: models.RiskLow,
	}
	if url := strings.TrimSpace(req.ResumeURL); url != "" {
		user.ResumeURL = &url
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token. Banned accounts and
// accounts created without a password cannot log in.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasPassword() || !auth.CheckPassword(*user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status == models.UserStatusBanned {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: expiresIn},
		User:  user,
	}, nil
}
