package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fastHash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(b), err
}

func newTestAuthService(users *fakeUserRepo) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	svc := NewAuthService(users, jwtService, zerolog.Nop()).(*authServiceImpl)
	svc.hash = fastHash
	return svc
}

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Name: " Asha ", Email: "Asha@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, models.RoleSeeker, user.Role, "role defaults to seeker")
	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.Equal(t, models.RiskLow, user.RiskScore)
	require.True(t, user.HasPassword())
	assert.NotEqual(t, "password123", *user.Password)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Other", Email: "asha@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "R", Email: "r@example.com", Password: "x", Role: "recruiter"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "n@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_PasswordByteLimit(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Long", Email: "long@example.com", Password: strings.Repeat("p", auth.MaxPasswordBytes+1)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// 36 two-byte runes stay within bcrypt's limit; 37 do not
	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Multi", Email: "multi@example.com", Password: strings.Repeat("é", 37)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	user, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Edge", Email: "edge@example.com", Password: strings.Repeat("é", 36)})
	require.NoError(t, err)
	assert.True(t, user.HasPassword())
}

func TestLogin(t *testing.T) {
	hash, err := fastHash("password123")
	require.NoError(t, err)

	users := newFakeUserRepo(
		&models.User{ID: 1, Email: "seeker@test.com", Password: &hash, Role: models.RoleSeeker, Status: models.UserStatusApproved},
		&models.User{ID: 2, Email: "banned@test.com", Password: &hash, Role: models.RoleSeeker, Status: models.UserStatusBanned},
		&models.User{ID: 3, Email: "lazy@test.com", Role: models.RoleSeeker},
	)
	svc := newTestAuthService(users)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "Seeker@test.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
	assert.Equal(t, int64(1), resp.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "seeker@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "lazy@test.com", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "accounts created on demand have no password")

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "banned@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
