package services

import (
	"context"
	"testing"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerateUser(t *testing.T) {
	users := newFakeUserRepo(&models.User{ID: 1, Email: "a@test.com", Status: models.UserStatusPending, RiskScore: models.RiskLow})
	svc := NewUserService(users, zerolog.Nop())
	ctx := context.Background()

	banned := models.UserStatusBanned
	user, err := svc.ModerateUser(ctx, &dto.AdminUpdateUserRequest{UserID: 1, Status: &banned})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, user.Status)
	assert.Equal(t, models.RiskLow, user.RiskScore, "risk untouched when omitted")

	high := models.RiskHigh
	user, err = svc.ModerateUser(ctx, &dto.AdminUpdateUserRequest{UserID: 1, RiskScore: &high})
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, user.RiskScore)
	assert.Equal(t, models.UserStatusBanned, user.Status)

	_, err = svc.ModerateUser(ctx, &dto.AdminUpdateUserRequest{UserID: 42, Status: &banned})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.ModerateUser(ctx, &dto.AdminUpdateUserRequest{Status: &banned})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	bogus := models.UserStatus("Suspended")
	_, err = svc.ModerateUser(ctx, &dto.AdminUpdateUserRequest{UserID: 1, Status: &bogus})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Email: "seeker@test.com", Name: "Seeker"},
		&models.User{ID: 2, Email: "other@test.com", Name: "Other"},
	)
	svc := NewUserService(users, zerolog.Nop())
	ctx := context.Background()

	t.Run("token identity wins over body email", func(t *testing.T) {
		user, err := svc.UpdateProfile(ctx, &appauth.Identity{UserID: 1}, &dto.UpdateProfileRequest{
			Email:  "other@test.com",
			Skills: strPtr(" react, go "),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "react, go", user.SkillsText())
	})

	t.Run("body email without token", func(t *testing.T) {
		user, err := svc.UpdateProfile(ctx, nil, &dto.UpdateProfileRequest{Email: "Other@test.com", College: strPtr("IIT")})
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		require.NotNil(t, user.College)
		assert.Equal(t, "IIT", *user.College)
	})

	t.Run("no identity", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, nil, &dto.UpdateProfileRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, &appauth.Identity{UserID: 1}, &dto.UpdateProfileRequest{Name: strPtr("  ")})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, nil, &dto.UpdateProfileRequest{Email: "ghost@test.com"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		user, err := svc.UpdateProfile(ctx, &appauth.Identity{UserID: 2}, &dto.UpdateProfileRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Other", user.Name)
	})
}
