package services

import (
	"context"
	"strings"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// WalkInDriveService handles walk-in hiring drives
type WalkInDriveService interface {
	CreateDrive(ctx context.Context, caller *appauth.Identity, req *dto.CreateWalkInDriveRequest) (*models.WalkInDrive, error)
	ListDrives(ctx context.Context) ([]*models.WalkInDrive, error)
}

type walkInDriveServiceImpl struct {
	userRepo  repositories.IUserRepository
	driveRepo repositories.IWalkInDriveRepository
	logger    zerolog.Logger
}

// NewWalkInDriveService creates a new WalkInDriveService
func NewWalkInDriveService(
	userRepo repositories.IUserRepository,
	driveRepo repositories.IWalkInDriveRepository,
	logger zerolog.Logger,
) WalkInDriveService {
	return &walkInDriveServiceImpl{
		userRepo:  userRepo,
		driveRepo: driveRepo,
		logger:    logger,
	}
}

func (s *walkInDriveServiceImpl) CreateDrive(ctx context.Context, caller *appauth.Identity, req *dto.CreateWalkInDriveRequest) (*models.WalkInDrive, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthorized
	}

	poster, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	drive := &models.WalkInDrive{
		Company:       strings.TrimSpace(req.Company),
		Location:      strings.TrimSpace(req.Location),
		Timing:        strings.TrimSpace(req.Timing),
		Qualification: strings.TrimSpace(req.Qualification),
		PostedByID:    poster.ID,
	}
	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}
	drive.PostedBy = poster.Summary()

	s.logger.Info().Int64("driveID", drive.ID).Int64("posterID", poster.ID).Msg("Walk-in drive posted")
	return drive, nil
}

func (s *walkInDriveServiceImpl) ListDrives(ctx context.Context) ([]*models.WalkInDrive, error) {
	return s.driveRepo.List(ctx)
}
