package services

import (
	"context"
	"errors"
	"fmt"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/matching"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// ReferralService runs the referral lifecycle: Pending -> Accepted | Rejected
type ReferralService interface {
	CreateReferral(ctx context.Context, caller *appauth.Identity, req *dto.CreateReferralRequest) (*models.Referral, error)
	ListReferrals(ctx context.Context, filter models.ReferralFilter) ([]*models.Referral, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReferralStatus) (*models.Referral, error)
}

// ReferralOptions toggles optional lifecycle rules
type ReferralOptions struct {
	// UniquePerJob rejects a second referral for the same job and seeker
	UniquePerJob bool
}

type referralServiceImpl struct {
	userRepo     repositories.IUserRepository
	jobRepo      repositories.IJobRepository
	referralRepo repositories.IReferralRepository
	scorer       *matching.Scorer
	notifier     NotificationSender
	events       EventPublisher
	options      ReferralOptions
	logger       zerolog.Logger
}

// NewReferralService creates a new ReferralService
func NewReferralService(
	userRepo repositories.IUserRepository,
	jobRepo repositories.IJobRepository,
	referralRepo repositories.IReferralRepository,
	scorer *matching.Scorer,
	notifier NotificationSender,
	events EventPublisher,
	options ReferralOptions,
	logger zerolog.Logger,
) ReferralService {
	if events == nil {
		events = NopPublisher{}
	}
	return &referralServiceImpl{
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		referralRepo: referralRepo,
		scorer:       scorer,
		notifier:     notifier,
		events:       events,
		options:      options,
		logger:       logger.With().Str("service", "referral").Logger(),
	}
}

// resolveSeeker returns the authenticated caller, or finds or creates the
// seeker named in the request body.
func (s *referralServiceImpl) resolveSeeker(ctx context.Context, caller *appauth.Identity, req *dto.CreateReferralRequest) (*models.User, error) {
	if caller != nil {
		return s.userRepo.GetByID(ctx, caller.UserID)
	}

	email := validation.NormalizeEmail(req.SeekerEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: seekerEmail is required", apperrors.ErrValidationFailed)
	}

	name := req.SeekerName
	if name == "" {
		name = validation.DisplayNameFromEmail(email)
	}

	user, created, err := s.userRepo.GetOrCreateByEmail(ctx, email, name)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info().Int64("userID", user.ID).Msg("Created seeker on demand")
	}
	return user, nil
}

// CreateReferral scores and stores a Pending referral for the seeker
func (s *referralServiceImpl) CreateReferral(ctx context.Context, caller *appauth.Identity, req *dto.CreateReferralRequest) (*models.Referral, error) {
	if req.JobID <= 0 {
		return nil, fmt.Errorf("%w: jobId is required", apperrors.ErrValidationFailed)
	}

	seeker, err := s.resolveSeeker(ctx, caller, req)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	if s.options.UniquePerJob {
		exists, err := s.referralRepo.Exists(ctx, job.ID, seeker.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrDuplicateReferral
		}
	}

	referral := &models.Referral{
		JobID:    job.ID,
		SeekerID: seeker.ID,
		Note:     req.Note,
		Status:   models.ReferralPending,
		Score:    s.scorer.Score(job, req.Note, seeker.SkillsText()),
	}
	if err := s.referralRepo.Create(ctx, referral); err != nil {
		return nil, err
	}

	referral.Job = job
	referral.Seeker = seeker.Summary()

	s.logger.Info().
		Int64("referralID", referral.ID).
		Int64("jobID", job.ID).
		Int64("seekerID", seeker.ID).
		Int("score", referral.Score).
		Msg("Referral requested")

	if job.PostedByID != nil {
		s.events.Publish(*job.PostedByID, EventReferralCreated, referral)
	}
	return referral, nil
}

func (s *referralServiceImpl) ListReferrals(ctx context.Context, filter models.ReferralFilter) ([]*models.Referral, error) {
	if filter.Status != "" && filter.Status != models.ReferralPending && !filter.Status.IsDecision() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidReferralStatus, filter.Status)
	}
	return s.referralRepo.List(ctx, filter)
}

// UpdateStatus decides a Pending referral and notifies the seeker. A failure
// to load the notification details never undoes the decision.
func (s *referralServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.ReferralStatus) (*models.Referral, error) {
	if !status.IsDecision() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidReferralStatus, status)
	}

	updated, err := s.referralRepo.UpdateStatusIfPending(ctx, id, status)
	if err != nil {
		return nil, err
	}

	log := s.logger.With().Int64("referralID", id).Str("status", string(status)).Logger()
	log.Info().Msg("Referral decided")

	detailed, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load referral details, skipping notification")
		return updated, nil
	}

	if n, err := DecisionNotification(detailed); err != nil {
		log.Warn().Err(err).Msg("Could not build decision notification")
	} else if !s.notifier.Dispatch(n) {
		log.Warn().Msg("Decision notification was not queued")
	}

	if detailed.Seeker != nil {
		s.events.Publish(detailed.Seeker.ID, EventReferralStatus, detailed)
	}
	return detailed, nil
}

var errIncompleteReferral = errors.New("referral is missing its job or seeker")
