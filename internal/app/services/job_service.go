package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// JobService handles job postings
type JobService interface {
	CreateJob(ctx context.Context, caller *appauth.Identity, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context) ([]*models.Job, error)
	SearchJobs(ctx context.Context, query *dto.JobSearchQuery) ([]*models.Job, error)
}

type jobServiceImpl struct {
	jobRepo repositories.IJobRepository
	now     func() time.Time
	logger  zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.IJobRepository, logger zerolog.Logger) JobService {
	return &jobServiceImpl{
		jobRepo: jobRepo,
		now:     time.Now,
		logger:  logger,
	}
}

// ValidityDays applies the default and range rules to a requested validity
func ValidityDays(requested *int) (int, error) {
	if requested == nil {
		return models.DefaultValidityDays, nil
	}
	days := *requested
	if days < models.MinValidityDays || days > models.MaxValidityDays {
		return 0, apperrors.ErrInvalidValidity
	}
	return days, nil
}

// CreateJob stores a posting expiring validityDays after creation. The poster
// is the caller when authenticated.
func (s *jobServiceImpl) CreateJob(ctx context.Context, caller *appauth.Identity, req *dto.CreateJobRequest) (*models.Job, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}

	days, err := ValidityDays(req.ValidityDays)
	if err != nil {
		return nil, err
	}

	now := s.now()
	job := &models.Job{
		Title:        title,
		Company:      strings.TrimSpace(req.Company),
		Location:     strings.TrimSpace(req.Location),
		Salary:       strings.TrimSpace(req.Salary),
		Type:         strings.TrimSpace(req.Type),
		Description:  req.Description,
		ValidityDays: days,
		CreatedAt:    now,
		ExpiryDate:   now.AddDate(0, 0, days),
	}
	if caller != nil {
		posterID := caller.UserID
		job.PostedByID = &posterID
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", job.ID).Int("validityDays", days).Msg("Job posted")
	return job, nil
}

func (s *jobServiceImpl) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobServiceImpl) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return s.jobRepo.List(ctx)
}

func (s *jobServiceImpl) SearchJobs(ctx context.Context, query *dto.JobSearchQuery) ([]*models.Job, error) {
	return s.jobRepo.Search(ctx, repositories.JobSearch{
		Query:    query.Q,
		Location: query.Location,
		Type:     query.Type,
	})
}
