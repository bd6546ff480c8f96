package services

import (
	"context"
	"time"

	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// LeaderboardSize is the number of employees ranked on the leaderboard
const LeaderboardSize = 10

// DashboardService assembles the per-role landing page data
type DashboardService interface {
	Seeker(ctx context.Context, caller appauth.Identity) (*dto.SeekerDashboard, error)
	SeekerApplications(ctx context.Context, caller appauth.Identity) ([]*models.Referral, error)
	Employee(ctx context.Context, caller appauth.Identity) (*dto.EmployeeDashboard, error)
	Admin(ctx context.Context, caller appauth.Identity) (*dto.AdminDashboard, error)
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
	Profile(ctx context.Context, caller appauth.Identity) (*models.User, error)
}

type dashboardServiceImpl struct {
	userRepo     repositories.IUserRepository
	jobRepo      repositories.IJobRepository
	referralRepo repositories.IReferralRepository
	driveRepo    repositories.IWalkInDriveRepository
	now          func() time.Time
	logger       zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	userRepo repositories.IUserRepository,
	jobRepo repositories.IJobRepository,
	referralRepo repositories.IReferralRepository,
	driveRepo repositories.IWalkInDriveRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		referralRepo: referralRepo,
		driveRepo:    driveRepo,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *dashboardServiceImpl) Seeker(ctx context.Context, caller appauth.Identity) (*dto.SeekerDashboard, error) {
	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	referrals, err := s.referralRepo.List(ctx, models.ReferralFilter{SeekerID: user.ID})
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	drives, err := s.driveRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SeekerDashboard{
		User:         user,
		Referrals:    referrals,
		Jobs:         openJobs(jobs),
		WalkInDrives: drives,
	}, nil
}

// openJobs drops postings past their expiry date
func openJobs(jobs []*models.Job) []*models.Job {
	open := make([]*models.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.Expired {
			open = append(open, j)
		}
	}
	return open
}

func (s *dashboardServiceImpl) SeekerApplications(ctx context.Context, caller appauth.Identity) ([]*models.Referral, error) {
	return s.referralRepo.List(ctx, models.ReferralFilter{SeekerID: caller.UserID})
}

func (s *dashboardServiceImpl) Employee(ctx context.Context, caller appauth.Identity) (*dto.EmployeeDashboard, error) {
	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	pending, err := s.referralRepo.List(ctx, models.ReferralFilter{Status: models.ReferralPending})
	if err != nil {
		return nil, err
	}

	tally, err := s.referralRepo.CountByStatus(ctx, models.ReferralFilter{})
	if err != nil {
		return nil, err
	}

	posted, err := s.jobRepo.ListByPoster(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeDashboard{
		User:             user,
		PendingReferrals: pending,
		Counts: dto.ReferralCounts{
			Pending:  tally[models.ReferralPending],
			Accepted: tally[models.ReferralAccepted],
			Rejected: tally[models.ReferralRejected],
		},
		PostedJobs: posted,
	}, nil
}

// Admin lists every account with moderation counters. Only admins may see it.
func (s *dashboardServiceImpl) Admin(ctx context.Context, caller appauth.Identity) (*dto.AdminDashboard, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin role required")
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	dash := &dto.AdminDashboard{Users: make([]dto.AdminUserResponse, 0, len(users))}
	for _, u := range users {
		dash.Users = append(dash.Users, dto.NewAdminUserResponse(u))
		if u.Status == models.UserStatusPending {
			dash.PendingApprovals++
		}
		if u.Status == models.UserStatusBanned || u.RiskScore == models.RiskHigh {
			dash.Flagged++
		}
	}
	return dash, nil
}

// Leaderboard ranks employees by accepted referrals on the jobs they posted.
// Ties share the order of the query but get distinct ranks.
func (s *dashboardServiceImpl) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	ranks, err := s.referralRepo.AcceptedLeaderboard(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(ranks))
	for i, r := range ranks {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:          i + 1,
			Employee:      r.Employee,
			AcceptedCount: r.AcceptedCount,
		})
	}
	return entries, nil
}

func (s *dashboardServiceImpl) Profile(ctx context.Context, caller appauth.Identity) (*models.User, error) {
	return s.userRepo.GetByID(ctx, caller.UserID)
}
