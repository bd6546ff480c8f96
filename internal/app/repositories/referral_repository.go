package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/dberrors"
	"github.com/hirehunt/hirehunt/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	referralJobFK    = "referrals_job_id_fkey"
	referralSeekerFK = "referrals_seeker_id_fkey"
)

var referralColumns = []string{
	"id", "job_id", "seeker_id", "note", "status", "score", "created_at", "updated_at",
}

// ReferralRepository handles referral database operations
type ReferralRepository struct {
	db  *pgxpool.Pool
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewReferralRepository creates a new ReferralRepository
func NewReferralRepository(db *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{
		db:  db,
		sb:  newStatementBuilder(),
		now: time.Now,
	}
}

func scanReferral(row rowScanner) (*models.Referral, error) {
	r := &models.Referral{}
	err := row.Scan(&r.ID, &r.JobID, &r.SeekerID, &r.Note, &r.Status, &r.Score, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// selectDetailed selects referrals joined with their job and seeker
func (r *ReferralRepository) selectDetailed() squirrel.SelectBuilder {
	cols := prefixed("r", referralColumns)
	cols = append(cols, prefixed("j", jobColumns)...)
	cols = append(cols, "s.id", "s.name", "s.email", "s.role")
	return r.sb.Select(cols...).
		From("referrals r").
		Join("jobs j ON j.id = r.job_id").
		Join("users s ON s.id = r.seeker_id")
}

func scanDetailedReferral(row rowScanner, now time.Time) (*models.Referral, error) {
	ref := &models.Referral{Job: &models.Job{}, Seeker: &models.UserSummary{}}
	j := ref.Job
	err := row.Scan(
		&ref.ID, &ref.JobID, &ref.SeekerID, &ref.Note, &ref.Status, &ref.Score, &ref.CreatedAt, &ref.UpdatedAt,
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.Type, &j.Description,
		&j.ValidityDays, &j.ExpiryDate, &j.PostedByID, &j.CreatedAt,
		&ref.Seeker.ID, &ref.Seeker.Name, &ref.Seeker.Email, &ref.Seeker.Role,
	)
	if err != nil {
		return nil, err
	}
	j.MarkExpired(now)
	return ref, nil
}

// Create inserts a referral. Missing job or seeker rows surface as
// ErrJobNotFound / ErrUserNotFound through the foreign keys.
func (r *ReferralRepository) Create(ctx context.Context, referral *models.Referral) error {
	sql, args, err := r.sb.Insert("referrals").
		Columns("job_id", "seeker_id", "note", "status", "score").
		Values(referral.JobID, referral.SeekerID, referral.Note, referral.Status, referral.Score).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create referral SQL")
		return fmt.Errorf("failed to build create referral query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&referral.ID, &referral.CreatedAt, &referral.UpdatedAt)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err, referralJobFK):
			return apperrors.ErrJobNotFound
		case dberrors.IsForeignKeyViolation(err, referralSeekerFK):
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("jobID", referral.JobID).Int64("seekerID", referral.SeekerID).Msg("Error executing create referral query")
		return fmt.Errorf("error creating referral: %w", err)
	}
	return nil
}

// Exists reports whether the seeker already requested a referral for the job
func (r *ReferralRepository) Exists(ctx context.Context, jobID, seekerID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("referrals").
		Where(squirrel.Eq{"job_id": jobID, "seeker_id": seekerID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build referral exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking referral existence: %w", err)
	}
	return exists, nil
}

// GetByID retrieves a referral with its job and seeker
func (r *ReferralRepository) GetByID(ctx context.Context, id int64) (*models.Referral, error) {
	sql, args, err := r.selectDetailed().
		Where(squirrel.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get referral query: %w", err)
	}

	ref, err := scanDetailedReferral(r.db.QueryRow(ctx, sql, args...), r.now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReferralNotFound
		}
		logger.Error().Err(err).Int64("referralID", id).Msg("Error scanning referral row")
		return nil, fmt.Errorf("error getting referral: %w", err)
	}
	return ref, nil
}

func applyReferralFilter(q squirrel.SelectBuilder, filter models.ReferralFilter) squirrel.SelectBuilder {
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"r.status": filter.Status})
	}
	if filter.SeekerID > 0 {
		q = q.Where(squirrel.Eq{"r.seeker_id": filter.SeekerID})
	}
	if filter.JobID > 0 {
		q = q.Where(squirrel.Eq{"r.job_id": filter.JobID})
	}
	if filter.PostedByID > 0 {
		q = q.Where(squirrel.Eq{"j.posted_by_id": filter.PostedByID})
	}
	return q
}

// List returns referrals matching filter with job and seeker, newest first
func (r *ReferralRepository) List(ctx context.Context, filter models.ReferralFilter) ([]*models.Referral, error) {
	sql, args, err := applyReferralFilter(r.selectDetailed(), filter).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list referrals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list referrals query")
		return nil, fmt.Errorf("error querying referrals: %w", err)
	}
	defer rows.Close()

	now := r.now()
	referrals := []*models.Referral{}
	for rows.Next() {
		ref, err := scanDetailedReferral(rows, now)
		if err != nil {
			return nil, fmt.Errorf("error scanning referral row: %w", err)
		}
		referrals = append(referrals, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating referrals: %w", err)
	}
	return referrals, nil
}

// UpdateStatusIfPending performs the conditional Pending -> status transition
func (r *ReferralRepository) UpdateStatusIfPending(ctx context.Context, id int64, status models.ReferralStatus) (*models.Referral, error) {
	sql, args, err := r.sb.Update("referrals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": models.ReferralPending}).
		Suffix("RETURNING " + joinColumns(referralColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update referral status query: %w", err)
	}

	ref, err := scanReferral(r.db.QueryRow(ctx, sql, args...))
	if err == nil {
		return ref, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("referralID", id).Msg("Error executing update referral status query")
		return nil, fmt.Errorf("error updating referral status: %w", err)
	}

	// Nothing updated: either the referral does not exist or it was already decided
	var current models.ReferralStatus
	err = r.db.QueryRow(ctx, `SELECT status FROM referrals WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrReferralNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading referral status: %w", err)
	}
	return nil, apperrors.ErrReferralAlreadyDecided
}

// CountByStatus tallies referrals matching filter per status
func (r *ReferralRepository) CountByStatus(ctx context.Context, filter models.ReferralFilter) (map[models.ReferralStatus]int, error) {
	q := r.sb.Select("r.status", "COUNT(*)").
		From("referrals r").
		Join("jobs j ON j.id = r.job_id").
		GroupBy("r.status")
	sql, args, err := applyReferralFilter(q, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build referral count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting referrals: %w", err)
	}
	defer rows.Close()

	counts := map[models.ReferralStatus]int{}
	for rows.Next() {
		var status models.ReferralStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("error scanning referral count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// AcceptedLeaderboard ranks employees by accepted referrals on the jobs they posted
func (r *ReferralRepository) AcceptedLeaderboard(ctx context.Context, limit int) ([]*models.EmployeeRank, error) {
	sql, args, err := r.sb.Select("u.id", "u.name", "u.email", "u.role", "COUNT(r.id) AS accepted").
		From("users u").
		LeftJoin("jobs j ON j.posted_by_id = u.id").
		LeftJoin("referrals r ON r.job_id = j.id AND r.status = ?", models.ReferralAccepted).
		Where(squirrel.Eq{"u.role": models.RoleEmployee}).
		GroupBy("u.id", "u.name", "u.email", "u.role").
		OrderBy("accepted DESC", "u.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing leaderboard query")
		return nil, fmt.Errorf("error querying leaderboard: %w", err)
	}
	defer rows.Close()

	ranks := []*models.EmployeeRank{}
	for rows.Next() {
		rank := &models.EmployeeRank{Employee: &models.UserSummary{}}
		e := rank.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &rank.AcceptedCount); err != nil {
			return nil, fmt.Errorf("error scanning leaderboard row: %w", err)
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}
