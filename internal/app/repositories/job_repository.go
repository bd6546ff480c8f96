package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var jobColumns = []string{
	"id", "title", "company", "location", "salary", "type", "description",
	"validity_days", "expiry_date", "posted_by_id", "created_at",
}

// JobSearch holds the optional search filters; empty strings are ignored
type JobSearch struct {
	Query    string
	Location string
	Type     string
}

// JobRepository handles job database operations
type JobRepository struct {
	db  *pgxpool.Pool
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db:  db,
		sb:  newStatementBuilder(),
		now: time.Now,
	}
}

// selectJobs selects jobs joined with the (optional) poster
func (r *JobRepository) selectJobs() squirrel.SelectBuilder {
	cols := append(prefixed("j", jobColumns), "pu.name", "pu.email", "pu.role")
	return r.sb.Select(cols...).
		From("jobs j").
		LeftJoin("users pu ON pu.id = j.posted_by_id")
}

func scanJob(row rowScanner, now time.Time) (*models.Job, error) {
	j := &models.Job{}
	var posterName, posterEmail, posterRole *string
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.Type, &j.Description,
		&j.ValidityDays, &j.ExpiryDate, &j.PostedByID, &j.CreatedAt,
		&posterName, &posterEmail, &posterRole,
	)
	if err != nil {
		return nil, err
	}
	if j.PostedByID != nil && posterEmail != nil {
		j.PostedBy = &models.UserSummary{ID: *j.PostedByID, Name: deref(posterName), Email: *posterEmail, Role: models.Role(deref(posterRole))}
	}
	j.MarkExpired(now)
	return j, nil
}

// Create inserts a job. CreatedAt and ExpiryDate must already be set.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	sql, args, err := r.sb.Insert("jobs").
		Columns("title", "company", "location", "salary", "type", "description",
			"validity_days", "expiry_date", "posted_by_id", "created_at").
		Values(job.Title, job.Company, job.Location, job.Salary, job.Type, job.Description,
			job.ValidityDays, job.ExpiryDate, job.PostedByID, job.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create job SQL")
		return fmt.Errorf("failed to build create job query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&job.ID); err != nil {
		logger.Error().Err(err).Str("title", job.Title).Msg("Error executing create job query")
		return fmt.Errorf("error creating job: %w", err)
	}
	job.MarkExpired(r.now())
	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	sql, args, err := r.selectJobs().
		Where(squirrel.Eq{"j.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJob(r.db.QueryRow(ctx, sql, args...), r.now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error getting job by ID: %w", err)
	}
	return job, nil
}

// List returns every job, newest first
func (r *JobRepository) List(ctx context.Context) ([]*models.Job, error) {
	return r.query(ctx, r.selectJobs())
}

// ListByPoster returns the jobs posted by userID, newest first
func (r *JobRepository) ListByPoster(ctx context.Context, userID int64) ([]*models.Job, error) {
	return r.query(ctx, r.selectJobs().Where(squirrel.Eq{"j.posted_by_id": userID}))
}

// Search filters jobs case-insensitively: Query matches title or company,
// Location is a substring match and Type an exact match.
func (r *JobRepository) Search(ctx context.Context, criteria JobSearch) ([]*models.Job, error) {
	q := r.selectJobs()

	if s := strings.TrimSpace(criteria.Query); s != "" {
		pattern := containsPattern(s)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"j.title": pattern},
			squirrel.ILike{"j.company": pattern},
		})
	}
	if s := strings.TrimSpace(criteria.Location); s != "" {
		q = q.Where(squirrel.ILike{"j.location": containsPattern(s)})
	}
	if s := strings.TrimSpace(criteria.Type); s != "" {
		q = q.Where(squirrel.Expr("LOWER(j.type) = LOWER(?)", s))
	}

	return r.query(ctx, q)
}

func (r *JobRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Job, error) {
	sql, args, err := q.OrderBy("j.created_at DESC", "j.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing job query")
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	now := r.now()
	jobs := []*models.Job{}
	for rows.Next() {
		job, err := scanJob(rows, now)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}
	return jobs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
