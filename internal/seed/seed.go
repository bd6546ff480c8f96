package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/config"
	"github.com/hirehunt/hirehunt/internal/db"
	"github.com/hirehunt/hirehunt/internal/pkg/auth"
	"github.com/hirehunt/hirehunt/internal/pkg/validation"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SamplePassword is the password of every sample account
const SamplePassword = "password123"

type sampleUser struct {
	Email string
	Name  string
	Role  models.Role
}

var sampleUsers = []sampleUser{
	{Email: "seeker@test.com", Name: "Test Seeker", Role: models.RoleSeeker},
	{Email: "employee@test.com", Name: "Test Employee", Role: models.RoleEmployee},
	{Email: "admin@test.com", Name: "Test Admin", Role: models.RoleAdmin},
}

// SampleJobs are posted by the sample employee on an empty database
var SampleJobs = []models.Job{
	{Title: "Frontend Developer", Company: "Google", Location: "Bangalore", Salary: "₹18-25 LPA", Type: "Full-time",
		Description: "Build rich web interfaces with React, TypeScript and modern CSS."},
	{Title: "Backend Engineer", Company: "Microsoft", Location: "Hyderabad", Salary: "₹20-28 LPA", Type: "Full-time",
		Description: "Design scalable services in Golang or Java with PostgreSQL and Kubernetes."},
	{Title: "Product Designer", Company: "Cred", Location: "Bangalore", Salary: "₹15-22 LPA", Type: "Full-time",
		Description: "Own product design end to end using Figma, research and prototyping."},
	{Title: "Data Scientist", Company: "Amazon", Location: "Bangalore", Salary: "₹25-35 LPA", Type: "Full-time",
		Description: "Model customer behaviour with Python, statistics and machine learning."},
}

var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var hashPassword = auth.HashPassword

// querier is the part of pgx.Tx the seed statements use
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// CreateDefaultData creates the configured admin and, when enabled, the sample
// accounts and jobs. Existing rows are left untouched so it is safe on every start.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin, sample accounts, sample jobs)...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return seedDefaults(ctx, tx, cfg, lgr)
	})
}

// seedDefaults stops at the first failed statement: Postgres aborts the
// transaction, so later statements could not succeed anyway.
func seedDefaults(ctx context.Context, q querier, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping default admin")
	} else {
		email := validation.NormalizeEmail(cfg.Seed.AdminEmail)
		if _, err := ensureUser(ctx, q, sampleUser{Email: email, Name: "Administrator", Role: models.RoleAdmin}, cfg.Seed.AdminPassword); err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error creating default admin")
			return err
		}
	}

	if !cfg.Seed.SampleData {
		return nil
	}

	var posterID int64
	for _, u := range sampleUsers {
		id, err := ensureUser(ctx, q, u, SamplePassword)
		if err != nil {
			lgr.Error().Err(err).Str("email", u.Email).Msg("Error creating sample user")
			return err
		}
		if u.Role == models.RoleEmployee {
			posterID = id
		}
	}

	if err := ensureSampleJobs(ctx, q, posterID, time.Now(), lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating sample jobs")
		return err
	}
	return nil
}

// ensureUser inserts an approved account unless the email is taken and returns its id
func ensureUser(ctx context.Context, q querier, u sampleUser, password string) (int64, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	sql, args, err := sb.Insert("users").
		Columns("email", "name", "password", "role", "status", "risk_score").
		Values(u.Email, u.Name, hash, u.Role, models.UserStatusApproved, models.RiskLow).
		Suffix("ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build seed user query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error seeding user %s: %w", u.Email, err)
	}
	return id, nil
}

// ensureSampleJobs posts SampleJobs when the jobs table is empty
func ensureSampleJobs(ctx context.Context, q querier, posterID int64, now time.Time, lgr zerolog.Logger) error {
	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("error counting jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	var poster interface{}
	if posterID > 0 {
		poster = posterID
	}

	ib := sb.Insert("jobs").
		Columns("title", "company", "location", "salary", "type", "description",
			"validity_days", "expiry_date", "posted_by_id", "created_at")
	for _, j := range SampleJobs {
		ib = ib.Values(j.Title, j.Company, j.Location, j.Salary, j.Type, j.Description,
			models.DefaultValidityDays, now.AddDate(0, 0, models.DefaultValidityDays), poster, now)
	}

	sql, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sample jobs query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error inserting sample jobs: %w", err)
	}

	lgr.Info().Int("count", len(SampleJobs)).Msg("Sample jobs created")
	return nil
}
