package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/dberrors"
	"github.com/hirehunt/hirehunt/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var userColumns = []string{
	"id", "email", "name", "password", "role", "status", "risk_score",
	"skills", "college", "hometown", "resume_url", "created_at", "updated_at",
}

// ProfileUpdate holds the self-service profile fields; nil fields are left unchanged
type ProfileUpdate struct {
	Name     *string
	Skills   *string
	College  *string
	Hometown *string
}

// IsEmpty reports whether the update changes nothing
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Skills == nil && p.College == nil && p.Hometown == nil
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.Status, &u.RiskScore,
		&u.Skills, &u.College, &u.Hometown, &u.ResumeURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a user and fills in its generated fields
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "name", "password", "role", "status", "risk_score", "skills", "college", "hometown", "resume_url").
		Values(user.Email, user.Name, user.Password, user.Role, user.Status, user.RiskScore,
			user.Skills, user.College, user.Hometown, user.ResumeURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetOrCreateByEmail looks a user up by email and inserts a seeker when absent.
// The insert tolerates a concurrent creation of the same email.
func (r *UserRepository) GetOrCreateByEmail(ctx context.Context, email, name string) (*models.User, bool, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "name", "role", "status", "risk_score").
		Values(email, name, models.RoleSeeker, models.UserStatusPending, models.RiskLow).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build upsert user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	switch {
	case err == nil:
		return user, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		existing, err := r.GetByEmail(ctx, email)
		return existing, false, err
	default:
		logger.Error().Err(err).Str("email", email).Msg("Error executing upsert user query")
		return nil, false, fmt.Errorf("error creating user on demand: %w", err)
	}
}

// List returns every user, newest first
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// UpdateModeration sets status and/or risk score. Nil arguments are left untouched.
func (r *UserRepository) UpdateModeration(ctx context.Context, id int64, status *models.UserStatus, risk *models.RiskScore) (*models.User, error) {
	set := map[string]interface{}{}
	if status != nil {
		set["status"] = *status
	}
	if risk != nil {
		set["risk_score"] = *risk
	}
	return r.update(ctx, id, set)
}

// UpdateProfile applies the non-nil profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*models.User, error) {
	set := map[string]interface{}{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.College != nil {
		set["college"] = *update.College
	}
	if update.Hometown != nil {
		set["hometown"] = *update.Hometown
	}
	return r.update(ctx, id, set)
}

func (r *UserRepository) update(ctx context.Context, id int64, set map[string]interface{}) (*models.User, error) {
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("users").
		SetMap(set).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}
