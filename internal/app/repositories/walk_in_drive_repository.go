package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/dberrors"
	"github.com/hirehunt/hirehunt/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WalkInDriveRepository handles walk-in drive database operations
type WalkInDriveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWalkInDriveRepository creates a new WalkInDriveRepository
func NewWalkInDriveRepository(db *pgxpool.Pool) *WalkInDriveRepository {
	return &WalkInDriveRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Create inserts a drive. An unknown poster surfaces as ErrUserNotFound.
func (r *WalkInDriveRepository) Create(ctx context.Context, drive *models.WalkInDrive) error {
	sql, args, err := r.sb.Insert("walk_in_drives").
		Columns("company", "location", "timing", "qualification", "posted_by_id").
		Values(drive.Company, drive.Location, drive.Timing, drive.Qualification, drive.PostedByID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create walk-in drive query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&drive.ID, &drive.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("company", drive.Company).Msg("Error executing create walk-in drive query")
		return fmt.Errorf("error creating walk-in drive: %w", err)
	}
	return nil
}

// List returns every drive with its poster, newest first
func (r *WalkInDriveRepository) List(ctx context.Context) ([]*models.WalkInDrive, error) {
	sql, args, err := r.sb.Select(
		"d.id", "d.company", "d.location", "d.timing", "d.qualification", "d.posted_by_id", "d.created_at",
		"u.name", "u.email",
	).
		From("walk_in_drives d").
		Join("users u ON u.id = d.posted_by_id").
		OrderBy("d.created_at DESC", "d.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list walk-in drives query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list walk-in drives query")
		return nil, fmt.Errorf("error querying walk-in drives: %w", err)
	}
	defer rows.Close()

	drives := []*models.WalkInDrive{}
	for rows.Next() {
		d := &models.WalkInDrive{PostedBy: &models.UserSummary{}}
		if err := rows.Scan(
			&d.ID, &d.Company, &d.Location, &d.Timing, &d.Qualification, &d.PostedByID, &d.CreatedAt,
			&d.PostedBy.Name, &d.PostedBy.Email,
		); err != nil {
			return nil, fmt.Errorf("error scanning walk-in drive row: %w", err)
		}
		d.PostedBy.ID = d.PostedByID
		drives = append(drives, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating walk-in drives: %w", err)
	}
	return drives, nil
}
