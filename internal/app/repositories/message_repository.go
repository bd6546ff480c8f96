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

// MessageRepository handles direct message database operations
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *MessageRepository) selectMessages() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.sender_id", "m.receiver_id", "m.content", "m.created_at",
		"su.name", "su.email", "su.role",
		"ru.name", "ru.email", "ru.role",
	).
		From("messages m").
		Join("users su ON su.id = m.sender_id").
		Join("users ru ON ru.id = m.receiver_id")
}

func scanMessage(row rowScanner) (*models.Message, error) {
	m := &models.Message{Sender: &models.UserSummary{}, Receiver: &models.UserSummary{}}
	err := row.Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.CreatedAt,
		&m.Sender.Name, &m.Sender.Email, &m.Sender.Role,
		&m.Receiver.Name, &m.Receiver.Email, &m.Receiver.Role,
	)
	if err != nil {
		return nil, err
	}
	m.Sender.ID = m.SenderID
	m.Receiver.ID = m.ReceiverID
	return m, nil
}

// Create inserts a message. An unknown participant surfaces as ErrUserNotFound.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	sql, args, err := r.sb.Insert("messages").
		Columns("sender_id", "receiver_id", "content").
		Values(message.SenderID, message.ReceiverID, message.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create message SQL")
		return fmt.Errorf("failed to build create message query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("senderID", message.SenderID).Msg("Error executing create message query")
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// Conversation returns the messages exchanged between two users, oldest first
func (r *MessageRepository) Conversation(ctx context.Context, userID, otherUserID int64) ([]*models.Message, error) {
	q := r.selectMessages().
		Where(squirrel.Or{
			squirrel.Eq{"m.sender_id": userID, "m.receiver_id": otherUserID},
			squirrel.Eq{"m.sender_id": otherUserID, "m.receiver_id": userID},
		}).
		OrderBy("m.created_at ASC", "m.id ASC")
	return r.query(ctx, q)
}

// ListForUser returns every message sent or received by userID, newest first
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Message, error) {
	q := r.selectMessages().
		Where(squirrel.Or{
			squirrel.Eq{"m.sender_id": userID},
			squirrel.Eq{"m.receiver_id": userID},
		}).
		OrderBy("m.created_at DESC", "m.id DESC")
	return r.query(ctx, q)
}

func (r *MessageRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Message, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build message query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing message query")
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return messages, nil
}
