package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/repositories"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/hirehunt/hirehunt/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// MessageService handles direct messages between users
type MessageService interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	Conversation(ctx context.Context, email string, otherUserID int64) ([]*models.Message, error)
	Contacts(ctx context.Context, email string) ([]*models.Contact, error)
}

type messageServiceImpl struct {
	userRepo    repositories.IUserRepository
	messageRepo repositories.IMessageRepository
	events      EventPublisher
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	userRepo repositories.IUserRepository,
	messageRepo repositories.IMessageRepository,
	events EventPublisher,
	logger zerolog.Logger,
) MessageService {
	if events == nil {
		events = NopPublisher{}
	}
	return &messageServiceImpl{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		events:      events,
		logger:      logger,
	}
}

// Send stores a message from the user identified by senderEmail. Both
// participants must already exist.
func (s *messageServiceImpl) Send(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	email := validation.NormalizeEmail(req.SenderEmail)
	if email == "" || req.ReceiverID <= 0 || content == "" {
		return nil, fmt.Errorf("%w: senderEmail, receiverId and content are required", apperrors.ErrValidationFailed)
	}

	sender, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	msg.Sender = sender.Summary()
	msg.Receiver = receiver.Summary()

	s.logger.Debug().Int64("messageID", msg.ID).Int64("senderID", sender.ID).Int64("receiverID", receiver.ID).Msg("Message sent")
	s.events.Publish(receiver.ID, EventMessageNew, msg)
	return msg, nil
}

// viewer resolves the user reading their messages, creating a seeker on first use
func (s *messageServiceImpl) viewer(ctx context.Context, email string) (*models.User, error) {
	email = validation.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	user, created, err := s.userRepo.GetOrCreateByEmail(ctx, email, validation.DisplayNameFromEmail(email))
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info().Int64("userID", user.ID).Msg("Created user on first message lookup")
	}
	return user, nil
}

// Conversation returns the messages between the viewer and otherUserID, oldest first
func (s *messageServiceImpl) Conversation(ctx context.Context, email string, otherUserID int64) ([]*models.Message, error) {
	user, err := s.viewer(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.messageRepo.Conversation(ctx, user.ID, otherUserID)
}

// Contacts returns one entry per counterpart, most recent conversation first
func (s *messageServiceImpl) Contacts(ctx context.Context, email string) ([]*models.Contact, error) {
	user, err := s.viewer(ctx, email)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return contactsFromMessages(user.ID, messages), nil
}

// contactsFromMessages keeps the first message seen per counterpart. messages
// must be ordered newest first.
func contactsFromMessages(userID int64, messages []*models.Message) []*models.Contact {
	seen := make(map[int64]bool)
	contacts := []*models.Contact{}
	for _, m := range messages {
		other := m.CounterpartID(userID)
		if seen[other] {
			continue
		}
		seen[other] = true

		counterpart := m.Sender
		if m.SenderID == userID {
			counterpart = m.Receiver
		}
		contacts = append(contacts, &models.Contact{User: counterpart, LastMessage: m})
	}
	return contacts
}
