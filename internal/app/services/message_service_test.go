package services

import (
	"context"
	"testing"

	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture() (*fakeUserRepo, *fakeMessageRepo, *recordingPublisher, MessageService) {
	users := newFakeUserRepo(
		&models.User{ID: 1, Email: "seeker@test.com", Name: "Seeker", Role: models.RoleSeeker},
		&models.User{ID: 2, Email: "employee@test.com", Name: "Employee", Role: models.RoleEmployee},
		&models.User{ID: 3, Email: "admin@test.com", Name: "Admin", Role: models.RoleAdmin},
	)
	messages := &fakeMessageRepo{users: users}
	events := &recordingPublisher{}
	return users, messages, events, NewMessageService(users, messages, events, zerolog.Nop())
}

func TestSend(t *testing.T) {
	_, messages, events, svc := newMessageFixture()
	ctx := context.Background()

	msg, err := svc.Send(ctx, &dto.SendMessageRequest{SenderEmail: "Seeker@Test.com", ReceiverID: 2, Content: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.SenderID)
	assert.Equal(t, int64(2), msg.ReceiverID)
	assert.Equal(t, "hello", msg.Content)
	require.NotNil(t, msg.Receiver)
	assert.Equal(t, "Employee", msg.Receiver.Name)
	assert.Len(t, messages.messages, 1)

	require.Len(t, events.events, 1)
	assert.Equal(t, int64(2), events.events[0].UserID)
	assert.Equal(t, EventMessageNew, events.events[0].Type)
}

func TestSend_Errors(t *testing.T) {
	_, messages, events, svc := newMessageFixture()
	ctx := context.Background()

	_, err := svc.Send(ctx, &dto.SendMessageRequest{SenderEmail: "stranger@test.com", ReceiverID: 2, Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound, "unknown sender")

	_, err = svc.Send(ctx, &dto.SendMessageRequest{SenderEmail: "seeker@test.com", ReceiverID: 99, Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound, "unknown receiver")

	_, err = svc.Send(ctx, &dto.SendMessageRequest{SenderEmail: "seeker@test.com", ReceiverID: 2, Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, messages.messages)
	assert.Empty(t, events.events)
}

func TestConversation_CreatesViewerOnDemand(t *testing.T) {
	users, _, _, svc := newMessageFixture()
	ctx := context.Background()

	msgs, err := svc.Conversation(ctx, "New.Person@test.com", 2)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	created, err := users.GetByEmail(ctx, "new.person@test.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeeker, created.Role)
	assert.Equal(t, "New Person", created.Name)

	_, err = svc.Conversation(ctx, " ", 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestConversation_OnlyBetweenParticipants(t *testing.T) {
	_, _, _, svc := newMessageFixture()
	ctx := context.Background()

	for _, req := range []*dto.SendMessageRequest{
		{SenderEmail: "seeker@test.com", ReceiverID: 2, Content: "one"},
		{SenderEmail: "employee@test.com", ReceiverID: 1, Content: "two"},
		{SenderEmail: "admin@test.com", ReceiverID: 1, Content: "other thread"},
	} {
		_, err := svc.Send(ctx, req)
		require.NoError(t, err)
	}

	msgs, err := svc.Conversation(ctx, "seeker@test.com", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "two", msgs[1].Content)
}

func TestContacts(t *testing.T) {
	_, _, _, svc := newMessageFixture()
	ctx := context.Background()

	for _, req := range []*dto.SendMessageRequest{
		{SenderEmail: "seeker@test.com", ReceiverID: 2, Content: "first"},
		{SenderEmail: "admin@test.com", ReceiverID: 1, Content: "from admin"},
		{SenderEmail: "employee@test.com", ReceiverID: 1, Content: "latest from employee"},
	} {
		_, err := svc.Send(ctx, req)
		require.NoError(t, err)
	}

	contacts, err := svc.Contacts(ctx, "seeker@test.com")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, int64(2), contacts[0].User.ID)
	assert.Equal(t, "latest from employee", contacts[0].LastMessage.Content)
	assert.Equal(t, int64(3), contacts[1].User.ID)
}

func TestContactsFromMessages(t *testing.T) {
	me := &models.UserSummary{ID: 1}
	bob := &models.UserSummary{ID: 2}
	eve := &models.UserSummary{ID: 3}

	messages := []*models.Message{
		{ID: 4, SenderID: 1, ReceiverID: 2, Sender: me, Receiver: bob},
		{ID: 3, SenderID: 3, ReceiverID: 1, Sender: eve, Receiver: me},
		{ID: 2, SenderID: 2, ReceiverID: 1, Sender: bob, Receiver: me},
		{ID: 1, SenderID: 1, ReceiverID: 3, Sender: me, Receiver: eve},
	}

	contacts := contactsFromMessages(1, messages)
	require.Len(t, contacts, 2)
	assert.Same(t, bob, contacts[0].User)
	assert.Equal(t, int64(4), contacts[0].LastMessage.ID)
	assert.Same(t, eve, contacts[1].User)
	assert.Equal(t, int64(3), contacts[1].LastMessage.ID)

	assert.Empty(t, contactsFromMessages(1, nil))
}
