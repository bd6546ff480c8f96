package models

import "time"

// Message is an immutable direct message between two users
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Sender   *UserSummary `json:"sender,omitempty"`
	Receiver *UserSummary `json:"receiver,omitempty"`
}

// CounterpartID returns the id of the other participant relative to userID
func (m *Message) CounterpartID(userID int64) int64 {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Contact is one entry of a user's conversation list
type Contact struct {
	User        *UserSummary `json:"user"`
	LastMessage *Message     `json:"lastMessage"`
}
