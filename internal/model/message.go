package model

import "time"

const (
	// MaxMessageLength is counted in characters, not bytes. Keep in sync with the max tags below.
	MaxMessageLength = 1000

	// AdminGiveCommand is the message body that grants admin instead of posting.
	AdminGiveCommand = "/adminGive"

	DefaultMessageLimit = 100
	MaxMessageLimit     = 1000
)

// Message represents a chat message
type Message struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	IsAdmin   bool      `json:"isAdmin"` // derived from the admins table
}

type CreateMessageRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	Username string `json:"username" binding:"required"`
	Message  string `json:"message" binding:"required,max=1000"`
}

type UpdateMessageRequest struct {
	MessageID int64  `json:"messageId" binding:"required"`
	UserID    int64  `json:"userId" binding:"required"`
	Message   string `json:"message" binding:"required,max=1000"`
}

// CreateMessageResult holds either the stored message or an admin grant acknowledgment.
type CreateMessageResult struct {
	Message      *Message
	AdminGranted bool
}
