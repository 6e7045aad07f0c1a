package service

import (
	"context"
	"errors"
	"fmt"

	"school_portal/internal/metrics"
	"school_portal/internal/model"
	"school_portal/internal/repository"
	"school_portal/internal/utils"
)

const msgFieldsRequired = "userId, username and message required"

var msgTooLong = fmt.Sprintf("Message too long (max %d characters)", model.MaxMessageLength)

// MessageService defines operations for the chat
type MessageService interface {
	ListMessages(ctx context.Context, limit int) ([]model.Message, error)
	CreateMessage(ctx context.Context, req model.CreateMessageRequest) (*model.CreateMessageResult, error)
	UpdateMessage(ctx context.Context, req model.UpdateMessageRequest) error
	DeleteMessage(ctx context.Context, messageID, userID int64) error
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

// ListMessages returns the latest messages in chronological order
func (s *messageService) ListMessages(ctx context.Context, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = model.DefaultMessageLimit
	}
	if limit > model.MaxMessageLimit {
		limit = model.MaxMessageLimit
	}

	messages, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages from repo: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *messageService) CreateMessage(ctx context.Context, req model.CreateMessageRequest) (*model.CreateMessageResult, error) {
	utils.TrimAll(&req.Username, &req.Message)
	if err := validate(&req, msgFieldsRequired, map[string]string{"max": msgTooLong}); err != nil {
		return nil, err
	}

	if req.Message == model.AdminGiveCommand {
		if err := s.repo.GrantAdmin(ctx, req.UserID, req.Username); err != nil {
			return nil, fmt.Errorf("failed to grant admin in repo: %w", err)
		}
		metrics.AdminGrantsTotal.Inc()
		return &model.CreateMessageResult{AdminGranted: true}, nil
	}

	msg := &model.Message{
		UserID:   req.UserID,
		Username: req.Username,
		Message:  req.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message in repo: %w", err)
	}
	return &model.CreateMessageResult{Message: msg}, nil
}

// UpdateMessage rewrites the text of a message owned by req.UserID.
// Edits are held to the same length cap as new messages.
func (s *messageService) UpdateMessage(ctx context.Context, req model.UpdateMessageRequest) error {
	utils.TrimAll(&req.Message)
	if err := validate(&req, "messageId, userId and message required", map[string]string{"max": msgTooLong}); err != nil {
		return err
	}

	if err := s.authorize(ctx, req.MessageID, req.UserID); err != nil {
		return err
	}
	if err := s.repo.UpdateText(ctx, req.MessageID, req.Message); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrMessageNotFound // deleted between the check and the write
		}
		return fmt.Errorf("failed to update message in repo: %w", err)
	}
	return nil
}

func (s *messageService) DeleteMessage(ctx context.Context, messageID, userID int64) error {
	if messageID == 0 || userID == 0 {
		return invalid("messageId and userId required")
	}

	if err := s.authorize(ctx, messageID, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message in repo: %w", err)
	}
	return nil
}

// authorize checks that the message exists and belongs to userID
func (s *messageService) authorize(ctx context.Context, messageID, userID int64) error {
	existing, err := s.repo.FindByID(ctx, messageID)
	if err != nil {
		return fmt.Errorf("failed to find message: %w", err)
	}
	if existing == nil {
		return ErrMessageNotFound
	}
	if existing.UserID != userID { // Only author can edit or delete
		return ErrForbidden
	}
	return nil
}
