package handler

import (
	"context"
	"net/http"

	"school_portal/internal/model"
	"school_portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler handles chat requests
type MessageHandler struct {
	*dispatcher
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(s service.MessageService, log *zap.Logger) *MessageHandler {
	h := &MessageHandler{service: s}
	h.dispatcher = newDispatcher("messages", log, map[string]route{
		http.MethodGet:    h.list,
		http.MethodPost:   h.create,
		http.MethodPut:    h.update,
		http.MethodDelete: h.delete,
	})
	return h
}

func (h *MessageHandler) list(ctx context.Context, ev Event) (int, any, error) {
	// A malformed limit falls back to the default like a missing one.
	limit, _, _ := queryInt64(ev, "limit")
	messages, err := h.service.ListMessages(ctx, int(limit))
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"messages": messages}, nil
}

func (h *MessageHandler) create(ctx context.Context, ev Event) (int, any, error) {
	var req model.CreateMessageRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	res, err := h.service.CreateMessage(ctx, req)
	if err != nil {
		return 0, nil, err
	}
	if res.AdminGranted {
		return http.StatusOK, gin.H{"success": true, "admin": true}, nil
	}
	return http.StatusCreated, gin.H{"success": true, "message": res.Message}, nil
}

func (h *MessageHandler) update(ctx context.Context, ev Event) (int, any, error) {
	var req model.UpdateMessageRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	if err := h.service.UpdateMessage(ctx, req); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"success": true}, nil
}

func (h *MessageHandler) delete(ctx context.Context, ev Event) (int, any, error) {
	messageID, _, err := queryInt64(ev, "messageId")
	if err != nil {
		return 0, nil, err
	}
	userID, _, err := queryInt64(ev, "userId")
	if err != nil {
		return 0, nil, err
	}
	if err := h.service.DeleteMessage(ctx, messageID, userID); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"success": true}, nil
}

// RegisterMessageRoutes registers chat routes
func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup) {
	register(rg, "/messages", h)
}
