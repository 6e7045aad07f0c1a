package handler

import (
	"context"
	"net/http"

	"school_portal/internal/model"
	"school_portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler handles contact directory requests
type ContactHandler struct {
	*dispatcher
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService, log *zap.Logger) *ContactHandler {
	h := &ContactHandler{service: s}
	h.dispatcher = newDispatcher("contacts", log, map[string]route{
		http.MethodGet:    h.list,
		http.MethodPost:   h.create,
		http.MethodPut:    h.update,
		http.MethodDelete: h.delete,
	})
	return h
}

func (h *ContactHandler) list(ctx context.Context, _ Event) (int, any, error) {
	contacts, err := h.service.ListContacts(ctx)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"contacts": contacts}, nil
}

func (h *ContactHandler) create(ctx context.Context, ev Event) (int, any, error) {
	var req model.CreateContactRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	contact, err := h.service.CreateContact(ctx, req)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, gin.H{"success": true, "contact": contact}, nil
}

func (h *ContactHandler) update(ctx context.Context, ev Event) (int, any, error) {
	var req model.UpdateContactRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	if err := h.service.UpdateContact(ctx, req); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"success": true}, nil
}

func (h *ContactHandler) delete(ctx context.Context, ev Event) (int, any, error) {
	id, _, err := queryInt64(ev, "id")
	if err != nil {
		return 0, nil, err
	}
	if err := h.service.DeleteContact(ctx, id); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"success": true}, nil
}

// RegisterContactRoutes registers contact directory routes
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	register(rg, "/contacts", h)
}
