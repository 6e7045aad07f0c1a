package handler

import (
	"context"
	"net/http"

	"school_portal/internal/model"
	"school_portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewsHandler handles news requests
type NewsHandler struct {
	*dispatcher
	service service.NewsService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(s service.NewsService, log *zap.Logger) *NewsHandler {
	h := &NewsHandler{service: s}
	h.dispatcher = newDispatcher("news", log, map[string]route{
		http.MethodGet:    h.list,
		http.MethodPost:   h.create,
		http.MethodPut:    h.update,
		http.MethodDelete: h.delete,
	})
	return h
}

func (h *NewsHandler) list(ctx context.Context, _ Event) (int, any, error) {
	items, err := h.service.ListNews(ctx)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"news": items}, nil
}

func (h *NewsHandler) create(ctx context.Context, ev Event) (int, any, error) {
	var req model.CreateNewsRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	news, err := h.service.CreateNews(ctx, req)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, gin.H{"success": true, "news": news}, nil
}

func (h *NewsHandler) update(ctx context.Context, ev Event) (int, any, error) {
	var req model.UpdateNewsRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	if err := h.service.UpdateNews(ctx, req); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"success": true}, nil
}

func (h *NewsHandler) delete(ctx context.Context, ev Event) (int, any, error) {
	id, _, err := queryInt64(ev, "id")
	if err != nil {
		return 0, nil, err
	}
	if err := h.service.DeleteNews(ctx, id); err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"success": true}, nil
}

// RegisterNewsRoutes registers news routes
func (h *NewsHandler) RegisterNewsRoutes(rg *gin.RouterGroup) {
	register(rg, "/news", h)
}
