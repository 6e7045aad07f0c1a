package handler

import (
	"context"
	"net/http"

	"school_portal/internal/model"
	"school_portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LikeHandler handles lesson like requests
type LikeHandler struct {
	*dispatcher
	service service.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(s service.LikeService, log *zap.Logger) *LikeHandler {
	h := &LikeHandler{service: s}
	h.dispatcher = newDispatcher("lesson-likes", log, map[string]route{
		http.MethodGet:  h.get,
		http.MethodPost: h.toggle,
	})
	return h
}

func (h *LikeHandler) get(ctx context.Context, ev Event) (int, any, error) {
	// Anonymous visitors send userId=null; anything non-numeric means no user.
	var uid *int64
	if userID, ok, err := queryInt64(ev, "userId"); err == nil && ok {
		uid = &userID
	}
	status, err := h.service.GetLikes(ctx, ev.QueryParams["subject"], uid)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, status, nil
}

func (h *LikeHandler) toggle(ctx context.Context, ev Event) (int, any, error) {
	var req model.ToggleLikeRequest
	if err := decodeBody(ev, &req); err != nil {
		return 0, nil, err
	}
	count, err := h.service.ToggleLike(ctx, req)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, gin.H{"likes": count}, nil
}

// RegisterLikeRoutes registers lesson like routes
func (h *LikeHandler) RegisterLikeRoutes(rg *gin.RouterGroup) {
	register(rg, "/lesson-likes", h)
}
