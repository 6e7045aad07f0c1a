package app

import (
	"context"
	"net/http"
	"sort"

	"school_portal/internal/handler"
	"school_portal/internal/metrics"
	"school_portal/internal/middleware"
	"school_portal/internal/repository"
	"school_portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds one handler per resource
type Handlers struct {
	Messages *handler.MessageHandler
	Contacts *handler.ContactHandler
	News     *handler.NewsHandler
	Likes    *handler.LikeHandler
}

// NewHandlers wires repositories, services and handlers on top of db
func NewHandlers(db repository.DB, log *zap.Logger) *Handlers {
	repos := repository.NewRepositories(db)

	return &Handlers{
		Messages: handler.NewMessageHandler(service.NewMessageService(repos.Messages), log),
		Contacts: handler.NewContactHandler(service.NewContactService(repos.Contacts), log),
		News:     handler.NewNewsHandler(service.NewNewsService(repos.News), log),
		Likes:    handler.NewLikeHandler(service.NewLikeService(repos.Likes), log),
	}
}

// Lookup returns the handler registered under name
func (h *Handlers) Lookup(name string) (handler.EventHandler, bool) {
	eh, ok := h.byName()[name]
	return eh, ok
}

// Names lists the names accepted by Lookup
func (h *Handlers) Names() []string {
	var names []string
	for name := range h.byName() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Handlers) byName() map[string]handler.EventHandler {
	return map[string]handler.EventHandler{
		"messages":     h.Messages,
		"contacts":     h.Contacts,
		"news":         h.News,
		"lesson-likes": h.Likes,
	}
}

// Pinger reports database health
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with middlewares, API routes, /health and /metrics
func NewRouter(h *Handlers, db Pinger, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.MetricsMiddleware(),
		middleware.RecoverMiddleware(log),
	)

	apiGroup := router.Group("/api/v1") // Base path for API
	h.Messages.RegisterMessageRoutes(apiGroup)
	h.Contacts.RegisterContactRoutes(apiGroup)
	h.News.RegisterNewsRoutes(apiGroup)
	h.Likes.RegisterLikeRoutes(apiGroup)

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}
