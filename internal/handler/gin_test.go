package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school_portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(svc *mockLikeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewLikeHandler(svc, zap.NewNop()).RegisterLikeRoutes(r.Group("/api/v1"))
	return r
}

func TestGin_ForwardsQueryAndBody(t *testing.T) {
	svc := new(mockLikeService)
	r := setupRouter(svc)

	svc.On("GetLikes", mock.Anything, "math", (*int64)(nil)).Return(&model.LikeStatus{Likes: 1}, nil)
	svc.On("ToggleLike", mock.Anything, model.ToggleLikeRequest{UserID: 2, Subject: "math"}).Return(int64(2), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/lesson-likes?subject=math", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"likes":1,"hasLiked":false}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lesson-likes", strings.NewReader(`{"userId":2,"subject":"math"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likes":2}`, w.Body.String())
}

func TestGin_PreflightAndMethodNotAllowed(t *testing.T) {
	r := setupRouter(new(mockLikeService))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/lesson-likes", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	assert.Equal(t, "Content-Type, X-User-Id", w.Header().Get("Access-Control-Allow-Headers"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/lesson-likes", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

type stubHandler struct{ got Event }

func (s *stubHandler) Handle(_ context.Context, ev Event) Response {
	s.got = ev
	return jsonResponse(http.StatusTeapot, gin.H{"ok": true})
}

func TestGin_FirstQueryValueWins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubHandler{}
	r := gin.New()
	r.Any("/x", Gin(stub))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x?id=1&id=2", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "DELETE", stub.got.Method)
	assert.Equal(t, "1", stub.got.QueryParams["id"])
	assert.Empty(t, stub.got.Body)
}

func TestGin_BodyTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubHandler{}
	r := gin.New()
	r.Any("/x", Gin(stub))

	w := httptest.NewRecorder()
	big := strings.Repeat("a", MaxBodyBytes+1)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(big)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, stub.got.Method)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(big[:MaxBodyBytes])))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Len(t, stub.got.Body, MaxBodyBytes)
}
