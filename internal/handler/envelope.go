package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"school_portal/internal/logger"
	"school_portal/internal/metrics"
	"school_portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	corsAllowHeaders = "Content-Type, X-User-Id"
	corsMaxAge       = "86400"
)

// Event is an inbound HTTP-like request, shaped like a serverless gateway event.
type Event struct {
	Method      string            `json:"httpMethod"`
	QueryParams map[string]string `json:"queryStringParameters"`
	Body        string            `json:"body"`
}

// Response is the envelope returned for every Event.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// EventHandler maps one Event to one Response. Errors never escape it.
type EventHandler interface {
	Handle(ctx context.Context, ev Event) Response
}

// route serves one HTTP verb and returns the status and payload to encode
type route func(ctx context.Context, ev Event) (int, any, error)

// dispatcher does method routing, CORS preflight and error mapping shared by all handlers
type dispatcher struct {
	name         string
	log          *zap.Logger
	routes       map[string]route
	allowMethods string
}

func newDispatcher(name string, log *zap.Logger, routes map[string]route) *dispatcher {
	var methods []string
	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		if _, ok := routes[m]; ok {
			methods = append(methods, m)
		}
	}
	methods = append(methods, http.MethodOptions)
	return &dispatcher{
		name:         name,
		log:          log,
		routes:       routes,
		allowMethods: strings.Join(methods, ", "),
	}
}

// Handle implements EventHandler
func (d *dispatcher) Handle(ctx context.Context, ev Event) Response {
	method := strings.ToUpper(ev.Method)
	if method == "" {
		method = http.MethodGet
	}
	if method == http.MethodOptions {
		return d.preflight()
	}

	r, ok := d.routes[method]
	if !ok {
		metrics.HandlerOperationsTotal.WithLabelValues(d.name, method, "not_allowed").Inc()
		return jsonResponse(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}

	status, payload, err := r(ctx, ev)
	if err != nil {
		return d.fail(ctx, method, err)
	}
	metrics.HandlerOperationsTotal.WithLabelValues(d.name, method, "ok").Inc()
	return jsonResponse(status, payload)
}

func (d *dispatcher) preflight() Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": d.allowMethods,
			"Access-Control-Allow-Headers": corsAllowHeaders,
			"Access-Control-Max-Age":       corsMaxAge,
		},
	}
}

// fail maps service errors to status codes. Unknown errors are logged and hidden.
func (d *dispatcher) fail(ctx context.Context, method string, err error) Response {
	var (
		ve      *service.ValidationError
		status  int
		outcome string
		msg     = err.Error()
	)
	switch {
	case errors.As(err, &ve):
		status, outcome = http.StatusBadRequest, "invalid"
	case errors.Is(err, service.ErrNotFound):
		status, outcome = http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrForbidden):
		status, outcome = http.StatusForbidden, "forbidden"
	default:
		status, outcome, msg = http.StatusInternalServerError, "error", "Internal server error"
		logger.FromContext(ctx, d.log).Error("handler failed",
			zap.String("handler", d.name),
			zap.String("method", method),
			zap.Error(err),
		)
	}
	metrics.HandlerOperationsTotal.WithLabelValues(d.name, method, outcome).Inc()
	return jsonResponse(status, gin.H{"error": msg})
}

func jsonResponse(status int, payload any) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Internal server error"}`)
	}
	return Response{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}

// decodeBody unmarshals the event body into dst. An empty body decodes as {}.
func decodeBody(ev Event, dst any) error {
	if strings.TrimSpace(ev.Body) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(ev.Body), dst); err != nil {
		return &service.ValidationError{Msg: "Invalid JSON body"}
	}
	return nil
}

// queryInt64 parses an optional integer query parameter; ok is false when it is absent or blank
func queryInt64(ev Event, key string) (v int64, ok bool, err error) {
	raw := strings.TrimSpace(ev.QueryParams[key])
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, &service.ValidationError{Msg: key + " must be an integer"}
	}
	return v, true, nil
}
