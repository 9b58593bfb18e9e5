package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// HandleKey is the context key for the acting user's handle
	HandleKey ContextKey = "handle"
	// TraceIDKey is the context key for trace ID
	TraceIDKey ContextKey = "trace_id"
	// ServiceNameKey is the context key for service name
	ServiceNameKey ContextKey = "service_name"
)

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	Handle      string
	TraceID     string
	ServiceName string
	StartTime   time.Time
}

// NewRequestContext creates a new request context for work that did not start from HTTP
func NewRequestContext(serviceName string) *RequestContext {
	return &RequestContext{
		RequestID:   uuid.New().String(),
		TraceID:     uuid.New().String(),
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, HandleKey, reqCtx.Handle)
	ctx = context.WithValue(ctx, TraceIDKey, reqCtx.TraceID)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext extracts request context from Echo context
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{
		StartTime: time.Now(),
	}

	if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		reqCtx.RequestID = requestID
	} else {
		reqCtx.RequestID = uuid.New().String()
	}

	if handle, ok := c.Get("handle").(string); ok {
		reqCtx.Handle = handle
	}

	if traceID := c.Request().Header.Get("X-Trace-ID"); traceID != "" {
		reqCtx.TraceID = traceID
	} else {
		reqCtx.TraceID = uuid.New().String()
	}

	return reqCtx
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetHandle extracts the acting user's handle from context
func GetHandle(ctx context.Context) string {
	if handle, ok := ctx.Value(HandleKey).(string); ok {
		return handle
	}
	return ""
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
