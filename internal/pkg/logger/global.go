package logger

import (
	"context"
	"sync"

	"github.com/piresc/tradepost/internal/pkg/requestcontext"
	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance
// This should be called once during application startup
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
// If no logger is set, it returns a no-op logger
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		nop := zap.NewNop()
		globalLogger = &ZapLogger{Logger: nop, sugar: nop.Sugar()}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithFields returns a logger with additional fields using the global logger
func WithFields(fields map[string]interface{}) *zap.Logger {
	return GetGlobalLogger().WithFields(fields)
}

// contextFields pulls request correlation fields out of ctx
func contextFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		fields = append(fields, String("request_id", requestID))
	}
	if handle := requestcontext.GetHandle(ctx); handle != "" {
		fields = append(fields, String("handle", handle))
	}
	return fields
}

// InfoCtx logs an info message with request fields from ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, contextFields(ctx, fields)...)
}

// WarnCtx logs a warning message with request fields from ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, contextFields(ctx, fields)...)
}

// ErrorCtx logs an error message with request fields from ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, contextFields(ctx, fields)...)
}

// DebugCtx logs a debug message with request fields from ctx
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, contextFields(ctx, fields)...)
}
