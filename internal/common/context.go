package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeyAccessCode contextKey = "access_code"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithAccessCode adds the caller's access code to the context
func WithAccessCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ContextKeyAccessCode, code)
}

// AccessCodeFromContext extracts the access code from context
func AccessCodeFromContext(ctx context.Context) string {
	if code, ok := ctx.Value(ContextKeyAccessCode).(string); ok {
		return code
	}
	return ""
}
