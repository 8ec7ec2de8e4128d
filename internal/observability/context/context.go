// Package context carries request-scoped correlation identifiers.
package context

import "context"

type requestIDKey struct{}

type institutionIDKey struct{}

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id, or "" if unset.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(requestIDKey{}).(string); ok {
		return value
	}
	return ""
}

// WithInstitutionID stores the institution id in the context.
func WithInstitutionID(ctx context.Context, institutionID string) context.Context {
	if institutionID == "" {
		return ctx
	}
	return context.WithValue(ctx, institutionIDKey{}, institutionID)
}

// InstitutionIDFromContext returns the institution id, or "" if unset.
func InstitutionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(institutionIDKey{}).(string); ok {
		return value
	}
	return ""
}
