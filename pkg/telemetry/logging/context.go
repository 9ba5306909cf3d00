package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for outbound call correlation IDs.
	RequestIDKey contextKey = "request_id"

	// IntegrationKey is the context key for the integration slot name.
	IntegrationKey contextKey = "integration"

	// CountryKey is the context key for the deployment's country code.
	CountryKey contextKey = "country"
)

// WithRequestID adds a call correlation ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the call correlation ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithIntegration adds the integration slot name to the context.
func WithIntegration(ctx context.Context, slot string) context.Context {
	return context.WithValue(ctx, IntegrationKey, slot)
}

// GetIntegration retrieves the integration slot name from the context.
func GetIntegration(ctx context.Context) string {
	if slot, ok := ctx.Value(IntegrationKey).(string); ok {
		return slot
	}
	return ""
}

// WithCountry adds the deployment's country code to the context.
func WithCountry(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, CountryKey, code)
}

// GetCountry retrieves the deployment's country code from the context.
func GetCountry(ctx context.Context) string {
	if code, ok := ctx.Value(CountryKey).(string); ok {
		return code
	}
	return ""
}

// extractContextFields extracts the known fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if slot := GetIntegration(ctx); slot != "" {
		fields = append(fields, "integration", slot)
	}
	if code := GetCountry(ctx); code != "" {
		fields = append(fields, "country", code)
	}

	return fields
}
