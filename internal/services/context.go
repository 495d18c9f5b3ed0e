package services

import "context"

type contextKey string

const (
	searchIDKey contextKey = "search_id"
	domainKey   contextKey = "domain"
)

// WithSearchID annotates context with a search correlation identifier.
func WithSearchID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, searchIDKey, id)
}

// SearchIDFromContext extracts the correlation identifier if present.
func SearchIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(searchIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithDomain annotates context with the content domain being searched.
func WithDomain(ctx context.Context, domain string) context.Context {
	if domain == "" {
		return ctx
	}
	return context.WithValue(ctx, domainKey, domain)
}

// DomainFromContext returns the content domain if present.
func DomainFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(domainKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
