package server

import "context"

type contextKey string

const requestIDContextKey contextKey = "request_id"

// SetRequestID сохраняет идентификатор запроса в контексте
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// GetRequestID извлекает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey).(string)
	return id, ok
}
