package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor кладет executor (обычно активную транзакцию) в контекст
// Репозитории через GetExecutor будут использовать его вместо обычного соединения
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor возвращает executor из контекста или fallback, если его нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(DBExecutor)
	return ok
}
