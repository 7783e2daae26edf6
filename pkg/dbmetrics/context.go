package dbmetrics

import (
	"context"
)

type contextKey int

const executorKey contextKey = iota

// WithExecutor кладет исполнитель запросов (обычно открытую транзакцию)
// в контекст. Репозитории подхватывают его через GetExecutor.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey, exec)
}

// GetExecutor возвращает исполнитель из контекста, если transaction manager
// положил туда транзакцию, иначе fallback (обычное подключение репозитория).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли контекст внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(DBExecutor)
	return ok
}
