package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	name string
}

func (f *fakeExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestGetExecutorFallsBackWithoutTransaction(t *testing.T) {
	fallback := &fakeExecutor{name: "pool"}

	got := GetExecutor(context.Background(), fallback)

	assert.Same(t, fallback, got)
	assert.False(t, IsInTransaction(context.Background()))
}

func TestGetExecutorPrefersContextExecutor(t *testing.T) {
	fallback := &fakeExecutor{name: "pool"}
	tx := &fakeExecutor{name: "tx"}

	ctx := WithExecutor(context.Background(), tx)

	assert.Same(t, tx, GetExecutor(ctx, fallback))
	assert.True(t, IsInTransaction(ctx))
}

func TestOperationLabel(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"SELECT id FROM reservations", "select"},
		{"  insert into reservations values ($1)", "insert"},
		{"DELETE FROM reservations WHERE id = $1", "delete"},
		{"", "unknown"},
		{"   ", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, operation(tt.query), "query: %q", tt.query)
	}
}
