package lookup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "pgx_undefined_table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: "schema"},
		{name: "pgx_connection", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: "connection"},
		{name: "pgx_canceled", err: fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.QueryCanceled}), want: "query_canceled"},
		{name: "pq_out_of_memory", err: &pq.Error{Code: pq.ErrorCode(pgerrcode.OutOfMemory)}, want: "resources"},
		{name: "pq_syntax", err: &pq.Error{Code: pq.ErrorCode(pgerrcode.SyntaxError)}, want: "query"},
		{name: "context", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: "context"},
		{name: "plain", err: errors.New("broken pipe"), want: "transport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyPgError(tt.err))
		})
	}
}

func TestCustomerQuery(t *testing.T) {
	assert.Contains(t, customerQuery(MatchPattern), "email ILIKE $1 LIMIT 1")
	assert.Contains(t, customerQuery(MatchExact), "lower(email) = $1 LIMIT 1")
	assert.Equal(t, customerQuery(MatchPattern), customerQuery(""))
}
