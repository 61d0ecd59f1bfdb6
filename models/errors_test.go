package models

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want DBErrorKind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, DBErrorConstraint},
		{"not null violation wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23502"}), DBErrorConstraint},
		{"query canceled", &pgconn.PgError{Code: "57014"}, DBErrorTimeout},
		{"connection exception", &pgconn.PgError{Code: "08006"}, DBErrorConnection},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, DBErrorUnknown},
		{"deadline", fmt.Errorf("scan: %w", context.DeadlineExceeded), DBErrorTimeout},
		{"dial refused", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, DBErrorConnection},
		{"plain", errors.New("boom"), DBErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDBError(tt.err))
		})
	}
}

func TestErrorDatabase(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError(cause)

	assert.Equal(t, "DB insert failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, DBErrorUnknown, err.Kind)
}

func TestErrorValidation(t *testing.T) {
	err := &ErrorValidation{Fields: map[string][]string{
		"title":   {"title is a required field"},
		"content": {"content is a required field"},
	}}

	assert.Equal(t, "validation failed: content: content is a required field; title: title is a required field", err.Error())
	assert.Equal(t, map[string][]string{"url": {"bad"}}, NewValidationError("url", "bad").Fields)
}
