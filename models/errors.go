package models

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorValidation is returned when a submission fails validation. Fields
// maps the JSON field name to its messages.
type ErrorValidation struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ErrorValidation {
	return &ErrorValidation{Fields: map[string][]string{field: {message}}}
}

func (e *ErrorValidation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type DBErrorKind string

const (
	DBErrorConnection DBErrorKind = "connection"
	DBErrorConstraint DBErrorKind = "constraint"
	DBErrorTimeout    DBErrorKind = "timeout"
	DBErrorUnknown    DBErrorKind = "unknown"
)

// ErrorDatabase wraps a persistence failure with its classified kind.
type ErrorDatabase struct {
	Kind DBErrorKind
	Err  error
}

func NewDatabaseError(err error) *ErrorDatabase {
	return &ErrorDatabase{Kind: ClassifyDBError(err), Err: err}
}

func (e *ErrorDatabase) Error() string {
	return fmt.Sprintf("DB insert failed: %v", e.Err)
}

func (e *ErrorDatabase) Unwrap() error {
	return e.Err
}

// ClassifyDBError sorts a driver error into a DBErrorKind.
func ClassifyDBError(err error) DBErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return DBErrorTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "57014":
			return DBErrorTimeout
		case strings.HasPrefix(pgErr.Code, "23"):
			return DBErrorConstraint
		case strings.HasPrefix(pgErr.Code, "08"):
			return DBErrorConnection
		}
		return DBErrorUnknown
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return DBErrorConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return DBErrorTimeout
		}
		return DBErrorConnection
	}

	return DBErrorUnknown
}
