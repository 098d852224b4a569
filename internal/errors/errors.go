// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// DatabaseError covers every way a read can fail: unreachable server,
// bad credentials, broken query. Error() is the driver message as-is so
// handlers can pass it straight to the caller.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Describe is the log form: operation, SQLSTATE when Postgres sent one, message.
func (e *DatabaseError) Describe() string {
	if code := SQLState(e.Err); code != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// NewDatabaseError wraps err. A nil err stays nil.
func NewDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DatabaseError{Op: op, Err: err}
}

// SQLState returns the Postgres error code carried by err, if any.
func SQLState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Describe formats any error for logs, using DatabaseError.Describe when possible.
func Describe(err error) string {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr.Describe()
	}
	return err.Error()
}
