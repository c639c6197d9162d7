package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a malformed or missing request field. It never reaches a collaborator.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a referenced company, document or analysis that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// StoreError reports a failure of the database or blob store. It is always fatal to the request.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func validationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// lookupError converts a repository lookup error into NotFoundError or StoreError.
func lookupError(resource, id, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return &StoreError{Op: op, Err: err}
}

// validID reports whether id can name a stored row. Malformed IDs are treated as not found.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
