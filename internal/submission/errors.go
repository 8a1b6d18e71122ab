package submission

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind = errors.New("unknown record kind")
	ErrEmptyBatch  = errors.New("empty batch")
)

// ErrorKind classifies why a single field was rejected.
type ErrorKind string

const (
	InvalidNumericField ErrorKind = "InvalidNumericField"
	InvalidDate         ErrorKind = "InvalidDate"
	RatingOutOfRange    ErrorKind = "RatingOutOfRange"
	MissingField        ErrorKind = "MissingField"
	InvalidChoice       ErrorKind = "InvalidChoice"
)

// FieldError reports one rejected field of a form row.
type FieldError struct {
	Field string
	Kind  ErrorKind
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

func (e *FieldError) Unwrap() error { return e.Err }

// RowValidationFailed rejects a whole batch because of one row. Row is 1-based.
type RowValidationFailed struct {
	Row   int
	Field string
	Err   *FieldError
}

func (e *RowValidationFailed) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowValidationFailed) Unwrap() error { return e.Err }

// Kind returns the field error kind of the failed row.
func (e *RowValidationFailed) Kind() ErrorKind {
	if e.Err == nil {
		return ""
	}
	return e.Err.Kind
}
