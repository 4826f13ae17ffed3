package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError describes one rejected attribute of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type Error struct {
	Status int
	Code   string
	Entity string
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// BadRequest builds the 400 error raised when a client sends an invalid entity state.
func BadRequest(entity, code, msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Entity: entity, Err: errors.New(msg)}
}

// Validation builds a 400 carrying per-field failures.
func Validation(entity string, fields []FieldError) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   "validation",
		Entity: entity,
		Fields: fields,
		Err:    errors.New("method argument not valid"),
	}
}
