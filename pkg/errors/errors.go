package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrBadRequest = errors.New("invalid request")
)

// FieldViolation is a single broken validation rule on a named payload field.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// HttpError carries the response code and a client-safe message; Err keeps the
// technical cause for the logs, Details the violation list for the client.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details ...interface{}) *HttpError {
	httpErr := &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
	}
	if len(details) > 0 {
		httpErr.Details = details[0]
	}
	return httpErr
}
