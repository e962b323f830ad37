package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrSchema       = errors.New("schema mismatch")
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
	ErrDispatch     = errors.New("dispatch failed")
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	cause   error
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the taxonomy sentinel or underlying error for errors.Is.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
		cause:   ErrNotFound,
	}
}

// Validation reports every offending field at once. messages, when given,
// are joined into the error text; otherwise a "<field> is required" line is
// produced per field.
func Validation(fields []string, messages ...string) error {
	if len(messages) == 0 {
		for _, field := range fields {
			messages = append(messages, field+" is required")
		}
	}

	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: strings.Join(messages, "; "),
		Fields:  fields,
		cause:   ErrValidation,
	}
}

// Schema returns a new Failure for tabular input missing required columns.
func Schema(missing []string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "missing required columns: " + strings.Join(missing, ", "),
		Fields:  missing,
		cause:   ErrSchema,
	}
}

// StorageRead returns a new Failure for an unreachable storage medium.
func StorageRead(err error) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: fmt.Sprintf("%s: %v", ErrStorageRead, err),
		cause:   fmt.Errorf("%w: %w", ErrStorageRead, err),
	}
}

// StorageWrite returns a new Failure for an unwritable storage medium.
func StorageWrite(err error) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("%s: %v", ErrStorageWrite, err),
		cause:   fmt.Errorf("%w: %w", ErrStorageWrite, err),
	}
}

// Dispatch returns a new Failure for a webhook call that did not succeed.
// status is zero when no HTTP response was received.
func Dispatch(status int, message string) error {
	msg := message
	if status != 0 {
		msg = fmt.Sprintf("status %d: %s", status, message)
	}

	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
		cause:   ErrDispatch,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the offending fields carried by a validation or schema failure.
func GetFields(err error) []string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}
