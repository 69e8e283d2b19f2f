package errors

import "fmt"

var (
	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("invalid request")

	// Upstream backend
	ErrUpstreamUnavailable = fmt.Errorf("backend is unavailable")

	// Edit slot
	ErrSaveInFlight   = fmt.Errorf("a save is already in progress for this field")
	ErrNothingStaged  = fmt.Errorf("no field is being edited")
	ErrNoConfirmation = fmt.Errorf("no pending confirmation")
)

// HttpError carries the status code and user-facing message for a failed
// request, plus the underlying cause for logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// InvalidInputError is a local validation failure. It never reaches the
// upstream backend.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
