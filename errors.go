package kb

import (
	"errors"
	"fmt"
)

// Application error codes. These are not HTTP codes; they describe the kind
// of failure so callers can branch without string matching.
const (
	ECONFLICT    = "conflict"     // resource already exists
	EINTERNAL    = "internal"     // unexpected internal error
	EINVALID     = "invalid"      // validation failed
	ENOTFOUND    = "not_found"    // resource does not exist
	EUNAVAILABLE = "unavailable"  // external collaborator failed
)

// Error represents an application-specific error. It carries a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("kb error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an application error.
// Returns an empty string for nil and EINTERNAL for non-application errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an application
// error. Returns an empty string for nil and a generic message otherwise.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
