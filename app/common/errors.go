package common

import (
	"fmt"
	"net/http"
)

// UserVisibleError carries a message that is safe to show to API clients,
// along with the HTTP status code it maps to.
type UserVisibleError struct {
	HttpCode int
	Message  string
}

func (e *UserVisibleError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.HttpCode, e.Message)
}

func NewUserVisibleError(httpCode int, message string) *UserVisibleError {
	return &UserVisibleError{
		HttpCode: httpCode,
		Message:  message,
	}
}

func NewBadRequest(format string, args ...any) *UserVisibleError {
	return NewUserVisibleError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func NewNotFound(format string, args ...any) *UserVisibleError {
	return NewUserVisibleError(http.StatusNotFound, fmt.Sprintf(format, args...))
}

func WrapErrorForResponse(err error, message string) error {
	if e, ok := err.(*UserVisibleError); ok {
		return &UserVisibleError{
			HttpCode: e.HttpCode,
			Message:  fmt.Sprintf("%s: %s", message, e.Message),
		}
	}
	return err
}
