// Package errors defines request errors that carry the HTTP status they map
// to. Handlers attach one with c.Error and the error middleware renders it.
package errors

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// ErrRateLimit is shared by every throttled surface
var ErrRateLimit = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")

func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}
