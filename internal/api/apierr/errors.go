package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mcoot/edgeguard/internal/api/response"
	"github.com/mcoot/edgeguard/internal/model"
)

// Error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Body is the error payload returned to clients
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the top-level JSON shape of every error response
type Envelope struct {
	Error Body `json:"error"`
}

// Error is an error together with the status it is reported with.
// The CLI client decodes responses back into this type.
type Error struct {
	Status int
	Body
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// HasCode reports whether err is an *Error with the given code
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

var sentinels = []struct {
	err    error
	status int
	body   Body
}{
	{model.ErrSessionNotFound, http.StatusNotFound, Body{CodeSessionNotFound, "Session not found"}},
}

// From maps err onto an *Error, falling back to a 500
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return &Error{Status: s.status, Body: s.body}
		}
	}
	return NewInternalError()
}

// Write writes err as a JSON error response
func Write(w http.ResponseWriter, err error) {
	e := From(err)
	response.JSON(w, e.Status, Envelope{Error: e.Body})
}

func NewInvalidRequestError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Body: Body{CodeInvalidRequest, message}}
}

func NewNotFoundError() *Error {
	return &Error{Status: http.StatusNotFound, Body: Body{CodeNotFound, "Not found"}}
}

func NewInternalError() *Error {
	return &Error{Status: http.StatusInternalServerError, Body: Body{CodeInternalError, "Internal server error"}}
}
