package shared

import "net/http"

// Kind enumerates the closed set of failure categories the API reports.
// Every kind maps to exactly one HTTP status code; anything outside this
// set is an unexpected fault and surfaces as a generic 500.
type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

var kindStatus = map[Kind]int{
	KindBadRequest:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
}

var kindMessage = map[Kind]string{
	KindBadRequest:   "invalid request data",
	KindUnauthorized: "authorization required",
	KindForbidden:    "access denied",
	KindNotFound:     "resource not found",
	KindConflict:     "already exists",
}

// Error is a typed failure carrying its wire status code. It is the only
// vocabulary services, repositories and middleware use to signal failures;
// the HTTP layer converts it to a response in exactly one place.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by kind so that two failures of the same kind compare
// equal regardless of their message text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, message string) *Error {
	if message == "" {
		message = kindMessage[kind]
	}
	return &Error{Kind: kind, StatusCode: kindStatus[kind], Message: message}
}

// BadRequest reports malformed input reaching a handler.
func BadRequest(message string) *Error {
	return newError(KindBadRequest, message)
}

// Unauthorized reports a missing, invalid or expired credential.
func Unauthorized(message string) *Error {
	return newError(KindUnauthorized, message)
}

// Forbidden reports an authenticated principal acting on a resource it
// does not own.
func Forbidden(message string) *Error {
	return newError(KindForbidden, message)
}

// NotFound reports an identifier that does not resolve to a resource.
func NotFound(message string) *Error {
	return newError(KindNotFound, message)
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error {
	return newError(KindConflict, message)
}
