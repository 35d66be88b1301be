package apperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Kind classifies a failure so handlers can translate it to a status code
// without matching on concrete error types.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindUnauthorized
	KindInvalidCredential
	KindConflict
)

// Error carries a Kind alongside a message. Errors are raised at the point
// of detection and propagate unhandled up to Write; nothing retries.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or KindUnknown if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MissingField reports a required field that was absent from a request.
func MissingField(name string) error {
	return Newf(KindInvalidInput, "%s is required", name)
}

func statusFor(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized, KindInvalidCredential:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write is the boundary translator: it maps err's kind to an HTTP status
// and writes the message as the response body.
func Write(w http.ResponseWriter, err error) {
	status := statusFor(KindOf(err))
	if status == http.StatusInternalServerError {
		log.Printf("[apperr] unhandled error: %v", err)
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
