package errs

import (
	"errors"
	"fmt"
)

// Kind — стабильный машиночитаемый код ошибки для API и логов.
type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindNotFound           Kind = "not_found"
	KindConflict           Kind = "conflict"
	KindExtractionTimeout  Kind = "extraction_timeout"
	KindExtractionRejected Kind = "extraction_rejected"
	KindTransport          Kind = "transport_error"
	KindInternal           Kind = "internal_error"
)

// Error carries a stable kind plus a human-readable message.
// Internal details (stack traces, wrapped causes) never reach the response body.
type Error struct {
	Kind    Kind   `json:"error"`
	Message string `json:"message"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New создаёт ошибку с заданным kind и сообщением.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap сохраняет причину для логов, не раскрывая её клиенту.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf returns the kind of err when it is (or wraps) an *Error,
// otherwise KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable: только транспортные сбои имеет смысл повторять.
func Retryable(err error) bool {
	return IsKind(err, KindTransport)
}
