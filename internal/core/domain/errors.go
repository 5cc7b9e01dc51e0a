package domain

import "errors"

// ErrorKind tags a domain error so the HTTP layer can map it to a status
// code through a static table instead of inspecting error strings.
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindInvalidArgument
	ErrorKindNotFound
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) error {
	return &Error{Kind: ErrorKindInvalidArgument, Message: message}
}

func NewNotFound(message string) error {
	return &Error{Kind: ErrorKindNotFound, Message: message}
}

// KindOf returns the kind of err, or ErrorKindUnknown when err is not a
// domain error.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ErrorKindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == ErrorKindNotFound
}
