package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
)

// BusinessError is an expected, recoverable failure of an operation.
// Code is the stable machine-readable identifier sent to clients.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func newBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return newBusiness(KindNotFound, code, message)
}

func ErrForbidden(code, message string) error {
	return newBusiness(KindForbidden, code, message)
}

func ErrConflict(code, message string) error {
	return newBusiness(KindConflict, code, message)
}

func ErrValidation(code, message string) error {
	return newBusiness(KindValidation, code, message)
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error, or "" for anything else.
func KindOf(err error) Kind {
	if be, ok := AsBusiness(err); ok {
		return be.Kind
	}
	return ""
}
