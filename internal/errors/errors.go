package errors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ErrInternalError   = "internal error"
	ErrNotFound        = "not found"
	ErrAlreadyExists   = "already exists"
	ErrInvalidArgument = "invalid argument"
	ErrFailedPrecond   = "failed precondition"
	ErrUnimplemented   = "unimplemented"
)

// DomainError is the error returned by the library along with the entity
// in which the error happened and the type of error.
type DomainError struct {
	ErrorType  string
	Entity     string
	Message    string
	WrappedErr error
}

func NewError(errType, entity, message string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   message,
	}
}

func InvalidArgument(entity, message string) error {
	return NewError(ErrInvalidArgument, entity, message)
}

func NotFound(entity, message string) error {
	return NewError(ErrNotFound, entity, message)
}

func AlreadyExists(entity, message string) error {
	return NewError(ErrAlreadyExists, entity, message)
}

func FailedPrecondition(entity, message string) error {
	return NewError(ErrFailedPrecond, entity, message)
}

func Unimplemented(entity, message string) error {
	return NewError(ErrUnimplemented, entity, message)
}

func InternalError(entity, message string, err error) error {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    message,
		WrappedErr: err,
	}
}

// Wrap keeps the cause of an error along with additional context
func Wrap(entity, message string, err error) error {
	return &DomainError{
		ErrorType:  typeFor(err),
		Entity:     entity,
		Message:    message,
		WrappedErr: err,
	}
}

// AddErrContext wraps err only when it is not already a DomainError,
// keeping the innermost domain context intact.
func AddErrContext(err error, entity, message string) error {
	var de *DomainError
	if errors.As(err, &de) {
		return err
	}
	return Wrap(entity, message, err)
}

func (e *DomainError) Error() string {
	if e.WrappedErr == nil {
		return fmt.Sprintf("%s for entity %s: %s", e.ErrorType, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s for entity %s: %s: %s", e.ErrorType, e.Entity, e.Message, e.WrappedErr)
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

func IsErrorType(err error, errType string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func typeFor(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType
	}
	return ErrInternalError
}

// MultiError collects errors across multiple steps and reports them as one.
type MultiError struct {
	Errors []error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{Errors: []error{errors.New(msg)}}
}

func (m *MultiError) Append(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

func (m *MultiError) Error() string {
	var msgs []string
	for _, e := range m.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, ":\n ")
}

// ToErr returns nil when nothing beyond the header message was collected.
func (m *MultiError) ToErr() error {
	if len(m.Errors) < 2 {
		return nil
	}
	return m
}
