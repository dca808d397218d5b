package errors_test

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/chrono/internal/errors"
)

func TestDomainError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		t.Run("formats type entity and message", func(t *testing.T) {
			err := errors.InvalidArgument("interval", "endpoints must differ")
			assert.Equal(t, "invalid argument for entity interval: endpoints must differ", err.Error())
		})
		t.Run("includes the wrapped cause", func(t *testing.T) {
			cause := goerrors.New("boom")
			err := errors.InternalError("relation", "evaluation failed", cause)
			assert.ErrorContains(t, err, "boom")
			assert.ErrorIs(t, err, cause)
		})
	})

	t.Run("IsErrorType", func(t *testing.T) {
		t.Run("matches the error type", func(t *testing.T) {
			err := errors.Unimplemented("relation", "composition is not implemented")
			assert.True(t, errors.IsErrorType(err, errors.ErrUnimplemented))
			assert.False(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		})
		t.Run("sees through wrapping", func(t *testing.T) {
			inner := errors.FailedPrecondition("interval_set", "set is not ordered disjoint")
			err := errors.Wrap("cli", "unable to load set", inner)
			assert.True(t, errors.IsErrorType(err, errors.ErrFailedPrecond))
		})
		t.Run("is false for foreign errors", func(t *testing.T) {
			assert.False(t, errors.IsErrorType(goerrors.New("plain"), errors.ErrInternalError))
		})
	})

	t.Run("AddErrContext", func(t *testing.T) {
		t.Run("keeps an existing domain error untouched", func(t *testing.T) {
			inner := errors.InvalidArgument("span", "invalid day")
			err := errors.AddErrContext(inner, "cli", "while parsing arguments")
			assert.Equal(t, inner, err)
		})
		t.Run("wraps foreign errors", func(t *testing.T) {
			err := errors.AddErrContext(goerrors.New("plain"), "cli", "while parsing arguments")
			assert.ErrorContains(t, err, "while parsing arguments")
		})
	})

	t.Run("MultiError", func(t *testing.T) {
		t.Run("ToErr is nil when nothing was appended", func(t *testing.T) {
			me := errors.NewMultiError("loading set files")
			me.Append(nil)
			assert.NoError(t, me.ToErr())
		})
		t.Run("collects appended errors", func(t *testing.T) {
			me := errors.NewMultiError("loading set files")
			me.Append(goerrors.New("a.yaml missing"))
			me.Append(goerrors.New("b.yaml malformed"))
			err := me.ToErr()
			assert.Error(t, err)
			assert.ErrorContains(t, err, "a.yaml missing")
			assert.ErrorContains(t, err, "b.yaml malformed")
		})
	})
}
