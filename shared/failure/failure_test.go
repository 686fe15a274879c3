package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"pororo/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestNew_MatchesWithErrorsIs(t *testing.T) {
	errSentinel := failure.New(http.StatusConflict, "sold out")
	wrapped := fmt.Errorf("allocating room: %w", errSentinel)

	assert.ErrorIs(t, wrapped, errSentinel)
	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request",
			err:     failure.BadRequest(errors.New("validation failed")),
			code:    http.StatusBadRequest,
			message: "validation failed",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("custom bad request"),
			code:    http.StatusBadRequest,
			message: "custom bad request",
		},
		{
			name:    "unprocessable entity",
			err:     failure.UnprocessableEntity("dates out of order"),
			code:    http.StatusUnprocessableEntity,
			message: "dates out of order",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "not found",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("no rooms left"),
			code:    http.StatusConflict,
			message: "no rooms left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if assert.ErrorAs(t, tt.err, &f) {
				assert.Equal(t, tt.code, f.Code)
				assert.Equal(t, tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, failure.GetCode(failure.NotFound("x")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}
