package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAppErrorError(t *testing.T) {
	err := NotFound("account")
	assert.Equal(t, "NOT_FOUND: account not found", err.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := stderrors.New("socket closed")
	err := StoreUnavailable("insert accounts: document store unavailable", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, cause, err.Unwrap())
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{
			name:     "matching code",
			err:      InvalidArgument("bad input"),
			code:     CodeInvalidArgument,
			expected: true,
		},
		{
			name:     "different code",
			err:      InvalidArgument("bad input"),
			code:     CodeNotFound,
			expected: false,
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("outer: %w", ConstraintViolation("duplicate email", nil)),
			code:     CodeConstraintViolation,
			expected: true,
		},
		{
			name:     "plain error",
			err:      stderrors.New("plain"),
			code:     CodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     CodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Is(tt.err, tt.code))
		})
	}
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name: "duplicate key becomes constraint violation",
			err: mongo.WriteException{
				WriteErrors: mongo.WriteErrors{
					{Index: 0, Code: 11000, Message: "E11000 duplicate key error"},
				},
			},
			expectedCode: CodeConstraintViolation,
		},
		{
			name:         "deadline exceeded becomes store unavailable",
			err:          context.DeadlineExceeded,
			expectedCode: CodeStoreUnavailable,
		},
		{
			name:         "unknown error becomes internal",
			err:          stderrors.New("bson decode failure"),
			expectedCode: CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStore("insert accounts", tt.err)
			assert.True(t, Is(err, tt.expectedCode), "expected code %s, got %v", tt.expectedCode, err)

			var appErr *AppError
			assert.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, tt.err, appErr.Err, "original error should stay attached")
		})
	}
}

func TestFromStoreNil(t *testing.T) {
	assert.NoError(t, FromStore("insert accounts", nil))
}
