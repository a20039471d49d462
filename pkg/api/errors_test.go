package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kaiseki-io/kaiseki/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("cursor", "must be a non-negative integer"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "must be a non-negative integer",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "session not found",
		},
		{
			name:       "expired session maps to 410",
			err:        fmt.Errorf("wrapped: %w", services.ErrGone),
			expectCode: http.StatusGone,
			expectMsg:  "session expired",
		},
		{
			name:       "already exists maps to 409",
			err:        services.ErrAlreadyExists,
			expectCode: http.StatusConflict,
			expectMsg:  "session already exists",
		},
		{
			name:       "capacity maps to 503",
			err:        fmt.Errorf("wrapped: %w", services.ErrCapacity),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "intake capacity reached",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
