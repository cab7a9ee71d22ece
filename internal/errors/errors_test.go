package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", NewValidationError("missing"), http.StatusBadRequest, "VALIDATION_ERROR", "missing"},
		{"conflict", NewConflictError("taken"), http.StatusConflict, "CONFLICT", "taken"},
		{"auth", NewAuthError("nope"), http.StatusUnauthorized, "UNAUTHORIZED", "nope"},
		{"not found", NewNotFoundError("gone"), http.StatusNotFound, "NOT_FOUND", "gone"},
		{"wrapped", fmt.Errorf("login: %w", NewAuthError("nope")), http.StatusUnauthorized, "UNAUTHORIZED", "nope"},
		{"unknown", errors.New("pq: duplicate key value violates unique constraint"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)

			resp := httpErr.ToErrorResponse()
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Msg)
		})
	}
}

func TestSentinelIdentity(t *testing.T) {
	sentinel := NewAuthError("invalid")
	wrapped := fmt.Errorf("ctx: %w", sentinel)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, NewAuthError("invalid"))
}
