package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewForbidden("Account not approved")

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
	assert.Equal(t, "Account not approved", mapped.Message)
}

func TestToDomainErrorUnwrapsWrappedDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NewUnauthorized("Invalid token"))

	mapped := ToDomainError(wrapped)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
	assert.Equal(t, "Invalid token", mapped.Message)
}

func TestToDomainErrorMapsFiberErrors(t *testing.T) {
	mapped := ToDomainError(fiber.ErrMethodNotAllowed)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusMethodNotAllowed, mapped.HTTPStatus)
}

func TestToDomainErrorMapsMissingRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("loading company: %w", pgx.ErrNoRows))
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorHidesUnknownCauses(t *testing.T) {
	cause := errors.New("pq: connection reset")

	mapped := ToDomainError(cause)
	require.NotNil(t, mapped)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.Equal(t, "Internal server error", mapped.Message)
	assert.ErrorIs(t, mapped, cause)
}

func TestUnauthorizedFromKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("token signature is invalid")
	err := NewUnauthorizedFrom("Invalid or expired token", cause)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Invalid or expired token", domainErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
