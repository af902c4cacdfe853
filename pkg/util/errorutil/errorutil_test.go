package errorutil

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		require.Nil(t, ToDomainError(nil))
	})

	t.Run("domain errors are preserved", func(t *testing.T) {
		err := NewForbidden("not the owner")
		mapped := ToDomainError(err)
		require.Equal(t, "FORBIDDEN", mapped.Code)
		require.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
	})

	t.Run("fiber errors keep their status", func(t *testing.T) {
		mapped := ToDomainError(fiber.ErrNotFound)
		require.Equal(t, "NOT_FOUND", mapped.Code)
		require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)

		mapped = ToDomainError(fiber.NewError(http.StatusMethodNotAllowed, "nope"))
		require.Equal(t, "METHOD_NOT_ALLOWED", mapped.Code)
		require.Equal(t, http.StatusMethodNotAllowed, mapped.HTTPStatus)
		require.Equal(t, "nope", mapped.Message)
	})

	t.Run("missing rows map to not found", func(t *testing.T) {
		mapped := ToDomainError(pgx.ErrNoRows)
		require.Equal(t, "NOT_FOUND", mapped.Code)
		require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		mapped := ToDomainError(errors.New("boom"))
		require.Equal(t, "INTERNAL_ERROR", mapped.Code)
		require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	})
}
