package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/post-service/internal/domain"
)

func TestPrincipalFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns stored principal", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			StorePrincipal(c, &Principal{UserID: "user-1", Role: domain.RoleUser})

			principal, ok := PrincipalFromContext(c)
			require.True(t, ok)
			require.Equal(t, "user-1", principal.UserID)
			require.Equal(t, domain.RoleUser, principal.Role)

			subject, ok := SubjectFromContext(c)
			require.True(t, ok)
			require.Equal(t, "user-1", subject)
			return c.SendStatus(http.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("fails closed without a stored principal", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			principal, ok := PrincipalFromContext(c)
			require.False(t, ok)
			require.Nil(t, principal)

			subject, ok := SubjectFromContext(c)
			require.False(t, ok)
			require.Empty(t, subject)
			return c.SendStatus(http.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("mistyped value yields no principal", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			c.Locals(principalKey, "not-a-principal")

			_, ok := PrincipalFromContext(c)
			require.False(t, ok)
			return c.SendStatus(http.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
