package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for the lifetime of one
// request. It is derived from a validated token and never persisted.
type Principal struct {
	UserID string
	Role   domain.Role
}

// StorePrincipal attaches the principal to the request context.
func StorePrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}

// PrincipalFromContext retrieves the authenticated caller. It fails
// closed: absent or mistyped values yield no principal, never an
// anonymous default.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

// SubjectFromContext narrows the principal down to its identity, for
// handlers that only need to know who is calling.
func SubjectFromContext(c *fiber.Ctx) (string, bool) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return "", false
	}
	return principal.UserID, true
}
