package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/post-service/internal/domain"
	apperrors "github.com/spec-kit/post-service/pkg/util/errorutil"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Allow lets the request reach the handler.
	Allow Decision = iota
	// DenyInsufficientRole rejects a caller whose role is not in the
	// operation's allowed set (or is not a recognized role at all).
	DenyInsufficientRole
	// DenyNotOwner rejects a caller who passed the role check but does
	// not own the resource being acted on.
	DenyNotOwner
)

// OwnershipCheck reports whether the principal owns the resource an
// operation is scoped to. It is bound to a specific resource by the
// caller, typically as a closure over a repository lookup result.
type OwnershipCheck func(p *Principal) bool

// OwnerLookup resolves the owning identity of a resource.
type OwnerLookup func(ctx context.Context, resourceID string) (string, error)

// Decide applies the two-axis access model: the principal's role must be
// a member of allowedRoles, and when an ownership check is supplied it
// must pass unless the principal is an admin. Unknown roles and empty
// allowed sets always deny.
func Decide(p *Principal, allowedRoles []domain.Role, check OwnershipCheck) Decision {
	if p == nil || !p.Role.Valid() {
		return DenyInsufficientRole
	}

	member := false
	for _, role := range allowedRoles {
		if role == p.Role {
			member = true
			break
		}
	}
	if !member {
		return DenyInsufficientRole
	}

	if check == nil {
		return Allow
	}
	if p.Role == domain.RoleAdmin {
		return Allow
	}
	if check(p) {
		return Allow
	}
	return DenyNotOwner
}

// RequireRoles guards a route with a static allowed-roles set.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if Decide(principal, allowed, nil) != Allow {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireOwnership guards a route scoped to the caller's own resource.
// The owner of the resource named by the :id parameter is resolved via
// lookup and compared against the principal's identity; admins bypass
// the comparison.
func RequireOwnership(lookup OwnerLookup, allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}

		// Resolve ownership lazily: admins and role failures never
		// trigger the lookup.
		if decision := Decide(principal, allowed, nil); decision != Allow {
			return apperrors.NewForbidden("insufficient role")
		}
		if principal.Role == domain.RoleAdmin {
			return c.Next()
		}

		ownerID, err := lookup(c.UserContext(), c.Params("id"))
		if err != nil {
			return apperrors.MapError(err)
		}

		check := OwnershipCheck(func(p *Principal) bool { return p.UserID == ownerID })
		if Decide(principal, allowed, check) != Allow {
			return apperrors.NewForbidden("not the owner")
		}
		return c.Next()
	}
}
