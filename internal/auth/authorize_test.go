package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/post-service/internal/domain"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	anyRole := []domain.Role{domain.RoleAdmin, domain.RoleUser}
	admin := &Principal{UserID: "admin-1", Role: domain.RoleAdmin}
	user := &Principal{UserID: "user-1", Role: domain.RoleUser}

	owns := func(p *Principal) bool { return p.UserID == "user-1" }
	notOwns := func(p *Principal) bool { return false }

	cases := []struct {
		name      string
		principal *Principal
		allowed   []domain.Role
		check     OwnershipCheck
		want      Decision
	}{
		{"user in allowed set, no ownership", user, anyRole, nil, Allow},
		{"admin in allowed set, no ownership", admin, anyRole, nil, Allow},
		{"user not in admin-only set", user, []domain.Role{domain.RoleAdmin}, nil, DenyInsufficientRole},
		{"owner passes ownership check", user, anyRole, owns, Allow},
		{"non-owner fails ownership check", user, anyRole, notOwns, DenyNotOwner},
		{"admin bypasses failing ownership check", admin, anyRole, notOwns, Allow},
		{"empty allowed set always denies", admin, nil, nil, DenyInsufficientRole},
		{"empty allowed set denies despite ownership", user, []domain.Role{}, owns, DenyInsufficientRole},
		{"unknown role denies", &Principal{UserID: "x", Role: "SUPERUSER"}, anyRole, nil, DenyInsufficientRole},
		{"nil principal denies", nil, anyRole, nil, DenyInsufficientRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Decide(tc.principal, tc.allowed, tc.check))
		})
	}
}
