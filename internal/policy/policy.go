// Package policy holds the authorization predicates. They are pure functions
// evaluated on every request; callers never cache their results.
package policy

import "github.com/vinayak-mandal/finflow/internal/user"

// CanEdit reports whether the identity may edit or delete a record owned by
// ownerID: admins may touch anything, members only their own records.
func CanEdit(identity user.Identity, ownerID string) bool {
	return identity.Role == user.RoleAdmin || identity.UserID == ownerID
}

// CanViewAdminPanel reports whether the identity may reach admin-only routes.
func CanViewAdminPanel(identity user.Identity) bool {
	return identity.Role == user.RoleAdmin
}
