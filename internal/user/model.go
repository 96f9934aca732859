package user

import "time"

// Roles understood by the access policy.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered organization member. The ID doubles as the
// login name; accounts are created out-of-band and never deleted here.
type User struct {
	ID           string
	Name         string
	Role         string
	Photo        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Identity is the authenticated view of a user carried by a session. It never
// holds credential material.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Photo  string `json:"photo"`
}

// Identity derives the session identity for the user. A blank display name
// falls back to "User <id>".
func (u User) Identity() Identity {
	name := u.Name
	if name == "" {
		name = "User " + u.ID
	}
	return Identity{UserID: u.ID, Name: name, Role: u.Role, Photo: u.Photo}
}
