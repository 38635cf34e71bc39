package actor

import "github.com/google/uuid"

type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleCompany:
		return Role(s), true
	}
	return "", false
}

// Actor is the authenticated principal attached to a request by the auth
// middleware. Domain code receives it as an argument and never reads it
// from ambient state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
