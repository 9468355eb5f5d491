package models

// Role is the closed set of account roles. Route allow-lists are declared as
// slices of these values and checked by the auth middleware.
type Role string

const (
	RoleStudent     Role = "student"
	RoleCoordinator Role = "coordinator"
	RoleAdmin       Role = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleStudent, RoleCoordinator, RoleAdmin:
		return true
	}
	return false
}
