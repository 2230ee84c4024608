package domain

// Role represents a player's secret role in a game
type Role string

const (
	RoleCitizen Role = "CITIZEN"
	RoleInsider Role = "INSIDER"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsInsider returns true if this role is the insider
func (r Role) IsInsider() bool {
	return r == RoleInsider
}
