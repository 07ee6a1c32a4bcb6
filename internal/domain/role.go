package domain

// Role enumerates the account kinds that can hold a portal session.
type Role string

const (
	RoleCompany Role = "company"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// Roles lists the closed set of recognized roles.
var Roles = []Role{RoleCompany, RoleStudent, RoleFaculty}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCompany, RoleStudent, RoleFaculty:
		return true
	}
	return false
}
