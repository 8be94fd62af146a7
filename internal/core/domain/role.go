package domain

// Role is the closed set of staff roles. Every principal carries exactly one
// role, read from its stored assignment and never inferred from other data.
type Role string

const (
	RoleManagement Role = "management"
	RoleSales      Role = "sales"
	RoleSupport    Role = "support"
)

// ParseRole converts a raw string into a Role, reporting whether it is one of
// the known values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManagement, RoleSales, RoleSupport:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

func (r Role) String() string { return string(r) }
