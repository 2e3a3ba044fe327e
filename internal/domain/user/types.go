package user

type Role string

const (
	RoleShopper Role = "shopper"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleShopper, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// NewRole treats a missing role claim as a shopper.
func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleShopper, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
