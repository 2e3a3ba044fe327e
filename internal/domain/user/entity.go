package user

import "strings"

// Identity is the authenticated caller as reported by the identity service.
type Identity struct {
	ID    string
	Email Email
	Role  Role
	Staff bool
}

// StaffPolicy decides who may use the back office: a staff or admin role claim,
// or an email on the configured allow list.
type StaffPolicy struct {
	emails map[string]struct{}
}

func NewStaffPolicy(emails []string) StaffPolicy {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return StaffPolicy{emails: set}
}

func (p StaffPolicy) IsStaff(email Email, role Role) bool {
	if role == RoleStaff || role == RoleAdmin {
		return true
	}
	_, ok := p.emails[email.Value()]
	return ok
}

func NewIdentity(id string, email Email, role Role, policy StaffPolicy) Identity {
	return Identity{
		ID:    id,
		Email: email,
		Role:  role,
		Staff: policy.IsStaff(email, role),
	}
}
