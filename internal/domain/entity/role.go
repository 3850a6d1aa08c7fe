package entity

import "slices"

// Role is the kind of account behind a session.
type Role string

const (
	// RoleCustomer is a company buying for itself.
	RoleCustomer Role = "customer"
	// RoleAgent is a sales agent ordering for client companies.
	RoleAgent Role = "agent"
	// RoleAdmin is a back-office account.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role the storefront knows.
func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// knownRoles is ordered by precedence, strongest first.
var knownRoles = Roles{RoleAdmin, RoleAgent, RoleCustomer} //nolint:gochecknoglobals

// Roles is the role list carried by an access token.
type Roles []Role

// ParseRoles keeps the recognised entries of raw, in order.
func ParseRoles(raw []string) Roles {
	parsed := make(Roles, 0, len(raw))
	for _, s := range raw {
		if r := Role(s); r.IsValid() {
			parsed = append(parsed, r)
		}
	}

	return parsed
}

// Primary picks the strongest role of rs. A token without any recognised
// role belongs to a customer.
func (rs Roles) Primary() Role {
	for _, r := range knownRoles {
		if slices.Contains(rs, r) {
			return r
		}
	}

	return RoleCustomer
}
