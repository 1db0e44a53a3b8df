package entity

import (
	"slices"
	"strings"
)

// Role selects the dashboard a staff account signs in to.
type Role string

const (
	RoleStaff   Role = "staff"   // kitchen and counter
	RoleManager Role = "manager" // management
)

var knownRoles = []Role{RoleStaff, RoleManager}

// ParseRole normalises s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// Roles is the role set carried by an access token.
type Roles []Role

// ContainsAny reports whether rs shares at least one role with roles.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(rs, func(held Role) bool {
		return slices.Contains(roles, held)
	})
}

// ToStrings renders the set for the JWT "roles" claim.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}

	return out
}

// RolesFromStrings reads a "roles" claim, dropping unknown and repeated entries.
func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok && !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}

	return roles
}
