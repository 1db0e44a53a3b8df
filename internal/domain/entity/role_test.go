package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Manager ")
	assert.True(t, ok)
	assert.Equal(t, RoleManager, role)

	_, ok = ParseRole("courier")
	assert.False(t, ok)
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"staff", "admin", "STAFF", "manager"})

	assert.Equal(t, Roles{RoleStaff, RoleManager}, roles)
	assert.Equal(t, []string{"staff", "manager"}, roles.ToStrings())
}

func TestRoles_ContainsAny(t *testing.T) {
	held := Roles{RoleStaff}

	assert.True(t, held.ContainsAny(RoleStaff, RoleManager))
	assert.False(t, held.ContainsAny(RoleManager))
	assert.False(t, Roles{}.ContainsAny(RoleStaff))
}
