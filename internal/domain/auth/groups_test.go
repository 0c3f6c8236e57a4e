package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGroupMembershipTable pins the full role-by-group membership matrix.
// Any edit to the named groups must be reflected here deliberately.
func TestGroupMembershipTable(t *testing.T) {
	expected := map[string]map[Role]bool{
		"AdminOnly": {
			RoleAdmin: true,
		},
		"StaffOnly": {
			RoleAdmin:            true,
			RoleCoordinator:      true,
			RoleTeacher:          true,
			RoleLibrarian:        true,
			RoleMediaCoordinator: true,
		},
		"TeacherOnly": {
			RoleAdmin:       true,
			RoleCoordinator: true,
			RoleTeacher:     true,
		},
		"StudentOnly": {
			RoleStudent: true,
		},
		"ParentOnly": {
			RoleParent: true,
		},
	}

	groups := NamedGroups()
	require.Len(t, groups, len(expected))

	for name, set := range groups {
		want, ok := expected[name]
		require.True(t, ok, "unexpected group %s", name)
		for _, role := range AllRoles {
			assert.Equal(t, want[role], RoleSatisfies(role, set),
				"group %s, role %s", name, role)
		}
	}
}

func TestRoleSatisfies_UnknownRole(t *testing.T) {
	assert.False(t, RoleSatisfies(Role("superuser"), GroupStaffOnly))
	assert.False(t, RoleSatisfies(RoleTeacher, RoleSet{}))
}

func TestVerifyGroups(t *testing.T) {
	assert.NoError(t, VerifyGroups())
}

func TestRoleSetString(t *testing.T) {
	assert.Equal(t, "admin, coordinator, teacher", GroupTeacherOnly.String())
	assert.Empty(t, RoleSet{}.String())
}
