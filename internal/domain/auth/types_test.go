package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles {
		parsed, ok := ParseRole(string(role))
		require.True(t, ok, "role %s", role)
		assert.Equal(t, role, parsed)
	}

	for _, invalid := range []string{"", "Admin", "superuser", "teacher "} {
		_, ok := ParseRole(invalid)
		assert.False(t, ok, "input %q", invalid)
	}
}

func TestSnapshotHasAnyRole(t *testing.T) {
	allowed := RoleSet{RoleTeacher, RoleLibrarian}

	assert.True(t, Snapshot{Authenticated: true, Role: RoleTeacher}.HasAnyRole(allowed))
	assert.False(t, Snapshot{Authenticated: true, Role: RoleStudent}.HasAnyRole(allowed))

	// Loading and unauthenticated snapshots never satisfy membership.
	assert.False(t, Snapshot{Loading: true, Authenticated: true, Role: RoleTeacher}.HasAnyRole(allowed))
	assert.False(t, Snapshot{Role: RoleTeacher}.HasAnyRole(allowed))
}

func TestSessionSnapshot(t *testing.T) {
	snap := SessionSnapshot(Session{ID: "s1", Role: RoleCoordinator})
	assert.True(t, snap.Authenticated)
	assert.False(t, snap.Loading)
	assert.Equal(t, RoleCoordinator, snap.Role)

	assert.True(t, LoadingSnapshot().Loading)
	assert.False(t, AnonymousSnapshot().Authenticated)
}
