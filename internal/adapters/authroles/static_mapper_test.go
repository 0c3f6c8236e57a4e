package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/ports"
)

var _ ports.RoleMapper = StaticRoleMapper{}

func testMapper() StaticRoleMapper {
	return StaticRoleMapper{
		AdminGroup:            "cn=campus-admins",
		CoordinatorGroup:      "cn=campus-coordinators",
		TeacherGroup:          "cn=campus-teachers",
		LibrarianGroup:        "cn=campus-librarians",
		MediaCoordinatorGroup: "cn=campus-media",
		StudentGroup:          "cn=campus-students",
		ParentGroup:           "cn=campus-parents",
	}
}

func TestStaticRoleMapper_Map(t *testing.T) {
	m := testMapper()

	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
		ok     bool
	}{
		{"admin", []string{"cn=campus-admins"}, domainauth.RoleAdmin, true},
		{"teacher", []string{"cn=other", "cn=campus-teachers"}, domainauth.RoleTeacher, true},
		{"librarian", []string{"cn=campus-librarians"}, domainauth.RoleLibrarian, true},
		{"media coordinator", []string{"cn=campus-media"}, domainauth.RoleMediaCoordinator, true},
		{"student", []string{"cn=campus-students"}, domainauth.RoleStudent, true},
		{"parent", []string{"cn=campus-parents"}, domainauth.RoleParent, true},
		{"staff precedence over student", []string{"cn=campus-students", "cn=campus-teachers"}, domainauth.RoleTeacher, true},
		{"admin precedence over teacher", []string{"cn=campus-teachers", "cn=campus-admins"}, domainauth.RoleAdmin, true},
		{"no match", []string{"cn=alumni"}, "", false},
		{"no groups", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := m.Map(tt.groups)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestStaticRoleMapper_EmptyConfigNeverMatches(t *testing.T) {
	m := StaticRoleMapper{}
	_, ok := m.Map([]string{"", "cn=campus-admins"})
	assert.False(t, ok)
}
