package authroles

import (
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// StaticRoleMapper maps IdP directory groups to campus roles by exact
// string membership. Precedence follows staff seniority: an account in
// both the teacher and student groups is a teacher. Empty group names
// never match.
type StaticRoleMapper struct {
	AdminGroup            string
	CoordinatorGroup      string
	TeacherGroup          string
	LibrarianGroup        string
	MediaCoordinatorGroup string
	StudentGroup          string
	ParentGroup           string
}

// Map resolves the actor's single role. The boolean is false when no
// configured group matches; such accounts carry no campus role.
func (m StaticRoleMapper) Map(groups []string) (domainauth.Role, bool) {
	ordered := []struct {
		group string
		role  domainauth.Role
	}{
		{m.AdminGroup, domainauth.RoleAdmin},
		{m.CoordinatorGroup, domainauth.RoleCoordinator},
		{m.TeacherGroup, domainauth.RoleTeacher},
		{m.LibrarianGroup, domainauth.RoleLibrarian},
		{m.MediaCoordinatorGroup, domainauth.RoleMediaCoordinator},
		{m.StudentGroup, domainauth.RoleStudent},
		{m.ParentGroup, domainauth.RoleParent},
	}

	for _, candidate := range ordered {
		if candidate.group == "" {
			continue
		}
		for _, g := range groups {
			if g == candidate.group {
				return candidate.role, true
			}
		}
	}
	return "", false
}
