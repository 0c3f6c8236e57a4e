package auth

import (
	"fmt"
	"strings"
)

// RoleSet is an enumerated set of roles. Membership is explicit; there is
// no wildcard, hierarchy, or inheritance semantics.
type RoleSet []Role

// Contains reports plain set membership.
func (s RoleSet) Contains(r Role) bool {
	for _, member := range s {
		if member == r {
			return true
		}
	}
	return false
}

// String renders the set for user-facing denial notices.
func (s RoleSet) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// RoleSatisfies reports whether role is a member of the allowed set.
// An unknown role simply fails membership.
func RoleSatisfies(role Role, allowed RoleSet) bool {
	return allowed.Contains(role)
}

// Named role groups. Each group pins the exact set of roles that satisfy
// it. Admin is a member of every staff-facing group; membership is
// enumerated, not inferred, so adding a primitive role requires auditing
// all five groups (VerifyGroups catches drift between related groups).
var (
	GroupAdminOnly = RoleSet{RoleAdmin}
	GroupStaffOnly = RoleSet{
		RoleAdmin,
		RoleCoordinator,
		RoleTeacher,
		RoleLibrarian,
		RoleMediaCoordinator,
	}
	GroupTeacherOnly = RoleSet{RoleAdmin, RoleCoordinator, RoleTeacher}
	GroupStudentOnly = RoleSet{RoleStudent}
	GroupParentOnly  = RoleSet{RoleParent}
)

// NamedGroups returns the registry of group name to role set.
func NamedGroups() map[string]RoleSet {
	return map[string]RoleSet{
		"AdminOnly":   GroupAdminOnly,
		"StaffOnly":   GroupStaffOnly,
		"TeacherOnly": GroupTeacherOnly,
		"StudentOnly": GroupStudentOnly,
		"ParentOnly":  GroupParentOnly,
	}
}

// VerifyGroups asserts the documented relationships between the named
// groups: admin belongs to every staff-facing group, TeacherOnly is a
// subset of StaffOnly, and the student/parent groups contain no staff
// roles. Run at startup and in tests to catch silent drift when a role
// is added to one group but not a logically related one.
func VerifyGroups() error {
	staffFacing := map[string]RoleSet{
		"AdminOnly":   GroupAdminOnly,
		"StaffOnly":   GroupStaffOnly,
		"TeacherOnly": GroupTeacherOnly,
	}
	for name, set := range staffFacing {
		if !set.Contains(RoleAdmin) {
			return fmt.Errorf("role group %s must include %s", name, RoleAdmin)
		}
	}

	for _, r := range GroupTeacherOnly {
		if !GroupStaffOnly.Contains(r) {
			return fmt.Errorf("role group TeacherOnly member %s missing from StaffOnly", r)
		}
	}

	nonStaff := map[string]RoleSet{
		"StudentOnly": GroupStudentOnly,
		"ParentOnly":  GroupParentOnly,
	}
	for name, set := range nonStaff {
		for _, r := range set {
			if GroupStaffOnly.Contains(r) {
				return fmt.Errorf("role group %s must not include staff role %s", name, r)
			}
		}
	}

	for name, set := range NamedGroups() {
		if len(set) == 0 {
			return fmt.Errorf("role group %s is empty", name)
		}
		for _, r := range set {
			if !AllRoles.Contains(r) {
				return fmt.Errorf("role group %s contains unknown role %q", name, r)
			}
		}
	}

	return nil
}
