package guard

// Package guard implements view authorization for protected UI regions:
// a policy describing who may see a region, a pure evaluator that
// classifies the current session against the policy, and a stateful
// region wrapper that re-evaluates on session changes and performs the
// one permitted side effect (navigation).

import (
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// Policy is the immutable configuration for one protected region.
// C is the renderable content type of the host (an http.Handler for the
// HTTP layer, a string in tests). Construct with NewPolicy so that
// ShowError defaults to true; a zero-value Policy denies silently.
type Policy[C any] struct {
	// AllowedRoles is the set of roles permitted to see the region.
	// An empty set is a configuration error: every authenticated actor
	// is denied (fail closed) and the region logs a warning.
	AllowedRoles domainauth.RoleSet

	// Fallback, when non-nil, is rendered instead of an error when
	// access is denied and no redirect target is configured.
	Fallback *C

	// RedirectTarget, when non-empty, navigates a denied authenticated
	// actor away instead of rendering anything.
	RedirectTarget string

	// ShowError controls whether a denial with no fallback renders a
	// visible notice (true, the default) or renders nothing.
	ShowError bool
}

// Option customizes a Policy built by NewPolicy.
type Option[C any] func(*Policy[C])

// WithFallback sets content to render instead of an error on denial.
func WithFallback[C any](content C) Option[C] {
	return func(p *Policy[C]) { p.Fallback = &content }
}

// WithRedirect navigates denied authenticated actors to target.
func WithRedirect[C any](target string) Option[C] {
	return func(p *Policy[C]) { p.RedirectTarget = target }
}

// WithoutNotice suppresses the visible denial notice.
func WithoutNotice[C any]() Option[C] {
	return func(p *Policy[C]) { p.ShowError = false }
}

// NewPolicy builds a policy allowing the given roles. ShowError defaults
// to true.
func NewPolicy[C any](allowed domainauth.RoleSet, opts ...Option[C]) Policy[C] {
	p := Policy[C]{AllowedRoles: allowed, ShowError: true}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Ready-made policies for the five named role groups.

// AdminOnly permits only admins.
func AdminOnly[C any](opts ...Option[C]) Policy[C] {
	return NewPolicy(domainauth.GroupAdminOnly, opts...)
}

// StaffOnly permits all staff roles.
func StaffOnly[C any](opts ...Option[C]) Policy[C] {
	return NewPolicy(domainauth.GroupStaffOnly, opts...)
}

// TeacherOnly permits the teaching tier (admin, coordinator, teacher).
func TeacherOnly[C any](opts ...Option[C]) Policy[C] {
	return NewPolicy(domainauth.GroupTeacherOnly, opts...)
}

// StudentOnly permits only students.
func StudentOnly[C any](opts ...Option[C]) Policy[C] {
	return NewPolicy(domainauth.GroupStudentOnly, opts...)
}

// ParentOnly permits only parents.
func ParentOnly[C any](opts ...Option[C]) Policy[C] {
	return NewPolicy(domainauth.GroupParentOnly, opts...)
}

// AnyRole permits every known role; the region still requires an
// authenticated actor.
func AnyRole[C any](opts ...Option[C]) Policy[C] {
	return NewPolicy(domainauth.AllRoles, opts...)
}
