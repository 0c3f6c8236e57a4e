package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

func authed(role domainauth.Role) domainauth.Snapshot {
	return domainauth.Snapshot{Authenticated: true, Role: role}
}

func TestEvaluate_LoadingDominates(t *testing.T) {
	// Loading wins regardless of every other field and policy knob.
	snapshots := []domainauth.Snapshot{
		{Loading: true},
		{Loading: true, Authenticated: true},
		{Loading: true, Authenticated: true, Role: domainauth.RoleAdmin},
	}
	policies := []Policy[string]{
		AdminOnly[string](),
		StaffOnly[string](WithRedirect[string]("/dashboard")),
		NewPolicy(domainauth.RoleSet{}, WithFallback("banner")),
		{}, // zero-value policy
	}

	for _, snap := range snapshots {
		for _, policy := range policies {
			decision := Evaluate(snap, policy)
			assert.Equal(t, KindLoading, decision.Kind)
		}
	}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	snap := domainauth.Snapshot{Authenticated: false}

	// No redirect and no notice for unauthenticated actors, even when the
	// policy configures both.
	decision := Evaluate(snap, AdminOnly(WithRedirect[string]("/dashboard")))
	assert.Equal(t, KindUnauthenticated, decision.Kind)
	assert.Empty(t, decision.RedirectTarget)
}

func TestEvaluate_Allowed(t *testing.T) {
	decision := Evaluate(authed(domainauth.RoleTeacher), TeacherOnly[string]())
	assert.Equal(t, KindAllowed, decision.Kind)

	// Admin satisfies every staff-facing group.
	for _, policy := range []Policy[string]{AdminOnly[string](), StaffOnly[string](), TeacherOnly[string]()} {
		assert.Equal(t, KindAllowed, Evaluate(authed(domainauth.RoleAdmin), policy).Kind)
	}
}

func TestEvaluate_RedirectPrecedesFallback(t *testing.T) {
	policy := NewPolicy(
		domainauth.GroupAdminOnly,
		WithRedirect[string]("/dashboard"),
		WithFallback("upgrade-banner"),
	)

	decision := Evaluate(authed(domainauth.RoleStudent), policy)
	assert.Equal(t, KindRedirectRequested, decision.Kind)
	assert.Equal(t, "/dashboard", decision.RedirectTarget)
	assert.Nil(t, decision.Fallback)
}

func TestEvaluate_DeniedWithFallback(t *testing.T) {
	policy := NewPolicy(domainauth.RoleSet{domainauth.RoleTeacher}, WithFallback("upgrade-banner"))

	decision := Evaluate(authed(domainauth.RoleParent), policy)
	require.Equal(t, KindDeniedWithFallback, decision.Kind)
	require.NotNil(t, decision.Fallback)
	assert.Equal(t, "upgrade-banner", *decision.Fallback)
}

func TestEvaluate_DeniedNoticeCarriesRoles(t *testing.T) {
	policy := NewPolicy[string](domainauth.RoleSet{domainauth.RoleTeacher})

	decision := Evaluate(authed(domainauth.RoleParent), policy)
	assert.Equal(t, KindDeniedWithNotice, decision.Kind)
	assert.Equal(t, domainauth.RoleParent, decision.ActorRole)
	assert.Contains(t, decision.AllowedRoles.String(), "teacher")
}

func TestEvaluate_DeniedSilent(t *testing.T) {
	policy := NewPolicy[string](domainauth.RoleSet{domainauth.RoleTeacher}, WithoutNotice[string]())

	decision := Evaluate(authed(domainauth.RoleParent), policy)
	assert.Equal(t, KindDeniedSilent, decision.Kind)
}

func TestEvaluate_EmptyRoleSetFailsClosed(t *testing.T) {
	empty := NewPolicy[string](domainauth.RoleSet{})

	// Never Allowed for any role.
	for _, role := range domainauth.AllRoles {
		decision := Evaluate(authed(role), empty)
		assert.NotEqual(t, KindAllowed, decision.Kind, "role %s", role)
		assert.True(t, decision.Denied(), "role %s", role)
	}

	// Zero-value policy (ShowError unset) denies silently rather than
	// panicking.
	decision := Evaluate(authed(domainauth.RoleAdmin), Policy[string]{})
	assert.Equal(t, KindDeniedSilent, decision.Kind)
}

func TestEvaluate_Deterministic(t *testing.T) {
	snap := authed(domainauth.RoleLibrarian)
	policy := StaffOnly[string](WithRedirect[string]("/dashboard"))

	first := Evaluate(snap, policy)
	for range 10 {
		assert.Equal(t, first, Evaluate(snap, policy))
	}
}

func TestEvaluate_UnknownRoleFailsMembership(t *testing.T) {
	// A role outside the closed set (e.g. stale session data) is denied,
	// never a crash.
	snap := domainauth.Snapshot{Authenticated: true, Role: domainauth.Role("superuser")}
	decision := Evaluate(snap, StaffOnly[string]())
	assert.Equal(t, KindDeniedWithNotice, decision.Kind)
}
