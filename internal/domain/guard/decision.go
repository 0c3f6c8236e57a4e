package guard

import (
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// Kind classifies how a protected region should currently be rendered.
type Kind int

const (
	// KindLoading means identity resolution is still in flight; render a
	// loading indicator, never a denial.
	KindLoading Kind = iota

	// KindUnauthenticated means the actor is not signed in; render
	// nothing. The guard never redirects unauthenticated actors.
	KindUnauthenticated

	// KindAllowed means the actor may see the protected content.
	KindAllowed

	// KindRedirectRequested means a denied authenticated actor should be
	// navigated to Decision.RedirectTarget instead of seeing anything.
	KindRedirectRequested

	// KindDeniedWithFallback means the policy's fallback content should
	// be rendered in place of the protected content.
	KindDeniedWithFallback

	// KindDeniedWithNotice means a visible denial notice should be
	// rendered, listing the allowed roles and the actor's role.
	KindDeniedWithNotice

	// KindDeniedSilent means access is denied and nothing is rendered.
	KindDeniedSilent
)

// String returns a stable name for logging.
func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindAllowed:
		return "allowed"
	case KindRedirectRequested:
		return "redirect_requested"
	case KindDeniedWithFallback:
		return "denied_with_fallback"
	case KindDeniedWithNotice:
		return "denied_with_notice"
	case KindDeniedSilent:
		return "denied_silent"
	default:
		return "unknown"
	}
}

// Decision is the evaluator's output for one (snapshot, policy) pair.
// It is ephemeral: recomputed on every relevant input change and never
// cached across evaluations.
type Decision[C any] struct {
	Kind Kind

	// RedirectTarget is set for KindRedirectRequested.
	RedirectTarget string

	// Fallback is set for KindDeniedWithFallback.
	Fallback *C

	// AllowedRoles and ActorRole are set on denial outcomes so the host
	// can explain the mismatch to the user.
	AllowedRoles domainauth.RoleSet
	ActorRole    domainauth.Role
}

// Denied reports whether the decision is any of the denial outcomes
// (redirect, fallback, notice, or silent).
func (d Decision[C]) Denied() bool {
	switch d.Kind {
	case KindRedirectRequested, KindDeniedWithFallback, KindDeniedWithNotice, KindDeniedSilent:
		return true
	default:
		return false
	}
}
