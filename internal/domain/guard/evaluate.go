package guard

import (
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// Evaluate classifies the session snapshot against the policy. It is
// pure, synchronous, and total: repeated calls with identical inputs
// yield identical output, and it is safe to call on every render.
//
// The rules form a strict priority order; the first match wins:
//
//  1. Loading while identity resolution is in flight. Dominates every
//     other check so a user who simply hasn't finished authenticating is
//     never flashed a denial.
//  2. Unauthenticated when not loading and not signed in. Sending the
//     actor to a login flow is the identity provider's concern, not the
//     guard's.
//  3. Allowed when the actor's role is a member of the allowed set.
//  4. RedirectRequested when denied and the policy names a redirect
//     target. Redirect dominates fallback/notice: navigation is
//     irreversible and must not race with transient denial UI.
//  5. DeniedWithFallback when denied and fallback content is configured.
//  6. DeniedWithNotice when ShowError is set, else DeniedSilent.
//
// An empty AllowedRoles set fails closed: no authenticated actor ever
// satisfies it, so evaluation falls through to the denial outcomes.
func Evaluate[C any](snap domainauth.Snapshot, policy Policy[C]) Decision[C] {
	if snap.Loading {
		return Decision[C]{Kind: KindLoading}
	}

	if !snap.Authenticated {
		return Decision[C]{Kind: KindUnauthenticated}
	}

	if snap.HasAnyRole(policy.AllowedRoles) {
		return Decision[C]{Kind: KindAllowed}
	}

	denied := Decision[C]{
		AllowedRoles: policy.AllowedRoles,
		ActorRole:    snap.Role,
	}

	switch {
	case policy.RedirectTarget != "":
		denied.Kind = KindRedirectRequested
		denied.RedirectTarget = policy.RedirectTarget
	case policy.Fallback != nil:
		denied.Kind = KindDeniedWithFallback
		denied.Fallback = policy.Fallback
	case policy.ShowError:
		denied.Kind = KindDeniedWithNotice
	default:
		denied.Kind = KindDeniedSilent
	}

	return denied
}
