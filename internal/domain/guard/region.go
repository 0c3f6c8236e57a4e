package guard

import (
	"log/slog"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// Navigator performs the navigation side effect for redirect decisions.
// Calls are fire-and-forget: the region does not await a result and does
// not retry.
type Navigator interface {
	NavigateTo(target string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target string)

// NavigateTo calls f(target).
func (f NavigatorFunc) NavigateTo(target string) { f(target) }

// Region is the reactive wrapper for one protected UI region. It holds
// the region's policy, re-evaluates on every snapshot it observes, and
// triggers the navigation side effect exactly once per transition edge
// into a redirect decision (or when the target changes), so repeated
// re-renders while navigation is in flight never enqueue duplicates.
//
// A Region sees sequential reactive updates from a single goroutine; it
// is not safe for concurrent use.
type Region[C any] struct {
	policy Policy[C]
	nav    Navigator
	logger *slog.Logger

	prev    Decision[C]
	hasPrev bool
	warned  bool
}

// NewRegion creates a region with the given policy. nav may be nil when
// the policy has no redirect target; logger may be nil.
func NewRegion[C any](policy Policy[C], nav Navigator, logger *slog.Logger) *Region[C] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Region[C]{policy: policy, nav: nav, logger: logger}
}

// Observe evaluates the snapshot against the region's policy, performs
// the deduplicated navigation side effect, and returns the decision for
// the host to render. Any snapshot change re-enters evaluation from the
// top, so a loading flip is always re-evaluated before the host commits
// a denial.
func (r *Region[C]) Observe(snap domainauth.Snapshot) Decision[C] {
	if len(r.policy.AllowedRoles) == 0 && !r.warned {
		// Mis-configured region: deny everyone rather than crash.
		r.logger.Warn("guard region has empty allowed role set; all authenticated actors will be denied")
		r.warned = true
	}

	decision := Evaluate(snap, r.policy)

	if decision.Kind == KindRedirectRequested && r.shouldNavigate(decision) && r.nav != nil {
		r.nav.NavigateTo(decision.RedirectTarget)
	}

	r.prev = decision
	r.hasPrev = true
	return decision
}

// shouldNavigate reports whether this decision is a transition edge into
// a redirect: either the previous decision was not a redirect, or it
// targeted a different path.
func (r *Region[C]) shouldNavigate(decision Decision[C]) bool {
	if !r.hasPrev {
		return true
	}
	if r.prev.Kind != KindRedirectRequested {
		return true
	}
	return r.prev.RedirectTarget != decision.RedirectTarget
}

// Last returns the most recent decision, if any snapshot has been
// observed yet.
func (r *Region[C]) Last() (Decision[C], bool) {
	return r.prev, r.hasPrev
}

// Policy returns the region's immutable policy.
func (r *Region[C]) Policy() Policy[C] { return r.policy }
