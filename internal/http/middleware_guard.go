package httpx

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/domain/guard"
)

// SnapshotSource resolves the session cookie into the auth snapshot the
// guard evaluates, and into the full session for allowed requests.
type SnapshotSource interface {
	SnapshotFor(ctx context.Context, sessionID string) (domainauth.Snapshot, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// Guard renders guard decisions over HTTP. Every request is a fresh
// evaluation: resolve the snapshot, run the policy, write exactly one of
// the seven outcomes.
type Guard struct {
	Auth   SnapshotSource
	Logger *slog.Logger
}

func (g *Guard) logger() *slog.Logger {
	if g != nil && g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// Protect wraps next with the given policy. The policy's fallback, if
// set, is an alternate handler served in place of next on denial; its
// redirect target, if set, wins over the fallback.
func (g *Guard) Protect(policy guard.Policy[http.Handler]) func(http.Handler) http.Handler {
	if len(policy.AllowedRoles) == 0 {
		g.logger().Warn("guard policy has empty allowed role set; all authenticated actors will be denied")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snap := g.resolveSnapshot(r)
			decision := guard.Evaluate(snap, policy)

			switch decision.Kind {
			case guard.KindLoading:
				g.renderLoading(w, r)
			case guard.KindUnauthenticated:
				// Blank render: the actor is signed out, not forbidden.
				w.WriteHeader(http.StatusUnauthorized)
			case guard.KindAllowed:
				g.serveAllowed(w, r, next)
			case guard.KindRedirectRequested:
				http.Redirect(w, r, decision.RedirectTarget, http.StatusSeeOther)
			case guard.KindDeniedWithFallback:
				(*decision.Fallback).ServeHTTP(w, r)
			case guard.KindDeniedWithNotice:
				g.renderNotice(w, r, decision)
			default:
				w.WriteHeader(http.StatusForbidden)
			}
		})
	}
}

// resolveSnapshot maps the session cookie to a snapshot. Resolver
// failure yields the loading snapshot so the evaluation never treats
// absent data as signed out.
func (g *Guard) resolveSnapshot(r *http.Request) domainauth.Snapshot {
	var sessionID string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	snap, err := g.Auth.SnapshotFor(r.Context(), sessionID)
	if err != nil {
		g.logger().ErrorContext(r.Context(), "session snapshot unavailable", "error", err)
	}
	return snap
}

func (g *Guard) serveAllowed(w http.ResponseWriter, r *http.Request, next http.Handler) {
	ctx := r.Context()
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if session, sessErr := g.Auth.GetSession(ctx, cookie.Value); sessErr == nil {
			ctx = SetSessionInContext(ctx, session)
		}
	}
	next.ServeHTTP(w, r.WithContext(ctx))
}

// renderLoading answers 503 with a retry hint: the session store could
// not say whether the actor is signed in, and guessing either way would
// leak a page or flash a false denial.
func (g *Guard) renderLoading(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	if IsBrowserRequest(r) {
		http.Error(w, "Checking your session, please retry.", http.StatusServiceUnavailable)
		return
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusServiceUnavailable,
		ErrCode: "auth_unavailable",
		Err:     errors.New("session state is not yet known"),
	})
}

// renderNotice writes the 403 access notice naming the roles the screen
// accepts and the actor's own role.
func (g *Guard) renderNotice(w http.ResponseWriter, r *http.Request, decision guard.Decision[http.Handler]) {
	if !IsBrowserRequest(r) {
		WriteJSON(w, http.StatusForbidden, map[string]any{
			"error":         "access_denied",
			"message":       "your role does not grant access to this resource",
			"role":          decision.ActorRole,
			"allowed_roles": decision.AllowedRoles,
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, noticePage,
		html.EscapeString(decision.AllowedRoles.String()),
		html.EscapeString(string(decision.ActorRole)),
	)
}

const noticePage = `<!doctype html>
<html>
<head><title>Access denied</title></head>
<body>
<h1>Access denied</h1>
<p>This page is available to: %s.</p>
<p>You are signed in as: %s.</p>
<p><a href="/dashboard">Back to your dashboard</a></p>
</body>
</html>
`
