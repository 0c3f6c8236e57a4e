package httpx

import (
	"context"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so middleware and handlers agree.
type sessionKey struct{}

// SetSessionInContext returns a child context carrying the session. A nil
// session returns ctx unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session placed in the context by the
// guard middleware, with a presence flag.
func GetSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}
