package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents a campus actor's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below; provider-supplied strings
// must pass through ParseRole at the boundary.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleCoordinator      Role = "coordinator"
	RoleTeacher          Role = "teacher"
	RoleLibrarian        Role = "librarian"
	RoleMediaCoordinator Role = "media_coordinator"
	RoleStudent          Role = "student"
	RoleParent           Role = "parent"
)

// AllRoles enumerates every valid role. Adding a role here requires
// auditing the named groups in groups.go, since membership is enumerated
// rather than inferred from a hierarchy.
var AllRoles = RoleSet{
	RoleAdmin,
	RoleCoordinator,
	RoleTeacher,
	RoleLibrarian,
	RoleMediaCoordinator,
	RoleStudent,
	RoleParent,
}

// ParseRole validates an open string (e.g. from an identity provider or
// a persisted session) against the closed role set. The boolean reports
// whether the value is a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	for _, known := range AllRoles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (e.g., samAccountName or sub)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Snapshot is the point-in-time view of the actor's authentication state
// that drives guard decisions. While Loading is true the other fields are
// not yet trustworthy and must not drive a decision.
type Snapshot struct {
	Loading       bool
	Authenticated bool
	Role          Role // zero value when unauthenticated
}

// HasAnyRole reports whether the snapshot's role is a member of the given
// set. It is the single membership predicate the guard delegates to; it
// never matches while loading or unauthenticated.
func (s Snapshot) HasAnyRole(set RoleSet) bool {
	if s.Loading || !s.Authenticated {
		return false
	}
	return RoleSatisfies(s.Role, set)
}

// LoadingSnapshot is the snapshot used while authentication state is
// unresolved, including when the session provider is unreachable.
func LoadingSnapshot() Snapshot { return Snapshot{Loading: true} }

// AnonymousSnapshot is the resolved snapshot for an unauthenticated actor.
func AnonymousSnapshot() Snapshot { return Snapshot{} }

// SessionSnapshot builds the resolved snapshot for an authenticated session.
func SessionSnapshot(sess Session) Snapshot {
	return Snapshot{Authenticated: true, Role: sess.Role}
}
