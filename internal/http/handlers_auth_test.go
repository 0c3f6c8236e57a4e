package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	mockauth "github.com/campushq/campus-ui-api/internal/mocks/auth"
	"github.com/campushq/campus-ui-api/internal/service"
)

func newAuthHandlers(role domainauth.Role) (*AuthHandlers, *mockauth.MemorySessionStore) {
	sessions := mockauth.NewMemorySessionStore()
	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: sessions,
		Roles:    mockauth.FixedRoleMapper{Role: role},
	})
	return &AuthHandlers{Svc: svc}, sessions
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin_SetsOAuthCookiesAndRedirects(t *testing.T) {
	h, _ := newAuthHandlers(domainauth.RoleTeacher)

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/api/schedules", nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://mock-idp/auth", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotNil(t, cookieByName(cookies, stateCookieName))
	require.NotNil(t, cookieByName(cookies, nonceCookieName))
	redirect := cookieByName(cookies, redirectCookieName)
	require.NotNil(t, redirect)
	assert.Equal(t, "/api/schedules", redirect.Value)
}

func TestLogin_RejectsAbsoluteRedirect(t *testing.T) {
	h, _ := newAuthHandlers(domainauth.RoleTeacher)

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example/", nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	redirect := cookieByName(rec.Result().Cookies(), redirectCookieName)
	require.NotNil(t, redirect)
	assert.Equal(t, "/", redirect.Value)
}

func TestCallback_CompletesLogin(t *testing.T) {
	h, sessions := newAuthHandlers(domainauth.RoleTeacher)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: nonceCookieName, Value: "nonce-1"})
	req.AddCookie(&http.Cookie{Name: redirectCookieName, Value: "/api/schedules"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/schedules", rec.Header().Get("Location"))

	sessionCookie := cookieByName(rec.Result().Cookies(), SessionCookieName)
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.Equal(t, 1, sessions.Len())
}

func TestCallback_StateMismatch(t *testing.T) {
	h, _ := newAuthHandlers(domainauth.RoleTeacher)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=tampered", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "state-1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_state")
}

func TestCallback_NoCampusRole(t *testing.T) {
	h, sessions := newAuthHandlers("")

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: nonceCookieName, Value: "nonce-1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_campus_role")
	assert.Zero(t, sessions.Len())
}

func TestStatusAndLogout(t *testing.T) {
	h, sessions := newAuthHandlers(domainauth.RoleTeacher)

	// Establish a session through the callback.
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: nonceCookieName, Value: "nonce-1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)
	sessionCookie := cookieByName(rec.Result().Cookies(), SessionCookieName)
	require.NotNil(t, sessionCookie)

	// Status reports the signed-in user.
	req = httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	h.Status(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), `"role":"teacher"`)

	// Logout invalidates it server-side and clears the cookie.
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Zero(t, sessions.Len())

	cleared := cookieByName(rec.Result().Cookies(), SessionCookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)

	// Status without a valid session.
	req = httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	h.Status(rec, req)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}
