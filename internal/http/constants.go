package httpx

const (
	// SessionCookieName carries the opaque session ID.
	SessionCookieName = "session_id"

	// OAuth flow cookies, short-lived.
	stateCookieName    = "oauth_state"
	nonceCookieName    = "oauth_nonce"
	redirectCookieName = "post_login_redirect"

	oauthCookieMaxAge = 600 // seconds

	// SortDirAsc and SortDirDesc are the accepted sort directions.
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)
