package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"campus-ui"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"campus-ui"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string   `env:"USER_ID" envDefault:"dev-user"`
	Email  string   `env:"EMAIL"   envDefault:"dev@campus.example"`
	Groups []string `env:"GROUPS"  envDefault:"cn=campus-admins"  envSeparator:";"`
}

// RoleGroupsConfig maps identity provider group names to campus roles.
// Each field is the directory group whose members get that role.
type RoleGroupsConfig struct {
	Admin            string `env:"ADMIN_GROUP"             envDefault:"cn=campus-admins"`
	Coordinator      string `env:"COORDINATOR_GROUP"       envDefault:"cn=campus-coordinators"`
	Teacher          string `env:"TEACHER_GROUP"           envDefault:"cn=campus-teachers"`
	Librarian        string `env:"LIBRARIAN_GROUP"         envDefault:"cn=campus-librarians"`
	MediaCoordinator string `env:"MEDIA_COORDINATOR_GROUP" envDefault:"cn=campus-media"`
	Student          string `env:"STUDENT_GROUP"           envDefault:"cn=campus-students"`
	Parent           string `env:"PARENT_GROUP"            envDefault:"cn=campus-parents"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// RoleGroups maps directory groups to campus roles.
	RoleGroups RoleGroupsConfig

	// SessionTTL caps session lifetime when the provider gives none.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`
}
