package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/campus-ui-api/config"
	"github.com/campushq/campus-ui-api/internal/adapters/authroles"
	"github.com/campushq/campus-ui-api/internal/adapters/devauth"
	"github.com/campushq/campus-ui-api/internal/adapters/oidc"
	redisadapter "github.com/campushq/campus-ui-api/internal/adapters/redis"
	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/service"
)

// AuthOptions contains configuration for the auth service.
type AuthOptions struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth
// mode. The named role groups are verified first so a bad group edit
// fails startup instead of silently misrouting dashboards.
func BuildAuthService(opts AuthOptions) (*service.AuthService, error) {
	if err := domainauth.VerifyGroups(); err != nil {
		return nil, fmt.Errorf("role group consistency: %w", err)
	}
	if opts.RedisClient == nil {
		return nil, fmt.Errorf("auth service requires a redis client (mode %s)", opts.Auth.Mode)
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(opts.RedisClient, "session:")

	roleMapper := authroles.StaticRoleMapper{
		AdminGroup:            opts.Auth.RoleGroups.Admin,
		CoordinatorGroup:      opts.Auth.RoleGroups.Coordinator,
		TeacherGroup:          opts.Auth.RoleGroups.Teacher,
		LibrarianGroup:        opts.Auth.RoleGroups.Librarian,
		MediaCoordinatorGroup: opts.Auth.RoleGroups.MediaCoordinator,
		StudentGroup:          opts.Auth.RoleGroups.Student,
		ParentGroup:           opts.Auth.RoleGroups.Parent,
	}

	switch opts.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(opts, sessionStore, roleMapper)
	case config.AuthModeOAuth:
		return buildOAuthService(opts, sessionStore, roleMapper)
	default:
		return nil, fmt.Errorf("unknown auth mode %q", opts.Auth.Mode)
	}
}

func buildDevAuthService(
	opts AuthOptions,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) (*service.AuthService, error) {
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:          opts.Auth.DevAuth.UserID,
		Email:           opts.Auth.DevAuth.Email,
		Groups:          opts.Auth.DevAuth.Groups,
		SessionDuration: opts.Auth.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.Warn("dev auth mode enabled; do not use in production",
			"user", opts.Auth.DevAuth.UserID)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
	}), nil
}

func buildOAuthService(
	opts AuthOptions,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) (*service.AuthService, error) {
	oauth := opts.Auth.OAuth
	if oauth.DiscoveryURL == "" {
		return nil, fmt.Errorf("oauth mode requires OAUTH_DISCOVERY_URL")
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create OIDC provider: %w", err)
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
	}), nil
}
