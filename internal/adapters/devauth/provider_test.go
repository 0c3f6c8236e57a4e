package devauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/campus-ui-api/internal/ports"
)

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{Email: "dev@campus.example"})
	assert.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev-user"})
	assert.Error(t, err)
}

func TestBegin_ReturnsLocalCallback(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev-user", Email: "dev@campus.example"})
	require.NoError(t, err)

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=dev&state="))
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)
	assert.NotEqual(t, state, nonce)
}

func TestExchange_ReturnsConfiguredIdentity(t *testing.T) {
	p, err := NewProvider(Config{
		UserID: "dev-user",
		Email:  "dev@campus.example",
		Groups: []string{"cn=campus-teachers"},
	})
	require.NoError(t, err)

	identity, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "dev"})
	require.NoError(t, err)
	assert.Equal(t, "dev-user", identity.UserID)
	assert.Equal(t, []string{"cn=campus-teachers"}, identity.Groups)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}
