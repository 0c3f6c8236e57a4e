package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"missing client id", ProviderConfig{ClientSecret: "s", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing redirect url", ProviderConfig{ClientID: "c", ClientSecret: "s", DiscoveryURL: "d"}},
		{"missing discovery url", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestMapIDTokenClaims(t *testing.T) {
	f := mapIDTokenClaims(idTokenClaims{
		Sub:        "u-1",
		GivenName:  "Ada",
		FamilyName: "Mwangi",
		Email:      "ada@campus.example",
		Groups:     []string{"cn=campus-teachers"},
	})
	assert.Equal(t, "u-1", f.userID)
	assert.Equal(t, "ada@campus.example", f.email)
	assert.Equal(t, []string{"cn=campus-teachers"}, f.groups)
}

func TestFillFromUserInfoClaims(t *testing.T) {
	f := idFields{userID: "u-1"}
	fillFromUserInfoClaims(&f, UserInfo{
		Subject:    "ignored",
		Email:      "ada@campus.example",
		GivenName:  "Ada",
		FamilyName: "Mwangi",
		Groups:     []string{"cn=campus-parents"},
	})
	assert.Equal(t, "u-1", f.userID, "existing fields are not overwritten")
	assert.Equal(t, "ada@campus.example", f.email)
	require.Len(t, f.groups, 1)
}

func TestGenerateRandomString(t *testing.T) {
	s, err := generateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	empty, err := generateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
