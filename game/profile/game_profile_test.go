package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftline/craftline/game/authenticator"
)

type fakeAuthenticator struct {
	response *authenticator.AuthenticatorResponse
	err      error
}

func (f *fakeAuthenticator) GetType() authenticator.AuthenticatorType {
	return authenticator.MICROSOFT
}

func (f *fakeAuthenticator) GetAuthorizationURL() string { return "https://example.net/authorize" }

func (f *fakeAuthenticator) AuthenticateWithCode(code string) (*authenticator.AuthenticatorResponse, error) {
	return f.response, f.err
}

func TestNewOfflineProfile(t *testing.T) {
	p := NewOfflineProfile("Steve")

	assert.Equal(t, "Steve", p.Username)
	assert.False(t, p.IsAuthenticated)
	assert.Empty(t, p.AccessToken)
	assert.Equal(t, Memory{Xmx: 4, Xms: 2}, p.Memory)

	require.NotNil(t, p.UUID)
	assert.Equal(t, uint8(3), byte(p.UUID.Version()))
}

func TestOfflineUUIDMatchesVanillaDerivation(t *testing.T) {
	// Java's UUID.nameUUIDFromBytes over "OfflinePlayer:<name>".
	assert.Equal(t, "5627dd98-e6be-3c21-b8a8-e92344183641", NewOfflineProfile("Steve").UUIDString())
	assert.Equal(t, "36532b5e-c442-3dbb-a24c-c7e55d0f979a", NewOfflineProfile("Alex").UUIDString())
}

func TestUUIDStringNilFallback(t *testing.T) {
	p := &GameProfile{Username: "Steve"}
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", p.UUIDString())
}

func TestMemoryToArgs(t *testing.T) {
	assert.Equal(t, []string{"-Xmx4G", "-Xms2G"}, Memory{Xmx: 4, Xms: 2}.ToArgs())

	p := NewOfflineProfile("Steve")
	p.SetMemory(8, 4)
	assert.Equal(t, []string{"-Xmx8G", "-Xms4G"}, p.Memory.ToArgs())
}

func TestAuthenticateWithCode(t *testing.T) {
	p := NewOfflineProfile("Steve")
	auth := &fakeAuthenticator{
		response: &authenticator.AuthenticatorResponse{
			UserUUID: "069a79f4-44e9-4726-a5be-fca90e38aaf5",
			Token:    "token-123",
			UserName: "RealSteve",
		},
	}

	require.NoError(t, p.AuthenticateWithCode(auth, "code"))
	assert.True(t, p.IsAuthenticated)
	assert.Equal(t, "RealSteve", p.Username)
	assert.Equal(t, "token-123", p.AccessToken)
	assert.Equal(t, "msa", p.UserType)
	assert.Equal(t, "069a79f4-44e9-4726-a5be-fca90e38aaf5", p.UUIDString())
}

func TestAuthenticateWithCodeRejectsBadUUID(t *testing.T) {
	p := NewOfflineProfile("Steve")
	auth := &fakeAuthenticator{
		response: &authenticator.AuthenticatorResponse{UserUUID: "not-a-uuid"},
	}

	err := p.AuthenticateWithCode(auth, "code")
	require.Error(t, err)
	assert.False(t, p.IsAuthenticated)
}
