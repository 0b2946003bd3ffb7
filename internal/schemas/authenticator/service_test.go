package authenticator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"terraform-provider-pleasant/internal/helpers"

	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, lastUser *string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		*lastUser = r.PostForm.Get("username")
		w.Write([]byte(`{"access_token":"T"}`))
	}))
}

func TestGetAuthenticator_UsesProviderCredentials(t *testing.T) {
	var lastUser string
	srv := newTokenServer(t, &lastUser)
	defer srv.Close()

	auth, usedFallback, err := GetAuthenticator(context.Background(), srv.URL, "bob", "hunter2", nil, helpers.TlsPolicy{}, time.Second)

	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, "T", auth.BearerToken)
	assert.Equal(t, "bob", lastUser)
}

func TestGetAuthenticator_OverrideWins(t *testing.T) {
	var lastUser string
	srv := newTokenServer(t, &lastUser)
	defer srv.Close()

	override := &Authentication{
		Username: types.StringValue("alice"),
		Password: types.StringValue("secret"),
	}

	auth, _, err := GetAuthenticator(context.Background(), srv.URL, "bob", "hunter2", override, helpers.TlsPolicy{}, time.Second)

	require.NoError(t, err)
	assert.Equal(t, "T", auth.BearerToken)
	assert.Equal(t, "alice", lastUser)
}

func TestGetAuthenticator_EmptyOverrideFallsThrough(t *testing.T) {
	var lastUser string
	srv := newTokenServer(t, &lastUser)
	defer srv.Close()

	override := &Authentication{
		Username: types.StringNull(),
		Password: types.StringNull(),
	}

	_, _, err := GetAuthenticator(context.Background(), srv.URL, "bob", "hunter2", override, helpers.TlsPolicy{}, time.Second)

	require.NoError(t, err)
	assert.Equal(t, "bob", lastUser)
}

func TestGetAuthenticator_FallbackToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	auth, usedFallback, err := GetAuthenticator(context.Background(), srv.URL, "bob", "hunter2", nil, helpers.TlsPolicy{}, time.Second)

	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, "default", auth.BearerToken)
}

func TestGetAuthenticator_MissingCredentials(t *testing.T) {
	_, _, err := GetAuthenticator(context.Background(), "https://vault.example.com:10001", "", "", nil, helpers.TlsPolicy{}, time.Second)

	require.Error(t, err)
}
