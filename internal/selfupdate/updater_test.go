package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubReleaseServer(t *testing.T, tag, htmlURL string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/pathwise/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": %q}`, tag, htmlURL)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := stubReleaseServer(t, "v1.2.0", "https://example.com/releases/v1.2.0")
	c := NewCheckerForRepo("acme", "pathwise", srv.URL)

	result, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "v1.1.0", result.CurrentVersion)
	assert.Equal(t, "https://example.com/releases/v1.2.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := stubReleaseServer(t, "v1.2.0", "")
	c := NewCheckerForRepo("acme", "pathwise", srv.URL)

	result, err := c.Check(context.Background(), "v1.2.0")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_BareVersionGetsPrefixed(t *testing.T) {
	srv := stubReleaseServer(t, "1.3.0", "")
	c := NewCheckerForRepo("acme", "pathwise", srv.URL)

	result, err := c.Check(context.Background(), "1.2.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewCheckerForRepo("acme", "pathwise", "http://unused.invalid")
	for _, version := range []string{"(devel)", ""} {
		_, err := c.Check(context.Background(), version)
		assert.ErrorIs(t, err, ErrDevBuild)
	}
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	c := NewCheckerForRepo("acme", "pathwise", srv.URL)

	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestCheck_InvalidTag(t *testing.T) {
	srv := stubReleaseServer(t, "nightly-build", "")
	c := NewCheckerForRepo("acme", "pathwise", srv.URL)

	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid release tag")
}
