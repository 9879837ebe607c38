package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	conf := &Config{
		Endpoint:       "http://cert.test/api/v1",
		TimeoutSeconds: 15,
		Session: &Session{
			Token:    "tok-123",
			UserID:   7,
			Username: "operator1",
			Role:     "operator",
		},
	}
	require.NoError(t, conf.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
}

func TestCreateDefaultConfigIfAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	require.NoError(t, CreateDefaultConfigIfAbsent(path))
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, conf.Endpoint)
	assert.False(t, conf.LoggedIn())

	// A second call must not clobber an existing context.
	conf.Session = &Session{Token: "keep-me", Username: "admin"}
	require.NoError(t, conf.Save(path))
	require.NoError(t, CreateDefaultConfigIfAbsent(path))
	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, again.LoggedIn())
	assert.Equal(t, "keep-me", again.Session.Token)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestClearSession(t *testing.T) {
	conf := &Config{Endpoint: "http://cert.test/api/v1", Session: &Session{Token: "t"}}
	conf.ClearSession()
	assert.False(t, conf.LoggedIn())
	assert.Equal(t, "http://cert.test/api/v1", conf.Endpoint)
}

func TestLoadConfigEmptyEndpointFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, ioutil.WriteFile(path, []byte("session:\n  token: abc\n"), 0600))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, conf.Endpoint)
	assert.True(t, conf.LoggedIn())
}
