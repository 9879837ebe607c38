// Package config persists the console's context between runs: which
// backend to talk to and the session established by the last login. It is
// the CLI's stand-in for the browser's localStorage, a YAML file readable
// only by the owner.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// DefaultEndpoint is used until a config file or flag says otherwise.
const DefaultEndpoint = "http://localhost:8080/api/v1"

// Session is the persisted outcome of a login. Token is the opaque bearer
// credential attached to every authenticated request.
type Session struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// Config is the on-disk context of the console.
type Config struct {
	Endpoint       string   `json:"endpoint"`
	TimeoutSeconds int      `json:"timeoutSeconds,omitempty"`
	Session        *Session `json:"session,omitempty"`
}

// LoggedIn reports whether a session is stored. The token may still be
// expired; the backend decides that on first use.
func (c *Config) LoggedIn() bool {
	return c.Session != nil && c.Session.Token != ""
}

// ClearSession drops the stored session, keeping the rest of the context.
func (c *Config) ClearSession() {
	c.Session = nil
}

// ConfigDir returns the directory holding the config file, honoring
// CERTCTL_HOME.
func ConfigDir() string {
	if dir := os.Getenv("CERTCTL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".certctl")
}

// DefaultConfigPath returns where the context file lives.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config")
}

// NewDefaultConfig returns the context used before any login. The endpoint
// honors CERTCTL_ENDPOINT.
func NewDefaultConfig() *Config {
	endpoint := os.Getenv("CERTCTL_ENDPOINT")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Config{Endpoint: endpoint}
}

// CreateDefaultConfigIfAbsent writes a fresh default context unless one
// already exists.
func CreateDefaultConfigIfAbsent(configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}
	return NewDefaultConfig().Save(configPath)
}

// LoadConfig reads a context file. The file is forced to owner-only
// permissions since it carries the bearer token.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}
	os.Chmod(configPath, 0600)

	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", configPath)
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return config, nil
}

// Save writes the context back, creating the directory when needed.
func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(configPath, data, 0600)
}
