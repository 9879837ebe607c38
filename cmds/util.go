package cmds

import (
	"context"
	"time"

	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/config"
)

// GetConfigPath resolves the --config persistent flag.
func GetConfigPath(cmd *cobra.Command) string {
	s, err := cmd.Flags().GetString("config")
	if err != nil {
		term.Fatalln("error accessing flag config for command", cmd.Name(), ":", err)
	}
	return s
}

// loadContext reads the stored console context, falling back to defaults
// when no config file exists yet, and applies the --endpoint override.
func loadContext(cmd *cobra.Command) (*config.Config, string, error) {
	path := GetConfigPath(cmd)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		cfg = config.NewDefaultConfig()
	}
	if endpoint, err := cmd.Flags().GetString("endpoint"); err == nil && endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg, path, nil
}

// newClient builds an API client from the stored context. The persisted
// session token, when present, rides along as the bearer credential.
func newClient(cmd *cobra.Command) (*client.Client, *config.Config, string, error) {
	cfg, path, err := loadContext(cmd)
	if err != nil {
		return nil, nil, "", err
	}

	opts := []client.Option{}
	if cfg.LoggedIn() {
		opts = append(opts, client.WithToken(cfg.Session.Token))
	}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, client.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	return client.New(cfg.Endpoint, opts...), cfg, path, nil
}

// requireSession fails fast when no login is stored; the backend would
// reject the call anyway, this just gives a better message.
func requireSession(cfg *config.Config) error {
	if !cfg.LoggedIn() {
		return &client.AuthError{Message: "not logged in; run `certctl login` first"}
	}
	return nil
}

func opContext() context.Context {
	// The HTTP client carries the timeout; a background context is enough.
	return context.Background()
}
