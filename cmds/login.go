package cmds

import (
	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
	"github.com/tracecert/certctl/config"
)

func NewCmdLogin() *cobra.Command {
	opts := options.NewLoginConfig()
	cmd := &cobra.Command{
		Use:               "login",
		Short:             "Log in to the certificate backend",
		Example:           `certctl login -u admin`,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := opts.ValidateFlags(cmd, args); err != nil {
				term.Fatalln(err)
			}

			c, cfg, path, err := newClient(cmd)
			if err != nil {
				term.Fatalln(err)
			}

			err = runLogin(c, cfg, path, opts)
			term.ExitOnError(err)

			term.Successln("Logged in as", cfg.Session.Username)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runLogin(c *client.Client, cfg *config.Config, configPath string, opts *options.LoginConfig) error {
	username := opts.Username
	if username == "" {
		username = term.Read("Username:")
	}
	password := opts.Password
	if password == "" {
		password = term.ReadMasked("Password:")
	}

	session, err := c.Login(opContext(), username, password)
	if err != nil {
		return err
	}

	cfg.Session = &config.Session{
		Token:    session.Token,
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	}
	return cfg.Save(configPath)
}
