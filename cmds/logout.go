package cmds

import (
	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/config"
)

func NewCmdLogout() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "logout",
		Short:             "Log out and clear the stored session",
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			c, cfg, path, err := newClient(cmd)
			if err != nil {
				term.Fatalln(err)
			}

			err = runLogout(c, cfg, path)
			term.ExitOnError(err)

			term.Successln("Logged out")
		},
	}
	return cmd
}

// runLogout clears the local session no matter what the server says; the
// server notification is best-effort.
func runLogout(c *client.Client, cfg *config.Config, configPath string) error {
	if cfg.LoggedIn() {
		if err := c.Logout(opContext()); err != nil {
			term.Infoln("server logout failed, clearing local session anyway:", err)
		}
	}
	cfg.ClearSession()
	return cfg.Save(configPath)
}
