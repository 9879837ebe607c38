package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type LoginConfig struct {
	Username string
	Password string
}

func NewLoginConfig() *LoginConfig {
	return &LoginConfig{}
}

func (c *LoginConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Username, "username", "u", c.Username, "Username to log in with")
	fs.StringVarP(&c.Password, "password", "p", c.Password, "Password; omit to be prompted")
}

func (c *LoginConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	return nil
}
