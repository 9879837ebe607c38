package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type RevokeConfig struct {
	CertNumber string
	Force      bool
}

func NewRevokeConfig() *RevokeConfig {
	return &RevokeConfig{}
}

func (c *RevokeConfig) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.Force, "force", c.Force, "Skip the confirmation prompt")
}

func (c *RevokeConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing certificate number")
	}
	if len(args) > 1 {
		return errors.New("multiple certificate numbers provided")
	}
	c.CertNumber = args[0]
	return nil
}
