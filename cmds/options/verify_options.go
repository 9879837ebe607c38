package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type VerifyConfig struct {
	CertNumber string
	Output     string
}

func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{}
}

func (c *VerifyConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output format. One of: json|yaml")
}

func (c *VerifyConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing certificate number")
	}
	if len(args) > 1 {
		return errors.New("multiple certificate numbers provided")
	}
	c.CertNumber = args[0]
	return nil
}
