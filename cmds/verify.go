package cmds

import (
	"os"

	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
	"github.com/tracecert/certctl/utils/printer"
)

func NewCmdVerify() *cobra.Command {
	opts := options.NewVerifyConfig()
	cmd := &cobra.Command{
		Use:               "verify CERT-NUMBER",
		Short:             "Check a certificate's validity through the public endpoint",
		Long:              "Verification needs no login. With a session, the measurement data of a valid certificate is shown as well.",
		Example:           `certctl verify CERT-1700000000000`,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := opts.ValidateFlags(cmd, args); err != nil {
				term.Fatalln(err)
			}

			c, _, _, err := newClient(cmd)
			if err != nil {
				term.Fatalln(err)
			}

			err = runVerify(c, opts)
			term.ExitOnError(err)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runVerify(c *client.Client, opts *options.VerifyConfig) error {
	result, points, err := c.VerifyWithTestData(opContext(), opts.CertNumber)
	if err != nil {
		return err
	}

	if opts.Output == "json" || opts.Output == "yaml" {
		p, err := printer.NewPrinter(opts.Output)
		if err != nil {
			return err
		}
		return p.PrintObj(result, os.Stdout)
	}

	return printer.PrintVerifyResult(os.Stdout, result, points)
}
