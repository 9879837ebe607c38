package cmds

import (
	"io"

	"github.com/appscode/go/term"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/utils/printer"
)

func NewCmdDescribe() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "describe CERT-NUMBER",
		Short:             "Show a certificate with its workflow, test data and anchoring",
		Example:           `certctl describe CERT-1700000000000`,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				term.Fatalln(errors.New("exactly one certificate number is required"))
			}

			c, cfg, _, err := newClient(cmd)
			if err != nil {
				term.Fatalln(err)
			}
			if err := requireSession(cfg); err != nil {
				term.Fatalln(err)
			}

			err = runDescribe(c, args[0], cmd.OutOrStdout())
			term.ExitOnError(err)
		},
	}
	return cmd
}

func runDescribe(c *client.Client, certNumber string, out io.Writer) error {
	cert, chain, err := c.GetCertificate(opContext(), certNumber)
	if err != nil {
		return err
	}

	// Missing measurements should not block the detail view.
	points, err := c.ListTestData(opContext(), certNumber)
	if err != nil {
		points = nil
	}

	return printer.PrintCertificateDetail(out, cert, chain, points)
}
