package cmds

import (
	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
)

func NewCmdEditCertificate() *cobra.Command {
	opts := options.NewCertificateEditConfig()
	cmd := &cobra.Command{
		Use:               "edit CERT-NUMBER",
		Short:             "Change the mutable fields of a certificate",
		Example:           `certctl edit CERT-1700000000000 --result unqualified --status testing`,
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := opts.ValidateFlags(cmd, args); err != nil {
				term.Fatalln(err)
			}

			c, cfg, _, err := newClient(cmd)
			if err != nil {
				term.Fatalln(err)
			}
			if err := requireSession(cfg); err != nil {
				term.Fatalln(err)
			}

			cert, err := runEditCertificate(c, opts)
			term.ExitOnError(err)

			term.Successln("Certificate", cert.CertNumber, "updated")
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

// runEditCertificate reads the current record, applies only the fields the
// user set, and writes it back. The certificate number itself is never
// part of the change set.
func runEditCertificate(c *client.Client, opts *options.CertificateEditConfig) (*client.Certificate, error) {
	cert, _, err := c.GetCertificate(opContext(), opts.CertNumber)
	if err != nil {
		return nil, err
	}

	req := client.UpdateRequestFor(cert)
	if opts.Changed("customer") {
		req.CustomerID = opts.CustomerID
	}
	if opts.Changed("instrument") {
		req.InstrumentName = opts.InstrumentName
	}
	if opts.Changed("instrument-number") {
		req.InstrumentNumber = opts.InstrumentNumber
	}
	if opts.Changed("manufacturer") {
		req.Manufacturer = opts.Manufacturer
	}
	if opts.Changed("model") {
		req.ModelSpec = opts.ModelSpec
	}
	if opts.Changed("accuracy") {
		req.InstrumentAccuracy = opts.InstrumentAccuracy
	}
	if opts.Changed("test-date") {
		req.TestDate = opts.TestDate
	}
	if opts.Changed("expire-date") {
		req.ExpireDate = opts.ExpireDate
	}
	if opts.Changed("result") {
		req.TestResult = opts.TestResult
	}
	if opts.Changed("status") {
		req.Status = opts.Status
	}

	return c.UpdateCertificate(opContext(), opts.CertNumber, req)
}
