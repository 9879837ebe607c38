package cmds

import (
	"io"

	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
	"github.com/tracecert/certctl/utils/printer"
)

func newCmdGet() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "get",
		DisableAutoGenTag: true,
		Run:               func(cmd *cobra.Command, args []string) {},
	}

	cmd.AddCommand(NewCmdGetCertificates())
	cmd.AddCommand(NewCmdGetTestData())
	cmd.AddCommand(NewCmdGetHistory())

	return cmd
}

func NewCmdGetCertificates() *cobra.Command {
	opts := options.NewCertificateGetConfig()
	cmd := &cobra.Command{
		Use:               "certificates [CERT-NUMBER...]",
		Aliases:           []string{"certificate", "certs", "cert"},
		Short:             "List certificates, or fetch the named ones",
		Example:           `certctl get certificates --page 2 --status issued`,
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

			err = runGetCertificates(c, opts, cmd.OutOrStdout())
			term.ExitOnError(err)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runGetCertificates(c *client.Client, opts *options.CertificateGetConfig, out io.Writer) error {
	rPrinter, err := printer.NewPrinter(opts.Output)
	if err != nil {
		return err
	}

	if len(opts.CertNumbers) > 0 {
		certs := make([]client.Certificate, 0, len(opts.CertNumbers))
		for _, number := range opts.CertNumbers {
			cert, _, err := c.GetCertificate(opContext(), number)
			if err != nil {
				return err
			}
			certs = append(certs, *cert)
		}
		return rPrinter.PrintObj(certs, out)
	}

	page, err := c.ListCertificates(opContext(), opts.Page, opts.PageSize, client.CertificateFilter{
		Search: opts.Search,
		Status: opts.Status,
	})
	if err != nil {
		return err
	}

	if err := rPrinter.PrintObj(page, out); err != nil {
		return err
	}
	if opts.Output == "" || opts.Output == "wide" {
		return printer.PrintPagination(out, page.Page, page.TotalPages)
	}
	return nil
}

func NewCmdGetTestData() *cobra.Command {
	opts := options.NewTestDataGetConfig()
	cmd := &cobra.Command{
		Use:               "testdata CERT-NUMBER",
		Aliases:           []string{"test-data", "td"},
		Short:             "List the measurements recorded for a certificate",
		Example:           `certctl get testdata CERT-1700000000000`,
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

			err = runGetTestData(c, opts, cmd.OutOrStdout())
			term.ExitOnError(err)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runGetTestData(c *client.Client, opts *options.TestDataGetConfig, out io.Writer) error {
	rPrinter, err := printer.NewPrinter(opts.Output)
	if err != nil {
		return err
	}
	points, err := c.ListTestData(opContext(), opts.CertNumber)
	if err != nil {
		return err
	}
	return rPrinter.PrintObj(points, out)
}

func NewCmdGetHistory() *cobra.Command {
	opts := options.NewHistoryConfig()
	cmd := &cobra.Command{
		Use:               "history CERT-NUMBER",
		Short:             "Show the on-chain change history of a certificate",
		Example:           `certctl get history CERT-1700000000000`,
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

			err = runGetHistory(c, opts, cmd.OutOrStdout())
			term.ExitOnError(err)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runGetHistory(c *client.Client, opts *options.HistoryConfig, out io.Writer) error {
	rPrinter, err := printer.NewPrinter(opts.Output)
	if err != nil {
		return err
	}
	records, err := c.CertificateHistory(opContext(), opts.CertNumber)
	if err != nil {
		return err
	}
	return rPrinter.PrintObj(records, out)
}
