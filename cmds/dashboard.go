package cmds

import (
	"fmt"
	"os"
	"time"

	"github.com/appscode/go/term"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
	"github.com/tracecert/certctl/utils/printer"
)

func NewCmdDashboard() *cobra.Command {
	opts := options.NewDashboardConfig()
	cmd := &cobra.Command{
		Use:               "dashboard",
		Short:             "Show certificate counters and recent activity",
		Example:           `certctl dashboard`,
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

			err = runDashboard(c, opts)
			term.ExitOnError(err)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runDashboard(c *client.Client, opts *options.DashboardConfig) error {
	page, err := c.ListCertificates(opContext(), 1, opts.PageSize, client.CertificateFilter{})
	if err != nil {
		return err
	}

	summary := client.Summarize(page.Items, time.Now())
	recent := client.RecentActivity(page.Items, 5)

	if opts.Output == "json" || opts.Output == "yaml" {
		p, err := printer.NewPrinter(opts.Output)
		if err != nil {
			return err
		}
		return p.PrintObj(struct {
			Summary client.Summary       `json:"summary"`
			Recent  []client.Certificate `json:"recent"`
		}{summary, recent}, os.Stdout)
	}

	human := printer.NewHumanReadablePrinter(printer.PrintOptions{})
	if err := human.PrintObj(summary, os.Stdout); err != nil {
		return err
	}
	if page.Total > len(page.Items) {
		fmt.Fprintf(os.Stdout, "Counters cover the %d loaded certificates of %d total.\n", len(page.Items), page.Total)
	}

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "Recent activity:")
	return human.PrintObj(recent, os.Stdout)
}
