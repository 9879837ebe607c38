package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type DashboardConfig struct {
	PageSize int
	Output   string
}

func NewDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		// The counters are computed over the loaded page only; a large
		// page keeps them close to the real totals.
		PageSize: 100,
	}
}

func (c *DashboardConfig) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.PageSize, "page-size", c.PageSize, "How many certificates to load for the counters")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output format. One of: json|yaml")
}

func (c *DashboardConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	return nil
}
