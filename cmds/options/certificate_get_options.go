package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CertificateGetConfig struct {
	CertNumbers []string
	Page        int
	PageSize    int
	Search      string
	Status      string
	Output      string
}

func NewCertificateGetConfig() *CertificateGetConfig {
	return &CertificateGetConfig{
		Page:     1,
		PageSize: 10,
	}
}

func (c *CertificateGetConfig) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Page, "page", c.Page, "Directory page to fetch")
	fs.IntVar(&c.PageSize, "page-size", c.PageSize, "Certificates per page")
	fs.StringVar(&c.Search, "search", c.Search, "Filter by certificate number or instrument name")
	fs.StringVar(&c.Status, "status", c.Status, "Filter by lifecycle status")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output format. One of: json|yaml|wide")
}

func (c *CertificateGetConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	c.CertNumbers = args
	return nil
}
