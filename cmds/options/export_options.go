package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"strings"
)

type ExportConfig struct {
	OutputFile string
	PageSize   int
	Search     string
	Status     string
}

func NewExportConfig() *ExportConfig {
	return &ExportConfig{
		OutputFile: "certificates.xlsx",
		PageSize:   100,
	}
}

func (c *ExportConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.OutputFile, "output", "o", c.OutputFile, "Path of the spreadsheet to write")
	fs.IntVar(&c.PageSize, "page-size", c.PageSize, "Certificates fetched per request")
	fs.StringVar(&c.Search, "search", c.Search, "Filter by certificate number or instrument name")
	fs.StringVar(&c.Status, "status", c.Status, "Filter by lifecycle status")
}

func (c *ExportConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.New("export takes no arguments")
	}
	if !strings.HasSuffix(c.OutputFile, ".xlsx") {
		return errors.New("output file must end in .xlsx")
	}
	return nil
}
