package cmds

import (
	"fmt"

	"github.com/appscode/go/term"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
	"github.com/tracecert/certctl/utils/printer"
)

func NewCmdExport() *cobra.Command {
	opts := options.NewExportConfig()
	cmd := &cobra.Command{
		Use:               "export",
		Short:             "Export the certificate directory to a spreadsheet",
		Example:           `certctl export -o certificates.xlsx --status issued`,
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

			n, err := runExport(c, opts)
			term.ExitOnError(err)

			term.Successln(fmt.Sprintf("Wrote %d certificates to %s", n, opts.OutputFile))
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

var exportHeader = []string{
	"Certificate No", "Customer ID", "Instrument", "Instrument No",
	"Manufacturer", "Model", "Test Date", "Expire Date",
	"Result", "Status", "Blockchain Tx",
}

// runExport walks the directory page by page and writes every matching
// certificate into one sheet.
func runExport(c *client.Client, opts *options.ExportConfig) (int, error) {
	f := excelize.NewFile()
	sheetName := "Certificates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return 0, err
		}
	}

	filter := client.CertificateFilter{Search: opts.Search, Status: opts.Status}
	row := 2
	written := 0
	for page := 1; ; page++ {
		result, err := c.ListCertificates(opContext(), page, opts.PageSize, filter)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to load page %d", page)
		}

		for i := range result.Items {
			cert := &result.Items[i]
			values := []interface{}{
				cert.CertNumber,
				cert.CustomerID,
				cert.InstrumentName,
				cert.InstrumentNumber,
				cert.Manufacturer,
				cert.ModelSpec,
				printer.FormatDate(cert.TestDate),
				printer.FormatDate(cert.ExpireDate),
				cert.TestResult,
				cert.Status,
				cert.BlockchainTxID,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return 0, err
				}
				if err := f.SetCellValue(sheetName, cell, v); err != nil {
					return 0, err
				}
			}
			row++
			written++
		}

		if page >= result.TotalPages || len(result.Items) == 0 {
			break
		}
	}

	if err := f.SaveAs(opts.OutputFile); err != nil {
		return 0, errors.Wrap(err, "failed to write spreadsheet")
	}
	return written, nil
}
