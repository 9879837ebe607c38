package printer

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/workflow"
)

// HumanReadablePrinter prints console resources as tabwriter tables.
type HumanReadablePrinter struct {
	options PrintOptions
}

func NewHumanReadablePrinter(options PrintOptions) *HumanReadablePrinter {
	return &HumanReadablePrinter{options: options}
}

func (h *HumanReadablePrinter) PrintObj(obj interface{}, w io.Writer) error {
	switch v := obj.(type) {
	case *client.CertificatePage:
		return h.printCertificates(v.Items, w)
	case []client.Certificate:
		return h.printCertificates(v, w)
	case *client.Certificate:
		return h.printCertificates([]client.Certificate{*v}, w)
	case []client.TestDataPoint:
		return h.printTestData(v, w)
	case []client.HistoryRecord:
		return h.printHistory(v, w)
	case client.Summary:
		return h.printSummary(v, w)
	case *client.User:
		return h.printUser(v, w)
	default:
		return errors.Errorf("no printer registered for %T", obj)
	}
}

func (h *HumanReadablePrinter) printCertificates(certs []client.Certificate, out io.Writer) error {
	w := GetNewTabWriter(out)
	if h.options.Wide {
		fmt.Fprintln(w, "CERT-NUMBER\tINSTRUMENT\tCUSTOMER\tMANUFACTURER\tMODEL\tTEST-DATE\tEXPIRES\tRESULT\tSTATUS\tANCHORED")
	} else {
		fmt.Fprintln(w, "CERT-NUMBER\tINSTRUMENT\tCUSTOMER\tTEST-DATE\tEXPIRES\tSTATUS\tANCHORED")
	}
	for _, c := range certs {
		if h.options.Wide {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				c.CertNumber, c.InstrumentName, c.CustomerID,
				orDash(c.Manufacturer), orDash(c.ModelSpec),
				FormatDate(c.TestDate), FormatDate(c.ExpireDate),
				c.TestResult, workflow.StatusText(c.Status), anchoredText(&c))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				c.CertNumber, c.InstrumentName, c.CustomerID,
				FormatDate(c.TestDate), FormatDate(c.ExpireDate),
				workflow.StatusText(c.Status), anchoredText(&c))
		}
	}
	return w.Flush()
}

func (h *HumanReadablePrinter) printTestData(points []client.TestDataPoint, out io.Writer) error {
	if len(points) == 0 {
		_, err := fmt.Fprintln(out, "No test data recorded.")
		return err
	}
	w := GetNewTabWriter(out)
	fmt.Fprintln(w, "DEVICE\tTEST-POINT\tACTUAL-%\tRATIO-ERROR\tANGLE-ERROR\tMEASURED-AT")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.2f\t%.2f\t%s\n",
			p.DeviceAddr, p.TestPoint, p.ActualPercentage, p.RatioError, p.AngleError,
			FormatDateTime(p.TestTimestamp))
	}
	return w.Flush()
}

func (h *HumanReadablePrinter) printHistory(records []client.HistoryRecord, out io.Writer) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "No history recorded.")
		return err
	}
	w := GetNewTabWriter(out)
	fmt.Fprintln(w, "TX-ID\tTIMESTAMP\tDELETED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%t\n", r.TxID, r.Timestamp, r.IsDelete)
	}
	return w.Flush()
}

func (h *HumanReadablePrinter) printSummary(s client.Summary, out io.Writer) error {
	w := GetNewTabWriter(out)
	fmt.Fprintln(w, "TOTAL\tVALID\tEXPIRING-SOON\tON-CHAIN")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", s.Total, s.Valid, s.ExpiringSoon, s.Anchored)
	return w.Flush()
}

func (h *HumanReadablePrinter) printUser(u *client.User, out io.Writer) error {
	w := GetNewTabWriter(out)
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE")
	fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.Role)
	return w.Flush()
}

// FormatDate renders a calendar date, "-" when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatDateTime renders a timestamp, "-" when unset.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func anchoredText(c *client.Certificate) string {
	if c.Anchored() {
		return "yes"
	}
	return "no"
}
