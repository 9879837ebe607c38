package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/workflow"
)

// PrintWorkflow renders the lifecycle line of a certificate, e.g.
// "[x] Draft -> [x] Testing -> [ ] Completed -> [ ] Issued  <- Testing".
func PrintWorkflow(out io.Writer, steps []workflow.Step) error {
	parts := make([]string, 0, len(steps))
	current := ""
	for _, s := range steps {
		mark := " "
		if s.Reached {
			mark = "x"
		}
		if s.Status == workflow.StatusRevoked {
			mark = "!"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", mark, s.Label))
		if s.Current {
			current = s.Label
		}
	}
	line := strings.Join(parts, " -> ")
	if current != "" {
		line += "  <- " + current
	}
	_, err := fmt.Fprintln(out, line)
	return err
}

// PrintCertificateDetail renders the full detail view: the lifecycle line,
// the field grid, the measurement table, and the anchoring panel.
func PrintCertificateDetail(out io.Writer, cert *client.Certificate, chain *client.BlockchainInfo, points []client.TestDataPoint) error {
	fmt.Fprintln(out, "Workflow:")
	if err := PrintWorkflow(out, workflow.Render(cert.Status)); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nCertificate:")
	w := GetNewTabWriter(out)
	fmt.Fprintf(w, "Cert Number:\t%s\n", cert.CertNumber)
	fmt.Fprintf(w, "Instrument:\t%s\n", cert.InstrumentName)
	fmt.Fprintf(w, "Instrument No:\t%s\n", orDash(cert.InstrumentNumber))
	fmt.Fprintf(w, "Customer:\t%d\n", cert.CustomerID)
	fmt.Fprintf(w, "Manufacturer:\t%s\n", orDash(cert.Manufacturer))
	fmt.Fprintf(w, "Model:\t%s\n", orDash(cert.ModelSpec))
	fmt.Fprintf(w, "Accuracy:\t%s\n", orDash(cert.InstrumentAccuracy))
	fmt.Fprintf(w, "Test Date:\t%s\n", FormatDate(cert.TestDate))
	fmt.Fprintf(w, "Expires:\t%s\n", FormatDate(cert.ExpireDate))
	fmt.Fprintf(w, "Result:\t%s\n", testResultText(cert.TestResult))
	fmt.Fprintf(w, "Status:\t%s\n", workflow.StatusText(cert.Status))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nTest data:")
	h := NewHumanReadablePrinter(PrintOptions{})
	if err := h.PrintObj(points, out); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nBlockchain:")
	return printAnchoring(out, cert, chain)
}

// PrintVerifyResult renders a verification outcome. An invalid result
// prints only the failure notice; every panel belonging to a previous
// certificate stays cleared.
func PrintVerifyResult(out io.Writer, res *client.VerifyResult, points []client.TestDataPoint) error {
	if !res.IsValid {
		_, err := fmt.Fprintf(out, "INVALID  %s: %s\n", res.CertNumber, orDash(res.Message))
		return err
	}

	fmt.Fprintf(out, "VALID  %s: %s\n", res.CertNumber, orDash(res.Message))

	if res.Certificate != nil {
		fmt.Fprintln(out, "\nWorkflow:")
		if err := PrintWorkflow(out, workflow.Render(res.Certificate.Status)); err != nil {
			return err
		}

		w := GetNewTabWriter(out)
		fmt.Fprintln(out, "\nCertificate:")
		fmt.Fprintf(w, "Cert Number:\t%s\n", res.Certificate.CertNumber)
		fmt.Fprintf(w, "Instrument:\t%s\n", res.Certificate.InstrumentName)
		fmt.Fprintf(w, "Manufacturer:\t%s\n", orDash(res.Certificate.Manufacturer))
		fmt.Fprintf(w, "Test Date:\t%s\n", FormatDate(res.Certificate.TestDate))
		fmt.Fprintf(w, "Expires:\t%s\n", FormatDate(res.Certificate.ExpireDate))
		fmt.Fprintf(w, "Status:\t%s\n", workflow.StatusText(res.Certificate.Status))
		if err := w.Flush(); err != nil {
			return err
		}

		if len(points) > 0 {
			fmt.Fprintln(out, "\nTest data:")
			h := NewHumanReadablePrinter(PrintOptions{})
			if err := h.PrintObj(points, out); err != nil {
				return err
			}
		}
	}

	if res.BlockchainTxID != "" {
		fmt.Fprintln(out, "\nBlockchain:")
		w := GetNewTabWriter(out)
		fmt.Fprintf(w, "Tx ID:\t%s\n", res.BlockchainTxID)
		fmt.Fprintf(w, "Hash:\t%s\n", orDash(res.BlockchainHash))
		return w.Flush()
	}
	return nil
}

func printAnchoring(out io.Writer, cert *client.Certificate, chain *client.BlockchainInfo) error {
	if !cert.Anchored() {
		_, err := fmt.Fprintln(out, "Not anchored yet.")
		return err
	}
	w := GetNewTabWriter(out)
	fmt.Fprintf(w, "Tx ID:\t%s\n", cert.BlockchainTxID)
	fmt.Fprintf(w, "Hash:\t%s\n", orDash(cert.BlockchainHash))
	if chain != nil {
		if chain.BlockNumber > 0 {
			fmt.Fprintf(w, "Block:\t%d\n", chain.BlockNumber)
		}
		if chain.TransactionHash != "" {
			fmt.Fprintf(w, "Tx Hash:\t%s\n", chain.TransactionHash)
		}
	}
	return w.Flush()
}

func testResultText(result string) string {
	switch result {
	case "qualified":
		return "qualified"
	case "unqualified":
		return "UNQUALIFIED"
	}
	return orDash(result)
}
