package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CertificateEditConfig struct {
	CertNumber string

	CustomerID         int64
	InstrumentName     string
	InstrumentNumber   string
	Manufacturer       string
	ModelSpec          string
	InstrumentAccuracy string
	TestDate           string
	ExpireDate         string
	TestResult         string
	Status             string

	changed map[string]bool
}

func NewCertificateEditConfig() *CertificateEditConfig {
	return &CertificateEditConfig{}
}

func (c *CertificateEditConfig) AddFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&c.CustomerID, "customer", c.CustomerID, "Customer id the certificate belongs to")
	fs.StringVar(&c.InstrumentName, "instrument", c.InstrumentName, "Instrument name")
	fs.StringVar(&c.InstrumentNumber, "instrument-number", c.InstrumentNumber, "Instrument number")
	fs.StringVar(&c.Manufacturer, "manufacturer", c.Manufacturer, "Manufacturer")
	fs.StringVar(&c.ModelSpec, "model", c.ModelSpec, "Model / specification")
	fs.StringVar(&c.InstrumentAccuracy, "accuracy", c.InstrumentAccuracy, "Instrument accuracy class")
	fs.StringVar(&c.TestDate, "test-date", c.TestDate, "Test date (YYYY-MM-DD)")
	fs.StringVar(&c.ExpireDate, "expire-date", c.ExpireDate, "Expiry date (YYYY-MM-DD)")
	fs.StringVar(&c.TestResult, "result", c.TestResult, "Test result: qualified or unqualified")
	fs.StringVar(&c.Status, "status", c.Status, "Lifecycle status")
}

func (c *CertificateEditConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing certificate number")
	}
	if len(args) > 1 {
		return errors.New("multiple certificate numbers provided")
	}
	c.CertNumber = args[0]

	c.changed = map[string]bool{}
	changedAny := false
	cmd.Flags().Visit(func(f *pflag.Flag) {
		c.changed[f.Name] = true
		changedAny = true
	})
	if !changedAny {
		return errors.New("nothing to change; pass at least one field flag")
	}
	return nil
}

// Changed reports whether the named flag was set on the command line, so
// the edit only rewrites fields the user actually touched.
func (c *CertificateEditConfig) Changed(name string) bool {
	return c.changed[name]
}
