package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CertificateCreateConfig struct {
	FromFile     string
	TestDataFile string

	CertNumber         string
	CustomerID         int64
	InstrumentName     string
	InstrumentNumber   string
	Manufacturer       string
	ModelSpec          string
	InstrumentAccuracy string
	TestDate           string
	ExpireDate         string
	TestResult         string
}

func NewCertificateCreateConfig() *CertificateCreateConfig {
	return &CertificateCreateConfig{
		TestResult: "qualified",
	}
}

func (c *CertificateCreateConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.FromFile, "file", "f", c.FromFile, "Load certificate fields from a YAML/JSON file")
	fs.StringVar(&c.TestDataFile, "test-data", c.TestDataFile, "Load the initial test data batch from a YAML/JSON file")
	fs.StringVar(&c.CertNumber, "cert-number", c.CertNumber, "Certificate number; generated when omitted")
	fs.Int64Var(&c.CustomerID, "customer", c.CustomerID, "Customer id the certificate belongs to")
	fs.StringVar(&c.InstrumentName, "instrument", c.InstrumentName, "Instrument name")
	fs.StringVar(&c.InstrumentNumber, "instrument-number", c.InstrumentNumber, "Instrument number")
	fs.StringVar(&c.Manufacturer, "manufacturer", c.Manufacturer, "Manufacturer")
	fs.StringVar(&c.ModelSpec, "model", c.ModelSpec, "Model / specification")
	fs.StringVar(&c.InstrumentAccuracy, "accuracy", c.InstrumentAccuracy, "Instrument accuracy class")
	fs.StringVar(&c.TestDate, "test-date", c.TestDate, "Test date (YYYY-MM-DD)")
	fs.StringVar(&c.ExpireDate, "expire-date", c.ExpireDate, "Expiry date (YYYY-MM-DD); backend defaults it when omitted")
	fs.StringVar(&c.TestResult, "result", c.TestResult, "Test result: qualified or unqualified")
}

func (c *CertificateCreateConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.New("create certificate takes no arguments; use flags or --file")
	}
	if c.FromFile == "" && c.InstrumentName == "" {
		return errors.New("either --file or at least --instrument and --customer are required")
	}
	return nil
}
