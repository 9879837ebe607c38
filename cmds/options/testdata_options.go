package options

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type TestDataCreateConfig struct {
	CertNumber string
	FromFile   string

	DeviceAddr       string
	TestPoint        string
	ActualPercentage float64
	RatioError       float64
	AngleError       float64
}

func NewTestDataCreateConfig() *TestDataCreateConfig {
	return &TestDataCreateConfig{
		DeviceAddr: "DEV-01",
	}
}

func (c *TestDataCreateConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.FromFile, "file", "f", c.FromFile, "Load the test data batch from a YAML/JSON file")
	fs.StringVar(&c.DeviceAddr, "device", c.DeviceAddr, "Measuring device address")
	fs.StringVar(&c.TestPoint, "test-point", c.TestPoint, "Test point label, e.g. P1")
	fs.Float64Var(&c.ActualPercentage, "actual", c.ActualPercentage, "Actual percentage measured")
	fs.Float64Var(&c.RatioError, "ratio-error", c.RatioError, "Ratio error")
	fs.Float64Var(&c.AngleError, "angle-error", c.AngleError, "Angle error")
}

func (c *TestDataCreateConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing certificate number")
	}
	if len(args) > 1 {
		return errors.New("multiple certificate numbers provided")
	}
	c.CertNumber = args[0]
	if c.FromFile == "" && c.TestPoint == "" {
		return errors.New("either --file or --test-point is required")
	}
	return nil
}

type TestDataGetConfig struct {
	CertNumber string
	Output     string
}

func NewTestDataGetConfig() *TestDataGetConfig {
	return &TestDataGetConfig{}
}

func (c *TestDataGetConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output format. One of: json|yaml")
}

func (c *TestDataGetConfig) ValidateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing certificate number")
	}
	if len(args) > 1 {
		return errors.New("multiple certificate numbers provided")
	}
	c.CertNumber = args[0]
	return nil
}
