package cmds

import (
	"io/ioutil"

	"github.com/appscode/go/term"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tracecert/certctl/client"
	"github.com/tracecert/certctl/cmds/options"
)

func newCmdCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "create",
		DisableAutoGenTag: true,
		Run:               func(cmd *cobra.Command, args []string) {},
	}

	cmd.AddCommand(NewCmdCreateCertificate())
	cmd.AddCommand(NewCmdCreateTestData())

	return cmd
}

func NewCmdCreateCertificate() *cobra.Command {
	opts := options.NewCertificateCreateConfig()
	cmd := &cobra.Command{
		Use:               "certificate",
		Aliases:           []string{"cert"},
		Short:             "Create a certificate, optionally with its first test data batch",
		Example:           `certctl create certificate -f cert.yaml --test-data points.yaml`,
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

			cert, err := runCreateCertificate(c, opts)
			if err != nil {
				if partial, ok := client.IsPartialCreate(err); ok {
					// The certificate exists; only the measurements are
					// missing. Not a failure, not a clean success either.
					term.Infoln("certificate", partial.Certificate.CertNumber,
						"created, but the test data batch was rejected:", partial.Err)
					term.Infoln("retry with: certctl create testdata", partial.Certificate.CertNumber)
					return
				}
				term.Fatalln(err)
			}

			term.Successln("Certificate", cert.CertNumber, "created")
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runCreateCertificate(c *client.Client, opts *options.CertificateCreateConfig) (*client.Certificate, error) {
	req, err := certificateRequestFrom(opts)
	if err != nil {
		return nil, err
	}

	var points []client.TestDataPoint
	if opts.TestDataFile != "" {
		points, err = readTestDataFile(opts.TestDataFile)
		if err != nil {
			return nil, err
		}
	}

	return c.CreateWithTestData(opContext(), req, points)
}

func certificateRequestFrom(opts *options.CertificateCreateConfig) (client.CreateCertificateRequest, error) {
	req := client.CreateCertificateRequest{}
	if opts.FromFile != "" {
		data, err := ioutil.ReadFile(opts.FromFile)
		if err != nil {
			return req, errors.Wrapf(err, "reading %s", opts.FromFile)
		}
		if err := yaml.Unmarshal(data, &req); err != nil {
			return req, errors.Wrapf(err, "parsing %s", opts.FromFile)
		}
	}

	// Flags override file-provided fields.
	if opts.CertNumber != "" {
		req.CertNumber = opts.CertNumber
	}
	if opts.CustomerID != 0 {
		req.CustomerID = opts.CustomerID
	}
	if opts.InstrumentName != "" {
		req.InstrumentName = opts.InstrumentName
	}
	if opts.InstrumentNumber != "" {
		req.InstrumentNumber = opts.InstrumentNumber
	}
	if opts.Manufacturer != "" {
		req.Manufacturer = opts.Manufacturer
	}
	if opts.ModelSpec != "" {
		req.ModelSpec = opts.ModelSpec
	}
	if opts.InstrumentAccuracy != "" {
		req.InstrumentAccuracy = opts.InstrumentAccuracy
	}
	if opts.TestDate != "" {
		req.TestDate = opts.TestDate
	}
	if opts.ExpireDate != "" {
		req.ExpireDate = opts.ExpireDate
	}
	if opts.TestResult != "" {
		req.TestResult = opts.TestResult
	}

	if req.CertNumber == "" {
		req.CertNumber = client.SuggestCertNumber()
	}
	return req, nil
}

func readTestDataFile(path string) ([]client.TestDataPoint, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	points := []client.TestDataPoint{}
	if err := yaml.Unmarshal(data, &points); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return points, nil
}

func NewCmdCreateTestData() *cobra.Command {
	opts := options.NewTestDataCreateConfig()
	cmd := &cobra.Command{
		Use:               "testdata CERT-NUMBER",
		Aliases:           []string{"test-data", "td"},
		Short:             "Attach measurements to an existing certificate",
		Example:           `certctl create testdata CERT-1700000000000 --test-point P1 --actual 99.98`,
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

			err = runCreateTestData(c, opts)
			term.ExitOnError(err)

			term.Successln("Test data recorded for", opts.CertNumber)
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}

func runCreateTestData(c *client.Client, opts *options.TestDataCreateConfig) error {
	var points []client.TestDataPoint
	if opts.FromFile != "" {
		loaded, err := readTestDataFile(opts.FromFile)
		if err != nil {
			return err
		}
		points = loaded
	} else {
		points = []client.TestDataPoint{{
			DeviceAddr:       opts.DeviceAddr,
			TestPoint:        opts.TestPoint,
			ActualPercentage: opts.ActualPercentage,
			RatioError:       opts.RatioError,
			AngleError:       opts.AngleError,
		}}
	}
	return c.AddTestData(opContext(), opts.CertNumber, points)
}
