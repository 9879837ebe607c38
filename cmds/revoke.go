package cmds

import (
	"github.com/appscode/go/term"
	"github.com/spf13/cobra"
	"gopkg.in/AlecAivazis/survey.v1"

	"github.com/tracecert/certctl/cmds/options"
)

func NewCmdRevokeCertificate() *cobra.Command {
	opts := options.NewRevokeConfig()
	cmd := &cobra.Command{
		Use:               "revoke CERT-NUMBER",
		Short:             "Revoke a certificate",
		Long:              "Revocation is permanent. A revoked certificate fails public verification and leaves the normal lifecycle for good.",
		Example:           `certctl revoke CERT-1700000000000 --force`,
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

			if !opts.Force {
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Revoke certificate " + opts.CertNumber + "? This cannot be undone.",
				}
				err := survey.AskOne(prompt, &confirmed, nil)
				term.ExitOnError(err)
				if !confirmed {
					term.Infoln("Revocation cancelled")
					return
				}
			}

			cert, err := c.RevokeCertificate(opContext(), opts.CertNumber)
			term.ExitOnError(err)

			term.Successln("Certificate", cert.CertNumber, "revoked")
		},
	}
	opts.AddFlags(cmd.Flags())

	return cmd
}
