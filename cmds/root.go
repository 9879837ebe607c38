package cmds

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tracecert/certctl/config"
)

// NewRootCmd builds the certctl command tree.
func NewRootCmd(version string) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:               "certctl [command]",
		Short:             `certctl - manage metering calibration certificates`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			// A .env beside the working directory may carry CERTCTL_*
			// overrides; its absence is fine.
			_ = godotenv.Load()

			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			c.Flags().VisitAll(func(flag *pflag.Flag) {
				logrus.Debugf("FLAG: --%s=%q", flag.Name, flag.Value)
			})

			return config.CreateDefaultConfigIfAbsent(GetConfigPath(c))
		},
	}
	rootCmd.PersistentFlags().String("config", config.DefaultConfigPath(), "Path to the certctl config file")
	rootCmd.PersistentFlags().String("endpoint", "", "API endpoint, e.g. http://localhost:8080/api/v1 (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewCmdLogin())
	rootCmd.AddCommand(NewCmdLogout())
	rootCmd.AddCommand(newCmdGet())
	rootCmd.AddCommand(newCmdCreate())
	rootCmd.AddCommand(NewCmdDescribe())
	rootCmd.AddCommand(NewCmdEditCertificate())
	rootCmd.AddCommand(NewCmdRevokeCertificate())
	rootCmd.AddCommand(NewCmdVerify())
	rootCmd.AddCommand(NewCmdDashboard())
	rootCmd.AddCommand(NewCmdExport())
	rootCmd.AddCommand(newCmdVersion(version))

	return rootCmd
}
