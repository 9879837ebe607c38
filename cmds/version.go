package cmds

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newCmdVersion(version string) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the certctl version",
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("certctl %s %s/%s\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
