package main

import (
	"os"

	"github.com/tracecert/certctl/cmds"
)

var Version = "0.4.0"

func main() {
	if err := cmds.NewRootCmd(Version).Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
