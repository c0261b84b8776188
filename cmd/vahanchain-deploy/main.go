// Command vahanchain-deploy deploys the SafeDriverSBT contract.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		log.Error("deployment failed", "err", err)
		os.Exit(1)
	}
}
