// cmd/gallery/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mwiater/gallery/internal/appconfig"
	cmd "github.com/mwiater/gallery/internal/cli"
	"github.com/mwiater/gallery/internal/logging"
)

// Indirections for the startup wiring so tests can substitute each step.
var (
	loadConfig   = appconfig.Load
	initLogging  = logging.Init
	closeLogging = logging.Close
	executeCmd   = cmd.Execute
)

// main loads the application configuration, opens the session log, and
// delegates to the cobra root command defined in the gallery package.
func main() {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := initLogging(cfg.LogFilePath()); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeLogging(); err != nil {
			fmt.Fprintf(os.Stderr, "close logging: %v\n", err)
		}
	}()

	executeCmd()
}
