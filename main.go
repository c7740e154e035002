package main

import (
	"os"

	"github.com/dontpressbutton/dontpress/cmd"
	"github.com/dontpressbutton/dontpress/internal/logging"
)

func main() {
	defer logging.ShutdownGlobal()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
