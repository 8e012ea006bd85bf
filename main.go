package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/passmap/cmd"
	"github.com/PolarWolf314/passmap/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		os.Exit(1)
	}
}
