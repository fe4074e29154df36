package main

import (
	"fmt"
	"os"

	"github.com/xrelkd/axdot/cmd/axdot"
	"github.com/xrelkd/axdot/pkg/ui"
)

func main() {
	rootCmd := axdot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styled := ui.Resolve(ui.FormatAuto, os.Stderr) == ui.FormatTerminal
		fmt.Fprintln(os.Stderr, ui.RenderError(err, styled))
		os.Exit(1)
	}
}
