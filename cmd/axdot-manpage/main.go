package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/xrelkd/axdot/cmd/axdot"
	"github.com/xrelkd/axdot/internal/version"
)

func main() {
	rootCmd := axdot.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "AXDOT",
		Section: "1",
		Source:  "axdot " + version.Version,
		Manual:  "axdot manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
