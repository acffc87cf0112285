package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/flatcfg/internal/cli"
	"github.com/arthur-debert/flatcfg/internal/version"
)

// Writes flatcfg.1 to stdout, or one page per command into the directory
// given as the only argument.
func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FLATCFG",
		Section: "1",
		Source:  "flatcfg " + version.Version,
		Manual:  "flatcfg manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
