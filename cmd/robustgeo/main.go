// Command robustgeo evaluates exact geometric predicates from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/robustgeo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "robustgeo:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
