// Command pns extracts public names from text and indexes them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/pns/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands report their own errors; flag and argument errors are
		// printed here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
