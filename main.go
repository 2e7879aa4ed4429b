// Command ktfmt formats Kotlin source files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/grodin/ktfmt/internal/cli"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err == nil {
		return
	}
	if errors.Is(err, cli.ErrFilesChanged) {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
