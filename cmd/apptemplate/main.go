// Command apptemplate is the entry point of the application template.
//
// It parses the command line, configures logging and optionally runs the
// logging demo. See package cli for the flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipp01105/apptemplate/cli"
)

func main() {
	// Cancel the demo on Ctrl+C or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Run(ctx, os.Exit, os.Stdout, os.Stderr, os.Args[1:]...)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", cli.Name, err)
		os.Exit(1)
	}
}
