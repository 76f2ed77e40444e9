package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puerro-dev/puerro/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬ ┬┌─┐┬─┐┬─┐┌─┐
  ├─┘│ │├┤ ├┬┘├┬┘│ │
  ┴  └─┘└─┘┴└─┴└─└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "puerro",
		Short: "Server-driven reactive UI toolkit for Go",
		Long: `Puerro pairs a virtual DOM reconciler with observable state
containers. State changes re-run your view function; the differ mutates a
live tree in place so only changed subtrees are re-rendered.

The CLI hosts the development server and exports static HTML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var perr *errors.PuerroError
		if stderrors.As(err, &perr) {
			fmt.Fprint(os.Stderr, perr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Puerro ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("\033[36m→\033[0m %s\n", fmt.Sprintf(format, args...))
}
