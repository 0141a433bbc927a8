// Package main implements the mutexlist code generator.
//
// mutexlist reads the list of mutexes a package needs from a YAML file and
// writes a Go file that declares one handle per entry. Keeping the list in
// one place gives every lock a stable name and keeps the set of locks fixed
// at build time.
//
// Usage:
//
//	mutexlist -i mutexes.yaml -o mutex_list.go
//	mutexlist -i mutexes.yaml -o - --unexported   # print to stdout
//	mutexlist version
//
// A list file:
//
//	package: fontcache
//	mutexes:
//	  - name: scaled_font_map
//	    doc: guards the scaled font map and its holdovers.
//	  - toy_font_face
//
// The usual way to run it is a go:generate line next to the list:
//
//	//go:generate go run github.com/kolkov/mutexcap/cmd/mutexlist -i mutexes.yaml -o mutex_list.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the generator flags.
type options struct {
	input      string
	output     string
	pkg        string
	unexported bool
	sorted     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mutexlist",
		Short: "Generate mutex handle declarations from a YAML list",
		Long: `mutexlist turns a YAML list of mutex names into a Go source file that
declares one github.com/kolkov/mutexcap/mutex handle per name.

The package clause comes from --package, the list's "package" key, the Go
files already in the output directory, or the import path of that
directory, in that order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := generate(cmd, opts); err != nil {
				cmd.PrintErrf("mutexlist: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "mutexes.yaml", "YAML list of mutexes")
	flags.StringVarP(&opts.output, "output", "o", "mutex_list.go", `generated Go file ("-" for stdout)`)
	flags.StringVarP(&opts.pkg, "package", "p", "", "package clause of the generated file")
	flags.BoolVar(&opts.unexported, "unexported", false, "declare unexported variables")
	flags.BoolVar(&opts.sorted, "sort", false, "declare handles sorted by name instead of list order")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mutexlist version %s\n", version)
		},
	}
}
