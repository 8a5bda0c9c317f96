package main

import (
	"bytes"
	_ "embed"
	"log"

	"github.com/spf13/cobra"

	"github.com/edp1096/rcnet/pkg/netlist"
)

//go:embed networks.yaml
var defaultNetworks []byte

type rootOpts struct {
	file    string
	verbose bool
}

// load reads the network file named by -f, or the built-in examples.
func (o *rootOpts) load() (*netlist.File, error) {
	if o.file == "" {
		o.logf("using built-in networks")
		return netlist.Decode(bytes.NewReader(defaultNetworks))
	}
	o.logf("reading %s", o.file)
	return netlist.LoadFile(o.file)
}

func (o *rootOpts) logf(format string, args ...any) {
	if o.verbose {
		log.Printf(format, args...)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "rcnet",
		Short:         "Thevenin/Norton calculator for resistor-source networks",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "network file (default: built-in examples)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress")

	cmd.AddCommand(
		newDescribeCommand(opts),
		newEvalCommand(opts),
		newSweepCommand(opts),
		newDividerCommand(),
	)
	return cmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("rcnet: ")

	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
