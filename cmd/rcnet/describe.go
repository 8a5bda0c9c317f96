package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/rcnet/pkg/report"
)

func newDescribeCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print dividers and the DC and corner frequency of every network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}
}

func runDescribe(cmd *cobra.Command, opts *rootOpts) error {
	file, err := opts.load()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, d := range file.Dividers {
		r1, r2 := d.Design()
		report.Divider(w, d.Title, r1, r2, d.RInput)
	}

	for _, n := range file.Networks {
		opts.logf("%s: %s = %v, params %v", n.Title, n.Input, n.Drive, n.ParamNames())
		net, err := n.Compile()
		if err != nil {
			return fmt.Errorf("compiling network: %w", err)
		}
		report.Describe(w, net)
	}
	return nil
}
