package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/rcnet/pkg/analysis"
	"github.com/edp1096/rcnet/pkg/netlist"
	"github.com/edp1096/rcnet/pkg/report"
	"github.com/edp1096/rcnet/pkg/units"
)

type dividerOpts struct {
	title  string
	vin    string
	vout   string
	margin float64
	rInput string
}

func newDividerCommand() *cobra.Command {
	opts := dividerOpts{}

	cmd := &cobra.Command{
		Use:   "divider",
		Short: "Design a divider from a bipolar input to a 0..vout ADC range",
		Long: `Design r1 and r2 of the network

  vout + r1 | r2 | vin + rinput

so that +/-vin maps into 0..vout with the given headroom.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vin, err := netlist.ParseAs[units.Volt](opts.vin)
			if err != nil {
				return fmt.Errorf("--vin: %w", err)
			}
			vout, err := netlist.ParseAs[units.Volt](opts.vout)
			if err != nil {
				return fmt.Errorf("--vout: %w", err)
			}
			rInput, err := netlist.ParseAs[units.Ohm](opts.rInput)
			if err != nil {
				return fmt.Errorf("--rinput: %w", err)
			}
			if opts.margin < 0 || opts.margin >= 1 {
				return fmt.Errorf("--margin %v: want 0 <= margin < 1", opts.margin)
			}

			r1, r2 := analysis.DesignDivider(vin, vout, opts.margin, rInput)
			report.Divider(cmd.OutOrStdout(), opts.title, r1, r2, rInput)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "divider", "label for the output line")
	cmd.Flags().StringVar(&opts.vin, "vin", "12V", "peak input voltage")
	cmd.Flags().StringVar(&opts.vout, "vout", "3V", "ADC full scale")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0.1, "headroom as a fraction of vout")
	cmd.Flags().StringVar(&opts.rInput, "rinput", "300kohm", "input resistor")
	return cmd
}
