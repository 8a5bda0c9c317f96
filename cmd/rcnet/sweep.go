package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/rcnet/pkg/analysis"
	"github.com/edp1096/rcnet/pkg/netlist"
	"github.com/edp1096/rcnet/pkg/report"
	"github.com/edp1096/rcnet/pkg/units"
)

type sweepOpts struct {
	sweepType string
	points    int
	start     string
	stop      string
	plotDir   string
}

func newSweepCommand(root *rootOpts) *cobra.Command {
	opts := sweepOpts{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Print the AC response of every network's output filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sweep, err := opts.sweep()
			if err != nil {
				return err
			}

			file, err := root.load()
			if err != nil {
				return err
			}

			if opts.plotDir != "" {
				if err := os.MkdirAll(opts.plotDir, 0o755); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			for _, n := range file.Networks {
				net, err := n.Compile()
				if err != nil {
					return fmt.Errorf("compiling network: %w", err)
				}
				points, err := net.AC(sweep)
				if err != nil {
					return err
				}
				report.ACTable(w, net.Title, points)

				if opts.plotDir == "" {
					continue
				}
				path := filepath.Join(opts.plotDir, plotName(net.Title))
				root.logf("plotting %s", path)
				if err := report.PlotAC(path, net.Title, points); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sweepType, "type", string(analysis.Decade), "sweep type: DEC, OCT or LIN")
	cmd.Flags().IntVar(&opts.points, "points", 10, "points per decade or octave, or in total for LIN")
	cmd.Flags().StringVar(&opts.start, "start", "1Hz", "start frequency")
	cmd.Flags().StringVar(&opts.stop, "stop", "1MHz", "stop frequency")
	cmd.Flags().StringVar(&opts.plotDir, "plot", "", "also write a PNG gain plot per network to this directory")
	return cmd
}

func (o sweepOpts) sweep() (analysis.Sweep, error) {
	start, err := netlist.ParseAs[units.Hertz](o.start)
	if err != nil {
		return analysis.Sweep{}, fmt.Errorf("--start: %w", err)
	}
	stop, err := netlist.ParseAs[units.Hertz](o.stop)
	if err != nil {
		return analysis.Sweep{}, fmt.Errorf("--stop: %w", err)
	}
	return analysis.Sweep{
		Type:   analysis.SweepType(strings.ToUpper(o.sweepType)),
		Points: o.points,
		Start:  start,
		Stop:   stop,
	}, nil
}

// plotName turns "CP Circuit" into "cp_circuit.png".
func plotName(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".png"
}
