package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/rcnet/pkg/netlist"
)

func newEvalCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR [name=value ...]",
		Short: "Evaluate one network expression",
		Example: `  rcnet eval "5V + 10kohm | 10kohm"
  rcnet eval "v + r1 | r2" v=12V r1=75kohm r2=100kohm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := parseBindings(args[1:])
			if err != nil {
				return err
			}

			expr, err := netlist.Parse(args[0])
			if err != nil {
				return err
			}
			opts.logf("names: %v", expr.Names())

			v, err := expr.Eval(env)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, v)
			if c, ok := v.Cct(); ok {
				fmt.Fprintf(w, "Voc = %v, Isc = %v, Req = %v\n",
					c.OpenCircuitVoltage(), c.ShortCircuitCurrent(), c.EquivalentResistance())
			}
			return nil
		},
	}
}

// parseBindings turns name=literal arguments into an Env.
func parseBindings(args []string) (netlist.Env, error) {
	env := make(netlist.Env, len(args))
	for _, arg := range args {
		name, lit, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("binding %q: want name=value", arg)
		}
		v, err := netlist.ParseValue(lit)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", arg, err)
		}
		env[name] = v
	}
	return env, nil
}
