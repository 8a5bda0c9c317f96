package netlist

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

var (
	ErrSyntax       = errors.New("netlist: syntax error")
	ErrBadValue     = errors.New("netlist: invalid value")
	ErrUnknownName  = errors.New("netlist: unknown name")
	ErrIncompatible = errors.New("netlist: incompatible operands")
	ErrNotCircuit   = errors.New("netlist: expression is not a circuit")
)

// Value is what literals and expressions evaluate to: a bare number
// (float64), one of the units quantities or a circuit.Cct.
type Value struct {
	x any
}

func Number(f float64) Value { return Value{f} }

func Quantity[T units.Measure](q T) Value { return Value{q} }

func Circuit(c circuit.Cct) Value { return Value{c} }

// Kind names the unit of v: "number", a unit symbol such as "Ω", or "circuit".
func (v Value) Kind() string {
	switch x := v.x.(type) {
	case float64:
		return "number"
	case circuit.Cct:
		return "circuit"
	case interface{ Symbol() string }:
		return x.Symbol()
	default:
		return "invalid"
	}
}

func (v Value) String() string {
	switch x := v.x.(type) {
	case nil:
		return "<nil>"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Cct returns the circuit held by v, if any.
func (v Value) Cct() (circuit.Cct, bool) {
	c, ok := v.x.(circuit.Cct)
	return c, ok
}

// Interface returns the underlying number, quantity or circuit.
func (v Value) Interface() any { return v.x }

// Zero returns the zero value of the same kind as v.
func (v Value) Zero() Value {
	switch v.x.(type) {
	case float64:
		return Value{0.0}
	case units.Ohm:
		return Value{units.Ohm(0)}
	case units.Siemens:
		return Value{units.Siemens(0)}
	case units.Second:
		return Value{units.Second(0)}
	case units.Farad:
		return Value{units.Farad(0)}
	case units.Hertz:
		return Value{units.Hertz(0)}
	case units.Volt:
		return Value{units.Volt(0)}
	case units.Amp:
		return Value{units.Amp(0)}
	case units.Watt:
		return Value{units.Watt(0)}
	default:
		return Value{}
	}
}

// Multipliers accepted in front of a unit symbol. Unlike SPICE, "M" is mega
// so that values printed by the units package parse back unchanged.
var prefixMap = map[string]float64{
	"":    1,
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"M":   1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"μ":   1e-6,  // micro (greek mu)
	"µ":   1e-6,  // micro (micro sign)
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

// Unit symbols, longest first so "ohm" is tried before shorter symbols.
var unitSymbols = []string{"ohm", "Ohm", "Hz", "Ω", "\u2126", "V", "A", "W", "F", "S", "s"}

var valueRe = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)(\S*)$`)

// ParseValue parses a number with an optional SI prefix and unit symbol,
// e.g. "330k", "330kΩ", "1.5nF", "-12V", "50mA". Without a unit symbol the
// result is a bare number.
func ParseValue(val string) (Value, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return Value{}, fmt.Errorf("%w: %q", ErrBadValue, val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrBadValue, val, err)
	}

	multiplier, unit, ok := splitSuffix(matches[2])
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown suffix %q in %q", ErrBadValue, matches[2], val)
	}

	return quantity(num*multiplier, unit), nil
}

func splitSuffix(suffix string) (float64, string, bool) {
	for _, sym := range unitSymbols {
		if !strings.HasSuffix(suffix, sym) {
			continue
		}
		if multiplier, ok := prefixMap[strings.TrimSuffix(suffix, sym)]; ok {
			return multiplier, sym, true
		}
	}
	multiplier, ok := prefixMap[suffix]
	return multiplier, "", ok
}

func quantity(num float64, unit string) Value {
	switch unit {
	case "ohm", "Ohm", "Ω", "\u2126":
		return Value{units.Ohm(num)}
	case "S":
		return Value{units.Siemens(num)}
	case "s":
		return Value{units.Second(num)}
	case "F":
		return Value{units.Farad(num)}
	case "Hz":
		return Value{units.Hertz(num)}
	case "V":
		return Value{units.Volt(num)}
	case "A":
		return Value{units.Amp(num)}
	case "W":
		return Value{units.Watt(num)}
	default:
		return Value{num}
	}
}

// ParseAs parses val and requires the result to be of kind T.
func ParseAs[T units.Measure](val string) (T, error) {
	v, err := ParseValue(val)
	if err != nil {
		return 0, err
	}
	q, ok := v.x.(T)
	if !ok {
		var want T
		return 0, fmt.Errorf("%w: %q is %s, want %s", ErrBadValue, val, v.Kind(), want.Symbol())
	}
	return q, nil
}
