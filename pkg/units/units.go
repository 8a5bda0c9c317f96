// Package units defines the physical quantities used to describe one-port
// networks. Each kind is its own float64 type, so mixing kinds (a Volt plus
// an Ohm) is rejected by the compiler. Conversions between kinds exist only
// where a relation is defined in relations.go.
package units

import (
	"github.com/edp1096/rcnet/internal/consts"
	"github.com/edp1096/rcnet/pkg/util"
)

// SI prefixes for building values, e.g. units.Ohm(330 * units.Kilo).
const (
	Mega  = consts.MEGA
	Kilo  = consts.KILO
	Milli = consts.MILLI
	Micro = consts.MICRO
	Nano  = consts.NANO
	Pico  = consts.PICO
)

type (
	Ohm     float64 // Resistance
	Siemens float64 // Conductance
	Second  float64 // Time
	Farad   float64 // Capacitance
	Hertz   float64 // Frequency
	Volt    float64 // Voltage
	Amp     float64 // Current
	Watt    float64 // Power
)

// Measure is satisfied by every quantity kind.
type Measure interface {
	~float64
	Symbol() string
}

func format[T Measure](q T) string {
	return util.FormatEngineering(float64(q), q.Symbol())
}

func (Ohm) Symbol() string     { return "Ω" }
func (Siemens) Symbol() string { return "S" }
func (Second) Symbol() string  { return "s" }
func (Farad) Symbol() string   { return "F" }
func (Hertz) Symbol() string   { return "Hz" }
func (Volt) Symbol() string    { return "V" }
func (Amp) Symbol() string     { return "A" }
func (Watt) Symbol() string    { return "W" }

func (r Ohm) String() string     { return format(r) }
func (g Siemens) String() string { return format(g) }
func (t Second) String() string  { return format(t) }
func (c Farad) String() string   { return format(c) }
func (f Hertz) String() string   { return format(f) }
func (v Volt) String() string    { return format(v) }
func (i Amp) String() string     { return format(i) }
func (p Watt) String() string    { return format(p) }

// Scale multiplies by a dimensionless factor.
func (r Ohm) Scale(s float64) Ohm         { return Ohm(float64(r) * s) }
func (g Siemens) Scale(s float64) Siemens { return Siemens(float64(g) * s) }
func (t Second) Scale(s float64) Second   { return Second(float64(t) * s) }
func (c Farad) Scale(s float64) Farad     { return Farad(float64(c) * s) }
func (f Hertz) Scale(s float64) Hertz     { return Hertz(float64(f) * s) }
func (v Volt) Scale(s float64) Volt       { return Volt(float64(v) * s) }
func (i Amp) Scale(s float64) Amp         { return Amp(float64(i) * s) }
func (p Watt) Scale(s float64) Watt       { return Watt(float64(p) * s) }

// Div divides by a dimensionless factor.
func (r Ohm) Div(s float64) Ohm         { return Ohm(float64(r) / s) }
func (g Siemens) Div(s float64) Siemens { return Siemens(float64(g) / s) }
func (t Second) Div(s float64) Second   { return Second(float64(t) / s) }
func (c Farad) Div(s float64) Farad     { return Farad(float64(c) / s) }
func (f Hertz) Div(s float64) Hertz     { return Hertz(float64(f) / s) }
func (v Volt) Div(s float64) Volt       { return Volt(float64(v) / s) }
func (i Amp) Div(s float64) Amp         { return Amp(float64(i) / s) }
func (p Watt) Div(s float64) Watt       { return Watt(float64(p) / s) }

// Ratio divides two quantities of the same kind.
func (r Ohm) Ratio(b Ohm) float64         { return float64(r) / float64(b) }
func (g Siemens) Ratio(b Siemens) float64 { return float64(g) / float64(b) }
func (t Second) Ratio(b Second) float64   { return float64(t) / float64(b) }
func (c Farad) Ratio(b Farad) float64     { return float64(c) / float64(b) }
func (f Hertz) Ratio(b Hertz) float64     { return float64(f) / float64(b) }
func (v Volt) Ratio(b Volt) float64       { return float64(v) / float64(b) }
func (i Amp) Ratio(b Amp) float64         { return float64(i) / float64(b) }
func (p Watt) Ratio(b Watt) float64       { return float64(p) / float64(b) }
