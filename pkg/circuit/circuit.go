// Package circuit composes linear one-ports held as Thevenin or Norton
// equivalents.
//
// A Cct is built from a source and a passive element, then extended with
// Series and Parallel:
//
//	vcc + r1 | r2
//
// is written
//
//	circuit.NewThevenin(vcc, r1).ParallelOhm(r2)
//
// Values are never modified; every operation returns a new Cct.
package circuit

import (
	"fmt"

	"github.com/edp1096/rcnet/pkg/units"
)

// Cct is a linear one-port. The only implementations are Thevenin and Norton.
type Cct interface {
	ShortCircuitCurrent() units.Amp
	OpenCircuitVoltage() units.Volt
	EquivalentResistance() units.Ohm
	EquivalentConductance() units.Siemens

	// Neg reverses the source; the passive element is unchanged.
	Neg() Cct

	Series(rhs Cct) Cct
	Parallel(rhs Cct) Cct
	SeriesOhm(r units.Ohm) Cct
	ParallelOhm(r units.Ohm) Cct
	SeriesSiemens(g units.Siemens) Cct
	ParallelSiemens(g units.Siemens) Cct

	String() string

	cct()
}

// Thevenin is an ideal voltage source V in series with resistance R.
type Thevenin struct {
	V units.Volt
	R units.Ohm
}

// Norton is an ideal current source I in parallel with conductance G.
type Norton struct {
	I units.Amp
	G units.Siemens
}

func NewThevenin(v units.Volt, r units.Ohm) Thevenin {
	return Thevenin{V: v, R: r}
}

func NewNorton(i units.Amp, g units.Siemens) Norton {
	return Norton{I: i, G: g}
}

func (Thevenin) cct() {}
func (Norton) cct()   {}

func (t Thevenin) ShortCircuitCurrent() units.Amp       { return t.V.DivOhm(t.R) }
func (t Thevenin) OpenCircuitVoltage() units.Volt       { return t.V }
func (t Thevenin) EquivalentResistance() units.Ohm      { return t.R }
func (t Thevenin) EquivalentConductance() units.Siemens { return t.R.Inverse() }

func (n Norton) ShortCircuitCurrent() units.Amp       { return n.I }
func (n Norton) OpenCircuitVoltage() units.Volt       { return n.I.MulOhm(n.G.Inverse()) }
func (n Norton) EquivalentResistance() units.Ohm      { return n.G.Inverse() }
func (n Norton) EquivalentConductance() units.Siemens { return n.G }

func (t Thevenin) Neg() Cct { return Thevenin{V: -t.V, R: t.R} }
func (n Norton) Neg() Cct   { return Norton{I: -n.I, G: n.G} }

func (t Thevenin) String() string { return fmt.Sprintf("%v + %v", t.V, t.R) }
func (n Norton) String() string   { return fmt.Sprintf("%v | %v", n.I, n.G) }
