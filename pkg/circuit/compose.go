package circuit

import (
	"math"

	"github.com/edp1096/rcnet/internal/consts"
	"github.com/edp1096/rcnet/pkg/units"
)

// preferNorton decides which representation a composition is computed in.
// Both Thevenin: Thevenin. Both Norton: Norton. Mixed: Norton only when the
// Norton side is close to an open circuit, where converting it to Thevenin
// would divide by a vanishing conductance.
//
// Series and Parallel share this rule even though their division-free
// branches sit in opposite domains.
func preferNorton(lhs, rhs Cct) bool {
	ln, lok := lhs.(Norton)
	rn, rok := rhs.(Norton)
	switch {
	case lok && rok:
		return true
	case lok:
		return math.Abs(float64(ln.G)) < consts.NORTON_GMIN
	case rok:
		return math.Abs(float64(rn.G)) < consts.NORTON_GMIN
	default:
		return false
	}
}

// Series connects lhs and rhs end to end.
func Series(lhs, rhs Cct) Cct {
	if preferNorton(lhs, rhs) {
		gl, gr := lhs.EquivalentConductance(), rhs.EquivalentConductance()
		ge := gl.Parallel(gr)
		gp := gl + gr
		n1 := gr.Ratio(gp)
		n2 := gl.Ratio(gp)
		ie := lhs.ShortCircuitCurrent().Scale(n1) + rhs.ShortCircuitCurrent().Scale(n2)
		return Norton{I: ie, G: ge}
	}

	re := lhs.EquivalentResistance() + rhs.EquivalentResistance()
	ve := lhs.OpenCircuitVoltage() + rhs.OpenCircuitVoltage()
	return Thevenin{V: ve, R: re}
}

// Parallel connects lhs and rhs across the same pair of terminals.
func Parallel(lhs, rhs Cct) Cct {
	if preferNorton(lhs, rhs) {
		ge := lhs.EquivalentConductance() + rhs.EquivalentConductance()
		ie := lhs.ShortCircuitCurrent() + rhs.ShortCircuitCurrent()
		return Norton{I: ie, G: ge}
	}

	rl, rr := lhs.EquivalentResistance(), rhs.EquivalentResistance()
	re := rl.Parallel(rr)
	rs := rl + rr
	n1 := rr.Ratio(rs)
	n2 := rl.Ratio(rs)
	ve := lhs.OpenCircuitVoltage().Scale(n1) + rhs.OpenCircuitVoltage().Scale(n2)
	return Thevenin{V: ve, R: re}
}

// Resistor is a bare resistance as a source-free Thevenin equivalent.
func Resistor(r units.Ohm) Thevenin { return Thevenin{R: r} }

// Conductor is a bare conductance as a source-free Norton equivalent.
func Conductor(g units.Siemens) Norton { return Norton{G: g} }

func (t Thevenin) Series(rhs Cct) Cct   { return Series(t, rhs) }
func (t Thevenin) Parallel(rhs Cct) Cct { return Parallel(t, rhs) }
func (n Norton) Series(rhs Cct) Cct     { return Series(n, rhs) }
func (n Norton) Parallel(rhs Cct) Cct   { return Parallel(n, rhs) }

func (t Thevenin) SeriesOhm(r units.Ohm) Cct   { return Series(t, Resistor(r)) }
func (t Thevenin) ParallelOhm(r units.Ohm) Cct { return Parallel(t, Resistor(r)) }
func (n Norton) SeriesOhm(r units.Ohm) Cct     { return Series(n, Resistor(r)) }
func (n Norton) ParallelOhm(r units.Ohm) Cct   { return Parallel(n, Resistor(r)) }

func (t Thevenin) SeriesSiemens(g units.Siemens) Cct   { return Series(t, Conductor(g)) }
func (t Thevenin) ParallelSiemens(g units.Siemens) Cct { return Parallel(t, Conductor(g)) }
func (n Norton) SeriesSiemens(g units.Siemens) Cct     { return Series(n, Conductor(g)) }
func (n Norton) ParallelSiemens(g units.Siemens) Cct   { return Parallel(n, Conductor(g)) }
