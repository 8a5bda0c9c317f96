package netlist

import (
	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

// Operand dispatch for Expr.Eval. Every case forwards to the typed API of
// the units and circuit packages; a false result means the operator is not
// defined for the pair.

func plus(a, b float64) float64  { return a + b }
func minus(a, b float64) float64 { return a - b }

func same[T ~float64](x T, y any, f func(a, b float64) float64) (any, bool) {
	if y, ok := y.(T); ok {
		return T(f(float64(x), float64(y))), true
	}
	return nil, false
}

// sameKind applies f when x and y are numbers or quantities of one kind.
func sameKind(x, y any, f func(a, b float64) float64) (any, bool) {
	switch x := x.(type) {
	case float64:
		return same(x, y, f)
	case units.Ohm:
		return same(x, y, f)
	case units.Siemens:
		return same(x, y, f)
	case units.Second:
		return same(x, y, f)
	case units.Farad:
		return same(x, y, f)
	case units.Hertz:
		return same(x, y, f)
	case units.Volt:
		return same(x, y, f)
	case units.Amp:
		return same(x, y, f)
	case units.Watt:
		return same(x, y, f)
	}
	return nil, false
}

func scale(q any, s float64) (any, bool) {
	switch q := q.(type) {
	case float64:
		return q * s, true
	case units.Ohm:
		return q.Scale(s), true
	case units.Siemens:
		return q.Scale(s), true
	case units.Second:
		return q.Scale(s), true
	case units.Farad:
		return q.Scale(s), true
	case units.Hertz:
		return q.Scale(s), true
	case units.Volt:
		return q.Scale(s), true
	case units.Amp:
		return q.Scale(s), true
	case units.Watt:
		return q.Scale(s), true
	}
	return nil, false
}

func quotient(q any, s float64) (any, bool) {
	switch q := q.(type) {
	case float64:
		return q / s, true
	case units.Ohm:
		return q.Div(s), true
	case units.Siemens:
		return q.Div(s), true
	case units.Second:
		return q.Div(s), true
	case units.Farad:
		return q.Div(s), true
	case units.Hertz:
		return q.Div(s), true
	case units.Volt:
		return q.Div(s), true
	case units.Amp:
		return q.Div(s), true
	case units.Watt:
		return q.Div(s), true
	}
	return nil, false
}

func ratio[T ~float64](x T, y any) (any, bool) {
	if y, ok := y.(T); ok {
		return float64(x) / float64(y), true
	}
	return nil, false
}

func add(x, y any) (any, bool) {
	if r, ok := sameKind(x, y, plus); ok {
		return r, true
	}

	switch x := x.(type) {
	case units.Volt:
		if r, ok := y.(units.Ohm); ok {
			return circuit.NewThevenin(x, r), true
		}
	case units.Ohm:
		if c, ok := y.(circuit.Cct); ok {
			return circuit.Series(circuit.Resistor(x), c), true
		}
	case units.Siemens:
		if c, ok := y.(circuit.Cct); ok {
			return circuit.Series(circuit.Conductor(x), c), true
		}
	case circuit.Cct:
		switch y := y.(type) {
		case circuit.Cct:
			return x.Series(y), true
		case units.Ohm:
			return x.SeriesOhm(y), true
		case units.Siemens:
			return x.SeriesSiemens(y), true
		}
	}
	return nil, false
}

func sub(x, y any) (any, bool) {
	return sameKind(x, y, minus)
}

func par(x, y any) (any, bool) {
	switch x := x.(type) {
	case units.Ohm:
		switch y := y.(type) {
		case units.Ohm:
			return x.Parallel(y), true
		case circuit.Cct:
			return circuit.Parallel(circuit.Resistor(x), y), true
		}
	case units.Siemens:
		switch y := y.(type) {
		case units.Siemens:
			return x.Parallel(y), true
		case circuit.Cct:
			return circuit.Parallel(circuit.Conductor(x), y), true
		}
	case units.Farad:
		if y, ok := y.(units.Farad); ok {
			return x.Parallel(y), true
		}
	case units.Amp:
		if g, ok := y.(units.Siemens); ok {
			return circuit.NewNorton(x, g), true
		}
	case circuit.Cct:
		switch y := y.(type) {
		case circuit.Cct:
			return x.Parallel(y), true
		case units.Ohm:
			return x.ParallelOhm(y), true
		case units.Siemens:
			return x.ParallelSiemens(y), true
		}
	}
	return nil, false
}

func mul(x, y any) (any, bool) {
	if s, ok := x.(float64); ok {
		return scale(y, s)
	}
	if s, ok := y.(float64); ok {
		return scale(x, s)
	}

	switch x := x.(type) {
	case units.Ohm:
		switch y := y.(type) {
		case units.Farad:
			return x.MulFarad(y), true
		case units.Amp:
			return x.MulAmp(y), true
		case units.Siemens:
			return x.MulSiemens(y), true
		}
	case units.Farad:
		if r, ok := y.(units.Ohm); ok {
			return x.MulOhm(r), true
		}
	case units.Amp:
		switch y := y.(type) {
		case units.Ohm:
			return x.MulOhm(y), true
		case units.Volt:
			return x.MulVolt(y), true
		}
	case units.Volt:
		if i, ok := y.(units.Amp); ok {
			return x.MulAmp(i), true
		}
	case units.Siemens:
		if r, ok := y.(units.Ohm); ok {
			return x.MulOhm(r), true
		}
	case units.Second:
		if f, ok := y.(units.Hertz); ok {
			return x.MulHertz(f), true
		}
	case units.Hertz:
		if t, ok := y.(units.Second); ok {
			return x.MulSecond(t), true
		}
	}
	return nil, false
}

func div(x, y any) (any, bool) {
	if s, ok := y.(float64); ok {
		return quotient(x, s)
	}

	switch x := x.(type) {
	case float64:
		// k / quantity gives the reciprocal kind
		switch y := y.(type) {
		case units.Ohm:
			return units.Siemens(x / float64(y)), true
		case units.Siemens:
			return units.Ohm(x / float64(y)), true
		case units.Second:
			return units.Hertz(x / float64(y)), true
		case units.Hertz:
			return units.Second(x / float64(y)), true
		}
		return nil, false
	case units.Second:
		switch y := y.(type) {
		case units.Ohm:
			return x.DivOhm(y), true
		case units.Farad:
			return x.DivFarad(y), true
		}
	case units.Volt:
		switch y := y.(type) {
		case units.Ohm:
			return x.DivOhm(y), true
		case units.Amp:
			return x.DivAmp(y), true
		}
	case units.Watt:
		switch y := y.(type) {
		case units.Volt:
			return x.DivVolt(y), true
		case units.Amp:
			return x.DivAmp(y), true
		}
	}

	switch x := x.(type) {
	case units.Ohm:
		return ratio(x, y)
	case units.Siemens:
		return ratio(x, y)
	case units.Second:
		return ratio(x, y)
	case units.Farad:
		return ratio(x, y)
	case units.Hertz:
		return ratio(x, y)
	case units.Volt:
		return ratio(x, y)
	case units.Amp:
		return ratio(x, y)
	case units.Watt:
		return ratio(x, y)
	}
	return nil, false
}

func neg(x any) (any, bool) {
	switch x := x.(type) {
	case circuit.Cct:
		return x.Neg(), true
	default:
		return scale(x, -1)
	}
}
