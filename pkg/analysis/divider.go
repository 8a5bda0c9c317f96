package analysis

import "github.com/edp1096/rcnet/pkg/units"

// DoubleToSingleEnded designs a divider that maps a +/-vin input to a
// 0..+vout output. The assumed circuit is
//
//	vout + r1 | r2 | vin + rInput
//
// where atten = vout/vin. It returns (r1, r2).
func DoubleToSingleEnded(atten float64, rInput units.Ohm) (units.Ohm, units.Ohm) {
	r1 := rInput.Scale(atten)
	r2 := r1.Div(1.0 - atten)
	return r1, r2
}

// DesignDivider applies DoubleToSingleEnded to an input swing of vin and a
// supply of vout, keeping margin (a fraction) of headroom.
func DesignDivider(vin, vout units.Volt, margin float64, rInput units.Ohm) (units.Ohm, units.Ohm) {
	atten := vout.Ratio(vin) * (1.0 - margin)
	return DoubleToSingleEnded(atten, rInput)
}
