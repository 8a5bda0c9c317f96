package analysis

import (
	"fmt"

	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

// Net is a one-port whose sources depend on a single drive quantity, such as
// the input voltage of a level-shifting divider. D is usually units.Volt or
// units.Amp.
type Net[D fmt.Stringer] struct {
	Title string
	Drive []D         // drive values for the DC table
	Rest  D           // drive value used for the corner frequency, zero by default
	Cap   units.Farad // filter capacitance across the output terminals
	Cct   func(D) circuit.Cct
}

// DCPoint is the output of a Net at one drive value.
type DCPoint[D fmt.Stringer] struct {
	Drive D
	Open  units.Volt
	Short units.Amp
}

// DC evaluates the network at every drive value.
func (n Net[D]) DC() []DCPoint[D] {
	points := make([]DCPoint[D], 0, len(n.Drive))
	for _, x := range n.Drive {
		c := n.Cct(x)
		points = append(points, DCPoint[D]{
			Drive: x,
			Open:  c.OpenCircuitVoltage(),
			Short: c.ShortCircuitCurrent(),
		})
	}
	return points
}

// Corner is the -3 dB frequency of the output resistance against Cap.
func (n Net[D]) Corner() units.Hertz {
	r := n.Cct(n.Rest).EquivalentResistance()
	return CornerFrequency(r.MulFarad(n.Cap))
}

// AC returns the low-pass response of the output at every sweep frequency.
func (n Net[D]) AC(s Sweep) ([]ACPoint, error) {
	freqs, err := s.Frequencies()
	if err != nil {
		return nil, err
	}

	corner := n.Corner()
	points := make([]ACPoint, len(freqs))
	for i, f := range freqs {
		points[i] = ACPoint{Freq: f, Gain: Response(corner, f)}
	}
	return points, nil
}
