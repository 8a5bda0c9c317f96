package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/rcnet/pkg/units"
)

var ErrInvalidSweep = errors.New("analysis: invalid sweep")

type SweepType string

const (
	Decade SweepType = "DEC" // Points per decade
	Octave SweepType = "OCT" // Points per octave
	Linear SweepType = "LIN" // Points in total
)

// Sweep describes the frequency points of an AC table.
type Sweep struct {
	Type   SweepType
	Points int
	Start  units.Hertz
	Stop   units.Hertz
}

func (s Sweep) Frequencies() ([]units.Hertz, error) {
	if s.Points < 1 {
		return nil, fmt.Errorf("%w: %d points", ErrInvalidSweep, s.Points)
	}
	if s.Stop <= s.Start {
		return nil, fmt.Errorf("%w: stop %v is not above start %v", ErrInvalidSweep, s.Stop, s.Start)
	}

	if s.Type != Linear && s.Start <= 0 {
		return nil, fmt.Errorf("%w: logarithmic sweep from %v", ErrInvalidSweep, s.Start)
	}

	var spans float64
	switch s.Type {
	case Decade:
		spans = math.Log10(s.Stop.Ratio(s.Start))
	case Octave:
		spans = math.Log2(s.Stop.Ratio(s.Start))
	case Linear:
		if s.Points < 2 {
			return nil, fmt.Errorf("%w: linear sweep needs 2 points", ErrInvalidSweep)
		}
		span := floats.Span(make([]float64, s.Points), float64(s.Start), float64(s.Stop))
		return toHertz(span), nil
	default:
		return nil, fmt.Errorf("%w: type %q", ErrInvalidSweep, s.Type)
	}

	n := max(int(math.Round(spans*float64(s.Points)))+1, 2)
	span := floats.LogSpan(make([]float64, n), float64(s.Start), float64(s.Stop))
	return toHertz(span), nil
}

func toHertz(fs []float64) []units.Hertz {
	out := make([]units.Hertz, len(fs))
	for i, f := range fs {
		out[i] = units.Hertz(f)
	}
	return out
}

// CornerFrequency is the -3 dB frequency 1/(2*pi*t) of an RC time constant.
func CornerFrequency(t units.Second) units.Hertz {
	return t.Scale(2 * math.Pi).Inverse()
}

// Response is the gain of a single-pole RC low-pass at f.
func Response(corner, f units.Hertz) complex128 {
	return 1 / complex(1, f.Ratio(corner))
}

// ACPoint is the gain of the output filter at one frequency.
type ACPoint struct {
	Freq units.Hertz
	Gain complex128
}

func (p ACPoint) Magnitude() float64 { return cmplx.Abs(p.Gain) }
func (p ACPoint) Decibel() float64   { return 20 * math.Log10(p.Magnitude()) }

// Phase in degrees
func (p ACPoint) Phase() float64 { return cmplx.Phase(p.Gain) * 180.0 / math.Pi }
