package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

// v + r2 | r1
func ppNet() Net[units.Volt] {
	return Net[units.Volt]{
		Title: "PP Circuit",
		Drive: []units.Volt{0, 2, 5},
		Cap:   100 * units.Nano,
		Cct: func(v units.Volt) circuit.Cct {
			r1 := units.Ohm(300 * units.Kilo)
			r2 := units.Ohm(200 * units.Kilo)
			return circuit.NewThevenin(v, r2).ParallelOhm(r1)
		},
	}
}

func TestDC(t *testing.T) {
	points := ppNet().DC()
	require.Len(t, points, 3)

	for i, want := range []float64{0, 1.2, 3} {
		assert.Equal(t, ppNet().Drive[i], points[i].Drive)
		assert.InDelta(t, want, float64(points[i].Open), 1e-12)
		assert.InDelta(t, float64(points[i].Drive)/200e3, float64(points[i].Short), 1e-15)
	}
}

func TestCorner(t *testing.T) {
	// 120 kΩ against 100 nF
	assert.InDelta(t, 1/(2*math.Pi*0.012), float64(ppNet().Corner()), 1e-9)
	assert.InDelta(t, 1000.0, float64(CornerFrequency(units.Second(1/(2*math.Pi*1000)))), 1e-9)
}

func TestAC(t *testing.T) {
	net := ppNet()
	fc := net.Corner()

	points, err := net.AC(Sweep{Type: Linear, Points: 3, Start: fc / 10, Stop: fc.Scale(19).Div(10)})
	require.NoError(t, err)
	require.Len(t, points, 3)

	// The middle point sits on the corner.
	assert.InDelta(t, float64(fc), float64(points[1].Freq), 1e-9)
	assert.InDelta(t, -10*math.Log10(2), points[1].Decibel(), 1e-9)
	assert.InDelta(t, -45.0, points[1].Phase(), 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, points[1].Magnitude(), 1e-12)

	assert.Greater(t, points[0].Decibel(), points[1].Decibel())
	assert.Greater(t, points[1].Decibel(), points[2].Decibel())
}

func TestFrequencies(t *testing.T) {
	t.Run("decade", func(t *testing.T) {
		fs, err := Sweep{Type: Decade, Points: 10, Start: 1, Stop: 1000}.Frequencies()
		require.NoError(t, err)
		require.Len(t, fs, 31)
		assert.InDelta(t, 1.0, float64(fs[0]), 1e-9)
		assert.InDelta(t, 10.0, float64(fs[10]), 1e-9)
		assert.InDelta(t, 1000.0, float64(fs[30]), 1e-6)
	})

	t.Run("octave", func(t *testing.T) {
		fs, err := Sweep{Type: Octave, Points: 1, Start: 100, Stop: 800}.Frequencies()
		require.NoError(t, err)
		require.Len(t, fs, 4)
		for i, want := range []float64{100, 200, 400, 800} {
			assert.InDelta(t, want, float64(fs[i]), 1e-9)
		}
	})

	t.Run("linear", func(t *testing.T) {
		fs, err := Sweep{Type: Linear, Points: 5, Start: 0, Stop: 100}.Frequencies()
		require.NoError(t, err)
		assert.Equal(t, []units.Hertz{0, 25, 50, 75, 100}, fs)
	})

	t.Run("invalid", func(t *testing.T) {
		bad := []Sweep{
			{Type: Decade, Points: 0, Start: 1, Stop: 10},
			{Type: Decade, Points: 10, Start: 10, Stop: 1},
			{Type: Decade, Points: 10, Start: 0, Stop: 10},
			{Type: Linear, Points: 1, Start: 0, Stop: 10},
			{Type: "LOG", Points: 10, Start: 1, Stop: 10},
		}
		for _, s := range bad {
			_, err := s.Frequencies()
			assert.ErrorIs(t, err, ErrInvalidSweep, "%+v", s)
		}
	})
}

func TestDivider(t *testing.T) {
	r1, r2 := DoubleToSingleEnded(0.25, 300*units.Kilo)
	assert.InDelta(t, 75e3, float64(r1), 1e-9)
	assert.InDelta(t, 100e3, float64(r2), 1e-9)

	r1, r2 = DesignDivider(12, 3, 0.1, 300*units.Kilo)
	assert.InDelta(t, 67.5e3, float64(r1), 1e-9)
	assert.InDelta(t, 67.5e3/0.775, float64(r2), 1e-9)

	// The designed divider maps +vin to just under vout and -vin to just above 0.
	net := Net[units.Volt]{
		Drive: []units.Volt{-12, 12},
		Cct: func(v units.Volt) circuit.Cct {
			return circuit.NewThevenin(3, r1).ParallelOhm(r2).Parallel(circuit.NewThevenin(v, 300*units.Kilo))
		},
	}
	points := net.DC()
	assert.Greater(t, float64(points[0].Open), 0.0)
	assert.Less(t, float64(points[1].Open), 3.0)
}
