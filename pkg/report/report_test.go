package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rcnet/pkg/analysis"
	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

func cpNet() analysis.Net[units.Volt] {
	vdd := units.Volt(3)
	r1, r2, r3 := units.Ohm(75e3), units.Ohm(100e3), units.Ohm(300e3)
	return analysis.Net[units.Volt]{
		Title: "CP Circuit",
		Drive: []units.Volt{-12, 0, 12},
		Cap:   1.5 * units.Nano,
		Cct: func(v units.Volt) circuit.Cct {
			return circuit.NewThevenin(vdd, r1).ParallelOhm(r2).Parallel(circuit.NewThevenin(v, r3))
		},
	}
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	Describe(&buf, cpNet())

	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	require.Len(t, lines, 8)
	assert.Empty(t, lines[0])
	assert.Equal(t, "CP Circuit in -> out", string(lines[1]))
	assert.Regexp(t, `^-12.0V \t -> \S+V, \S+A$`, string(lines[2]))
	assert.Regexp(t, `^0V \t -> \S+V, \S+A$`, string(lines[3]))
	assert.Regexp(t, `^CP Circuit 3db f = \S+Hz$`, string(lines[5]))
	assert.Empty(t, lines[6])
	assert.Empty(t, lines[7])
}

func TestDivider(t *testing.T) {
	var buf bytes.Buffer
	r1, r2 := analysis.DesignDivider(12, 3, 0.1, 300e3)
	Divider(&buf, "CP divider", r1, r2, 300e3)
	assert.Equal(t, "CP divider: r1 = 67.5kΩ, r2 = 87.1kΩ, r3 = 300kΩ\n", buf.String())
}

func TestACTable(t *testing.T) {
	points := []analysis.ACPoint{
		{Freq: 10, Gain: analysis.Response(1e3, 10)},
		{Freq: 1e3, Gain: analysis.Response(1e3, 1e3)},
	}

	var buf bytes.Buffer
	ACTable(&buf, "RC", points)
	out := buf.String()
	assert.Contains(t, out, "RC AC response (2 frequency points):")
	assert.Contains(t, out, "  1.000 kHz       -3.01 dB   -45.0deg\n")
	assert.Contains(t, out, "-0.00 dB")
}

func TestPlotAC(t *testing.T) {
	net := cpNet()
	points, err := net.AC(analysis.Sweep{Type: analysis.Decade, Points: 5, Start: 1, Stop: 1e6})
	require.NoError(t, err)

	for _, name := range []string{"cp.png", "cp.svg"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, PlotAC(path, net.Title, points))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.Error(t, PlotAC(filepath.Join(t.TempDir(), "empty.png"), "empty", nil))
}

func TestPlotACFromZero(t *testing.T) {
	net := cpNet()
	points, err := net.AC(analysis.Sweep{Type: analysis.Linear, Points: 5, Start: 0, Stop: 1e3})
	require.NoError(t, err)
	require.Zero(t, points[0].Freq)
	assert.False(t, logAxis(points))
	assert.True(t, logAxis(points[1:]))

	path := filepath.Join(t.TempDir(), "zero.png")
	require.NotPanics(t, func() {
		require.NoError(t, PlotAC(path, net.Title, points))
	})
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
