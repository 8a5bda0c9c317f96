package netlist

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/rcnet/pkg/units"
)

// magnitude returns the float64 behind a number or quantity.
func magnitude(v Value) float64 {
	return reflect.ValueOf(v.Interface()).Float()
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		kind string
		want float64
	}{
		{"330", "number", 330},
		{"330k", "number", 330e3},
		{"330kΩ", "Ω", 330e3},
		{"330kohm", "Ω", 330e3},
		{"10meg", "number", 10e6},
		{"5.1MΩ", "Ω", 5.1e6},
		{"1.5nF", "F", 1.5e-9},
		{"4.7µF", "F", 4.7e-6},
		{"4.7μF", "F", 4.7e-6},
		{"2.2uF", "F", 2.2e-6},
		{"-12V", "V", -12},
		{"+3V", "V", 3},
		{"50mA", "A", 50e-3},
		{"2mS", "S", 2e-3},
		{"3ms", "s", 3e-3},
		{"1e3Hz", "Hz", 1e3},
		{"1MHz", "Hz", 1e6},
		{".5W", "W", 0.5},
		{"5.", "number", 5},
		{"5.V", "V", 5},
		{"2.e3Hz", "Hz", 2e3},
		{"1.5e-9F", "F", 1.5e-9},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.InEpsilon(t, tt.want, magnitude(v), 1e-12)
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "5xyz", "5 V", "kΩ"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseValue(in)
			assert.ErrorIs(t, err, ErrBadValue)
		})
	}
}

func TestParseAs(t *testing.T) {
	c, err := ParseAs[units.Farad]("15nF")
	require.NoError(t, err)
	assert.InDelta(t, 15e-9, float64(c), 1e-21)

	_, err = ParseAs[units.Farad]("15nH")
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = ParseAs[units.Volt]("3A")
	assert.ErrorIs(t, err, ErrBadValue)
	assert.ErrorContains(t, err, "want V")
}

func TestValueKindAndZero(t *testing.T) {
	assert.Equal(t, "number", Number(2).Kind())
	assert.Equal(t, "V", Quantity(units.Volt(5)).Kind())
	assert.Equal(t, "invalid", Value{}.Kind())

	assert.Equal(t, Quantity(units.Amp(0)), Quantity(units.Amp(70.71)).Zero())
	assert.Equal(t, Number(0), Number(-3).Zero())

	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "330kΩ", Quantity(units.Ohm(330e3)).String())
	assert.Equal(t, "<nil>", Value{}.String())
}
