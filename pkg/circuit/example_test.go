package circuit_test

import (
	"fmt"

	"github.com/edp1096/rcnet/pkg/circuit"
	"github.com/edp1096/rcnet/pkg/units"
)

func ExampleThevenin_ParallelOhm() {
	vcc := units.Volt(5)
	r1 := units.Ohm(10 * units.Kilo)
	r2 := units.Ohm(5 * units.Kilo)

	// vcc + r1 | r2
	c := circuit.NewThevenin(vcc, r1).ParallelOhm(r2)

	fmt.Println(c)
	fmt.Println(c.OpenCircuitVoltage(), c.ShortCircuitCurrent())
	// Output:
	// 1.67V + 3.33kΩ
	// 1.67V 500μA
}
