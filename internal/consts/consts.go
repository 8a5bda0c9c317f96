package consts

// SI prefix multipliers
const (
	MEGA  = 1e+6
	KILO  = 1e+3
	MILLI = 1e-3
	MICRO = 1e-6
	NANO  = 1e-9
	PICO  = 1e-12
)

const (
	ROOT2 = 1.4142 // Peak to RMS ratio used by the example networks

	NORTON_GMIN = NANO // Conductance (S) below which a Norton operand keeps composition in the Norton domain
)
