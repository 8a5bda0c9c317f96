package util

import (
	"fmt"
	"math"

	"github.com/edp1096/rcnet/internal/consts"
)

// EngineeringScale picks the SI prefix for value and the factor to divide it by.
func EngineeringScale(value float64) (string, float64) {
	absValue := math.Abs(value)
	switch {
	case absValue >= consts.MEGA:
		return "M", consts.MEGA
	case absValue >= consts.KILO:
		return "k", consts.KILO
	case absValue >= 1:
		return "", 1
	case absValue >= consts.MILLI:
		return "m", consts.MILLI
	case absValue >= consts.MICRO:
		return "μ", consts.MICRO
	case absValue >= consts.NANO:
		return "n", consts.NANO
	case absValue == 0:
		return "", 1
	default:
		return "p", consts.PICO
	}
}

// DisplayPrecision returns the number of fractional digits for an already scaled value.
func DisplayPrecision(scaled float64) int {
	absValue := math.Abs(scaled)
	switch {
	case absValue >= 100:
		return 0
	case absValue >= 10:
		return 1
	case absValue >= 1:
		return 2
	case absValue == 0:
		return 0
	default:
		return 10
	}
}

// FormatEngineering renders value as "<scaled><prefix><unit>", e.g. "330kΩ".
func FormatEngineering(value float64, unit string) string {
	prefix, scale := EngineeringScale(value)
	scaled := value / scale
	return fmt.Sprintf("%.*f%s%s", DisplayPrecision(scaled), scaled, prefix, unit)
}

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e6:
		return fmt.Sprintf("%7.3f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%7.3f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%7.3f Hz ", freq)
	}
}

func FormatDecibel(value float64) string {
	return fmt.Sprintf("%8.2f dB", value) // " -20.00 dB"
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // " -45.0"
}
