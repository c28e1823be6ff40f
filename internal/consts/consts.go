// Package consts holds physical and mathematical constants shared across
// the solver. Immutable after initialization; no global mutable state.
package consts

import "math"

const (
	CHARGE    = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23 // Boltzmann constant (J/K)
	KELVIN    = 273.15        // Kelvin temperature (K)
)

// A is the symmetrical-component rotation operator e^(j*2*pi/3), a unit
// phasor at 120 degrees. A2 is its square, e^(-j*2*pi/3).
var (
	A  = complex(math.Cos(2*math.Pi/3), math.Sin(2*math.Pi/3))
	A2 = complex(math.Cos(2*math.Pi/3), -math.Sin(2*math.Pi/3))
)

// DegPerGroup is the phase shift, in degrees, contributed by one unit of
// transformer vector group.
const DegPerGroup = 30.0
