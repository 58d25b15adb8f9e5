// Package calc implements the power-triangle computation and the input
// validation predicates consumed by the UI entries. Everything here is pure:
// no state, no side effects, no error returns — the input domain is enforced
// upstream at the keystroke level.
package calc

import (
	"math"

	"github.com/gridsim/power-triangle/internal/model"
)

// Compute maps an active-power input (kW) and a power factor to the full
// power triangle.
//
// A zero power factor is treated as a degenerate case: the entire input
// magnitude is reinterpreted as reactive power (P = 0, Q = S = input,
// φ = 90°). This is a modeling convention, not the continuous limit of the
// general formula, which diverges as pf approaches zero.
func Compute(activePowerInput, powerFactor float64) model.Result {
	if powerFactor == 0 {
		return model.Result{
			ActivePower:   0,
			ReactivePower: activePowerInput,
			ApparentPower: activePowerInput,
			PowerFactor:   0,
			Angle:         math.Pi / 2,
		}
	}

	angle := math.Acos(powerFactor)
	return model.Result{
		ActivePower:   activePowerInput,
		ReactivePower: activePowerInput * math.Tan(angle),
		ApparentPower: activePowerInput / powerFactor,
		PowerFactor:   powerFactor,
		Angle:         angle,
	}
}
