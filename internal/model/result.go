package model

import (
	"fmt"
	"math"
)

// Measurement units for display
const (
	UnitActivePower   = "kW"
	UnitApparentPower = "kVA"
	UnitReactivePower = "kVAr"
	UnitDegrees       = "°"
	UnitRadians       = "rad"
)

// Result holds the derived quantities of one power-triangle computation.
// A Result is transient: every update replaces the previous one in full.
type Result struct {
	ActivePower   float64 // P, kW
	ReactivePower float64 // Q, kVAr
	ApparentPower float64 // S, kVA
	PowerFactor   float64 // cos(φ), in [0, 1]
	Angle         float64 // φ, radians, in [0, π/2]
}

// AngleDegrees returns the phase angle converted to degrees.
func (r Result) AngleDegrees() float64 {
	return r.Angle * 180 / math.Pi
}

// InputActivePower returns the active-power value as the user entered it.
// For pf == 0 the input magnitude was reinterpreted as reactive power, so it
// is recovered from S.
func (r Result) InputActivePower() float64 {
	if r.PowerFactor == 0 {
		return r.ApparentPower
	}
	return r.ActivePower
}

// MaxMagnitude returns the largest of P, Q and S. The diagram uses it to
// scale all three arrows into the visible area.
func (r Result) MaxMagnitude() float64 {
	return math.Max(r.ActivePower, math.Max(r.ReactivePower, r.ApparentPower))
}

// DisplayActivePower returns P formatted with its unit, e.g. "100.00 kW".
func (r Result) DisplayActivePower(decimals int) string {
	return formatQuantity(r.ActivePower, UnitActivePower, decimals)
}

// DisplayApparentPower returns S formatted with its unit, e.g. "125.00 kVA".
func (r Result) DisplayApparentPower(decimals int) string {
	return formatQuantity(r.ApparentPower, UnitApparentPower, decimals)
}

// DisplayReactivePower returns Q formatted with its unit, e.g. "75.00 kVAr".
func (r Result) DisplayReactivePower(decimals int) string {
	return formatQuantity(r.ReactivePower, UnitReactivePower, decimals)
}

// DisplayPowerFactor returns the power factor without a unit, e.g. "0.80".
func (r Result) DisplayPowerFactor(decimals int) string {
	return fmt.Sprintf("%.*f", clampDecimals(decimals), r.PowerFactor)
}

// DisplayAngle returns the phase angle formatted in degrees ("36.87°") or,
// when inRadians is true, in radians ("0.64 rad").
func (r Result) DisplayAngle(decimals int, inRadians bool) string {
	d := clampDecimals(decimals)
	if inRadians {
		return fmt.Sprintf("%.*f %s", d, r.Angle, UnitRadians)
	}
	return fmt.Sprintf("%.*f%s", d, r.AngleDegrees(), UnitDegrees)
}

// Summary returns a compact one-line rendering of all quantities, used by
// history rows and the CSV export log line.
func (r Result) Summary(decimals int) string {
	return fmt.Sprintf("P %s · S %s · Q %s · pf %s · φ %s",
		r.DisplayActivePower(decimals),
		r.DisplayApparentPower(decimals),
		r.DisplayReactivePower(decimals),
		r.DisplayPowerFactor(decimals),
		r.DisplayAngle(decimals, false))
}

func formatQuantity(value float64, unit string, decimals int) string {
	return fmt.Sprintf("%.*f %s", clampDecimals(decimals), value, unit)
}

func clampDecimals(decimals int) int {
	if decimals < 0 {
		return 0
	}
	if decimals > 6 {
		return 6
	}
	return decimals
}
