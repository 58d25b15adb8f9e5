package calc

import (
	"math"
	"strconv"
)

// Field identifies which input field a partial text belongs to.
type Field int

const (
	// FieldActivePower accepts real numbers ≥ 0.
	FieldActivePower Field = iota
	// FieldPowerFactor accepts real numbers in the closed interval [0, 1].
	FieldPowerFactor
)

// IsValidPartial reports whether text is acceptable as the full content of
// the given input field. The empty string is always acceptable ("no input
// yet"); otherwise the text must parse as a finite number inside the field's
// domain. The UI calls this on every keystroke and silently refuses edits
// that would make it false.
func IsValidPartial(text string, kind Field) bool {
	if text == "" {
		return true
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return false
	}

	switch kind {
	case FieldActivePower:
		return value >= 0
	case FieldPowerFactor:
		return value >= 0 && value <= 1
	default:
		return false
	}
}
