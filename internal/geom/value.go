package geom

import "strconv"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitFixed   Unit = iota // Absolute, in the caller's units
	UnitPercent             // Percentage of a base extent
)

// Value is a dimension that is either absolute or a percentage of a base
// that is only known when the value is resolved.
type Value struct {
	Amount float64
	Unit   Unit
}

// Fixed returns an absolute Value.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of a base extent.
// The value is on a 0-100 scale (50.0 = 50%) and is never clamped.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Of resolves the value against base. Absolute values ignore base.
func (v Value) Of(base float64) float64 {
	if v.Unit == UnitPercent {
		return base * v.Amount / 100.0
	}
	return v.Amount
}

// IsPercent returns true if resolving this value requires a base.
func (v Value) IsPercent() bool {
	return v.Unit == UnitPercent
}

// String renders the value the way it is written in directive chains.
func (v Value) String() string {
	s := strconv.FormatFloat(v.Amount, 'g', -1, 64)
	if v.Unit == UnitPercent {
		return s + "%"
	}
	return s
}
