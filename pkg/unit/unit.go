// Package unit implements screen length expressions and their resolution
// to device pixels.
//
// A Value is a scalar with a Unit attached. Lengths arrive as strings
// ("12", "12px", "3pt", "1.5cm") and are resolved to whole pixels through
// a Metric, which carries the display density. Callers that only ever
// deal in pixels can use the zero-configuration DefaultMetric.
package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit identifies the measurement unit of a Value.
type Unit uint8

const (
	// Px is a device pixel, the unit every length resolves to.
	Px Unit = iota
	// Pt is a typographic point, 1/72 inch.
	Pt
	// In is an inch.
	In
	// Cm is a centimeter.
	Cm
	// Mm is a millimeter.
	Mm
)

// Value is a length with a unit.
type Value struct {
	V float64
	U Unit
}

// Resolver converts Values to whole device pixels.
type Resolver interface {
	Pixels(v Value) int
}

// Metric resolves physical units using the display density.
type Metric struct {
	// DPI is the dot density of the target surface. A zero DPI
	// resolves physical units as if the display were 96dpi.
	DPI float64
}

// DefaultMetric resolves at the conventional 96dpi.
var DefaultMetric = Metric{DPI: 96}

// Pixels converts v to whole pixels, rounding half away from zero.
func (m Metric) Pixels(v Value) int {
	dpi := m.DPI
	if dpi <= 0 {
		dpi = 96
	}
	var px float64
	switch v.U {
	case Px:
		px = v.V
	case Pt:
		px = v.V * dpi / 72
	case In:
		px = v.V * dpi
	case Cm:
		px = v.V * dpi / 2.54
	case Mm:
		px = v.V * dpi / 25.4
	default:
		px = v.V
	}
	if px < 0 {
		return int(px - 0.5)
	}
	return int(px + 0.5)
}

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Pt:
		return "pt"
	case In:
		return "in"
	case Cm:
		return "cm"
	case Mm:
		return "mm"
	}
	return "?"
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

var suffixes = map[string]Unit{
	"":   Px,
	"px": Px,
	"pt": Pt,
	"in": In,
	"cm": Cm,
	"mm": Mm,
}

// Parse reads a length expression: a number with an optional unit suffix.
// A bare number is taken as pixels.
func Parse(s string) (Value, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "" {
		return Value{}, fmt.Errorf("empty length")
	}
	num := trimmed
	unit := Px
	for suffix, u := range suffixes {
		if suffix == "" {
			continue
		}
		if strings.HasSuffix(trimmed, suffix) {
			num = strings.TrimSpace(strings.TrimSuffix(trimmed, suffix))
			unit = u
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Value{}, fmt.Errorf("bad length %q", s)
	}
	return Value{V: f, U: unit}, nil
}

// ParsePixels parses a length expression and resolves it in one step.
func ParsePixels(s string, r Resolver) (int, error) {
	v, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if r == nil {
		r = DefaultMetric
	}
	return r.Pixels(v), nil
}
