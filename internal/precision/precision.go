// Package precision quantizes dragged coordinates for CAD-style editing:
// decimal rounding modes, optional grid snapping, and unit-aware readout
// formatting.
package precision

import (
	"fmt"
	"math"
)

// Mode selects how many decimal places survive quantization.
type Mode string

const (
	ModeInteger  Mode = "integer"
	ModeDecimal1 Mode = "decimal_1"
	ModeDecimal2 Mode = "decimal_2"
	ModeDecimal3 Mode = "decimal_3"
	ModeFull     Mode = "full"
)

// Unit labels coordinate readouts; values are never converted, only tagged.
type Unit string

const (
	UnitMM   Unit = "mm"
	UnitCM   Unit = "cm"
	UnitM    Unit = "m"
	UnitInch Unit = "inch"
	UnitFeet Unit = "feet"
)

var decimalPlaces = map[Mode]int{
	ModeInteger:  0,
	ModeDecimal1: 1,
	ModeDecimal2: 2,
	ModeDecimal3: 3,
}

// Rounder applies grid snap then decimal quantization to coordinates.
type Rounder struct {
	mode     Mode
	snap     bool
	snapSize float64
	unit     Unit
}

// NewRounder validates mode and unit up front; a bad config is rejected at
// build time.
func NewRounder(mode Mode, snapEnabled bool, snapSize float64, unit Unit) (*Rounder, error) {
	if _, ok := decimalPlaces[mode]; !ok && mode != ModeFull {
		return nil, fmt.Errorf("precision: unknown mode %q", mode)
	}
	switch unit {
	case UnitMM, UnitCM, UnitM, UnitInch, UnitFeet:
	default:
		return nil, fmt.Errorf("precision: unknown unit %q", unit)
	}
	return &Rounder{mode: mode, snap: snapEnabled, snapSize: snapSize, unit: unit}, nil
}

// Quantize rounds a value to the configured decimal places.
func (r *Rounder) Quantize(v float64) float64 {
	if r.mode == ModeFull {
		return v
	}
	scale := math.Pow(10, float64(decimalPlaces[r.mode]))
	return math.Round(v*scale) / scale
}

// SnapToGrid rounds a value to the nearest grid multiple.
func (r *Rounder) SnapToGrid(v float64) float64 {
	if !r.snap || r.snapSize <= 0 {
		return v
	}
	return math.Round(v/r.snapSize) * r.snapSize
}

// Process runs grid snap then quantization over a floor coordinate pair.
func (r *Rounder) Process(x, y float64) (float64, float64) {
	return r.Quantize(r.SnapToGrid(x)), r.Quantize(r.SnapToGrid(y))
}

// Format renders a coordinate triple for on-screen readouts.
func (r *Rounder) Format(x, y, z float64) string {
	places := decimalPlaces[r.mode]
	if r.mode == ModeFull {
		places = 6
	}
	return fmt.Sprintf("(%.*f, %.*f, %.*f) %s", places, x, places, y, places, z, r.unit)
}

// GridSize reports the snap step, 0 when snapping is off.
func (r *Rounder) GridSize() float64 {
	if !r.snap {
		return 0
	}
	return r.snapSize
}
