// Package dpi models the logical/physical pixel split used for UI scaling.
//
// Physical types correspond to actual device pixels; logical types are
// physical pixels divided by the monitor's scale factor. Native window
// functions deal in physical pixels, application layout is usually easier in
// logical ones, and these types convert between the two without the
// truncation bugs that ad-hoc float-to-int casts invite.
package dpi

import "math"

// BaseDPI is the Windows DPI that corresponds to a scale factor of 1.0.
const BaseDPI = 96.0

// ValidateScaleFactor reports whether f is usable as a scale factor: a
// positive, finite, normal float. Conversion methods panic on factors that
// fail this check, so validate values sourced from outside this library.
func ValidateScaleFactor(f float64) bool {
	// 0x1p-1022 is the smallest normal float64; subnormals are rejected.
	return f >= 0x1p-1022 && !math.IsInf(f, 0)
}

// ScaleFactorForDPI converts a monitor DPI value to a scale factor
// (96 DPI -> 1.0, 144 DPI -> 1.5).
func ScaleFactorForDPI(dpi uint32) float64 {
	return float64(dpi) / BaseDPI
}

func checkScaleFactor(f float64) {
	if !ValidateScaleFactor(f) {
		panic("dpi: invalid scale factor")
	}
}

// round narrows to an integer pixel value, rounding half away from zero.
func round(f float64) int64 {
	return int64(math.Round(f))
}

// LogicalPosition is a position in logical pixels.
type LogicalPosition struct {
	X float64
	Y float64
}

// PhysicalPosition is a position in device pixels. Coordinates can be
// negative on the virtual desktop.
type PhysicalPosition struct {
	X int32
	Y int32
}

// LogicalSize is a size in logical pixels.
type LogicalSize struct {
	Width  float64
	Height float64
}

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width  uint32
	Height uint32
}

// ToPhysical converts to device pixels. Panics on an invalid scale factor.
func (p LogicalPosition) ToPhysical(scaleFactor float64) PhysicalPosition {
	checkScaleFactor(scaleFactor)
	return PhysicalPosition{
		X: int32(round(p.X * scaleFactor)),
		Y: int32(round(p.Y * scaleFactor)),
	}
}

// ToLogical converts to logical pixels. Panics on an invalid scale factor.
func (p PhysicalPosition) ToLogical(scaleFactor float64) LogicalPosition {
	checkScaleFactor(scaleFactor)
	return LogicalPosition{
		X: float64(p.X) / scaleFactor,
		Y: float64(p.Y) / scaleFactor,
	}
}

// ToPhysical converts to device pixels. Panics on an invalid scale factor.
func (s LogicalSize) ToPhysical(scaleFactor float64) PhysicalSize {
	checkScaleFactor(scaleFactor)
	return PhysicalSize{
		Width:  uint32(round(s.Width * scaleFactor)),
		Height: uint32(round(s.Height * scaleFactor)),
	}
}

// ToLogical converts to logical pixels. Panics on an invalid scale factor.
func (s PhysicalSize) ToLogical(scaleFactor float64) LogicalSize {
	checkScaleFactor(scaleFactor)
	return LogicalSize{
		Width:  float64(s.Width) / scaleFactor,
		Height: float64(s.Height) / scaleFactor,
	}
}

// ClampSize limits desired to the [min, max] box, per dimension. All sizes
// are in device pixels.
func ClampSize(desired, min, max PhysicalSize) PhysicalSize {
	clamp := func(v, lo, hi uint32) uint32 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return PhysicalSize{
		Width:  clamp(desired.Width, min.Width, max.Width),
		Height: clamp(desired.Height, min.Height, max.Height),
	}
}
