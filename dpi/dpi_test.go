package dpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateScaleFactor(t *testing.T) {
	tests := []struct {
		name  string
		in    float64
		valid bool
	}{
		{"one", 1.0, true},
		{"fractional", 1.25, true},
		{"large", 4.0, true},
		{"zero", 0, false},
		{"negative", -1.5, false},
		{"nan", math.NaN(), false},
		{"positive inf", math.Inf(1), false},
		{"negative inf", math.Inf(-1), false},
		{"subnormal", math.SmallestNonzeroFloat64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateScaleFactor(tt.in))
		})
	}
}

func TestScaleFactorForDPI(t *testing.T) {
	assert.Equal(t, 1.0, ScaleFactorForDPI(96))
	assert.Equal(t, 1.25, ScaleFactorForDPI(120))
	assert.Equal(t, 1.5, ScaleFactorForDPI(144))
	assert.Equal(t, 2.0, ScaleFactorForDPI(192))
}

func TestPositionConversion(t *testing.T) {
	logical := LogicalPosition{X: 100, Y: -50}

	physical := logical.ToPhysical(1.5)
	assert.Equal(t, PhysicalPosition{X: 150, Y: -75}, physical)

	back := physical.ToLogical(1.5)
	assert.Equal(t, logical, back)
}

func TestPositionConversion_RoundsHalfAwayFromZero(t *testing.T) {
	// 10 * 1.25 = 12.5 rounds to 13, -10 * 1.25 = -12.5 rounds to -13.
	p := LogicalPosition{X: 10, Y: -10}.ToPhysical(1.25)
	assert.Equal(t, PhysicalPosition{X: 13, Y: -13}, p)
}

func TestSizeConversion(t *testing.T) {
	physical := PhysicalSize{Width: 1920, Height: 1080}

	logical := physical.ToLogical(2.0)
	assert.Equal(t, LogicalSize{Width: 960, Height: 540}, logical)

	assert.Equal(t, physical, logical.ToPhysical(2.0))
}

func TestConversion_PanicsOnInvalidScaleFactor(t *testing.T) {
	assert.Panics(t, func() { LogicalPosition{}.ToPhysical(0) })
	assert.Panics(t, func() { PhysicalPosition{}.ToLogical(-1) })
	assert.Panics(t, func() { LogicalSize{}.ToPhysical(math.NaN()) })
	assert.Panics(t, func() { PhysicalSize{}.ToLogical(math.Inf(1)) })
}

func TestClampSize(t *testing.T) {
	min := PhysicalSize{Width: 200, Height: 100}
	max := PhysicalSize{Width: 800, Height: 600}

	assert.Equal(t, PhysicalSize{Width: 400, Height: 300},
		ClampSize(PhysicalSize{Width: 400, Height: 300}, min, max))
	assert.Equal(t, PhysicalSize{Width: 200, Height: 600},
		ClampSize(PhysicalSize{Width: 50, Height: 900}, min, max))
	assert.Equal(t, max, ClampSize(PhysicalSize{Width: 9999, Height: 9999}, min, max))
}
