package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceleratorID_Stable(t *testing.T) {
	a := Accelerator{Mods: ModCtrl | ModShift, Key: 'K'}

	assert.Equal(t, a.ID(), a.ID())
	assert.Equal(t, a.ID(), Accelerator{Mods: ModCtrl | ModShift, Key: 'K'}.ID())
}

func TestAcceleratorID_DistinguishesInputs(t *testing.T) {
	base := Accelerator{Mods: ModCtrl, Key: 'A'}

	assert.NotEqual(t, base.ID(), Accelerator{Mods: ModAlt, Key: 'A'}.ID())
	assert.NotEqual(t, base.ID(), Accelerator{Mods: ModCtrl, Key: 'B'}.ID())
}

func TestMatches(t *testing.T) {
	a := Accelerator{Mods: ModCtrl | ModAlt, Key: 'T'}

	assert.True(t, a.Matches(ModCtrl|ModAlt, 'T'))
	assert.False(t, a.Matches(ModCtrl, 'T'))
	assert.False(t, a.Matches(ModCtrl|ModAlt, 'U'))
	assert.False(t, a.Matches(ModCtrl|ModAlt|ModShift, 'T'))
}

func TestMatches_NoModifiers(t *testing.T) {
	a := Accelerator{Key: 0x7A} // F11

	assert.True(t, a.Matches(0, 0x7A))
	assert.False(t, a.Matches(ModShift, 0x7A))
}

func TestModsString(t *testing.T) {
	assert.Equal(t, "None", Mods(0).String())
	assert.Equal(t, "Ctrl", ModCtrl.String())
	assert.Equal(t, "Ctrl+Alt+Shift", (ModCtrl | ModAlt | ModShift).String())
	assert.Equal(t, "Super", ModSuper.String())
}

func TestModsWinFlags(t *testing.T) {
	flags := (ModCtrl | ModShift).winFlags()

	assert.EqualValues(t, modWinControl, flags&modWinControl)
	assert.EqualValues(t, modWinShift, flags&modWinShift)
	assert.Zero(t, flags&modWinAlt)
	assert.EqualValues(t, modWinNoRepeat, flags&modWinNoRepeat)
}
