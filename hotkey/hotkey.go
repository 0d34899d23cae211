// Package hotkey describes global keyboard accelerators and, on Windows,
// registers them with the system via RegisterHotKey.
package hotkey

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

var (
	// ErrAlreadyRegistered implies the accelerator is already held by this
	// Manager.
	ErrAlreadyRegistered = errors.New("hotkey: accelerator already registered")

	// ErrNotRegistered implies the accelerator was never registered or was
	// already unregistered.
	ErrNotRegistered = errors.New("hotkey: accelerator not registered")
)

// Mods is a bitmask of modifier keys.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	// ModSuper is the Windows key.
	ModSuper
)

// modsMask is the set of modifiers Matches compares; anything outside it
// (caps lock state etc.) is ignored.
const modsMask = ModShift | ModCtrl | ModAlt | ModSuper

func (m Mods) String() string {
	s := ""
	if m&ModCtrl != 0 {
		s += "Ctrl+"
	}
	if m&ModAlt != 0 {
		s += "Alt+"
	}
	if m&ModShift != 0 {
		s += "Shift+"
	}
	if m&ModSuper != 0 {
		s += "Super+"
	}
	if s == "" {
		return "None"
	}
	return s[:len(s)-1]
}

// Accelerator is a modifier set plus a virtual-key code, e.g.
// Accelerator{Mods: ModCtrl | ModShift, Key: 'K'}. Letter and digit
// virtual-key codes equal their uppercase ASCII values.
type Accelerator struct {
	Mods Mods
	Key  uint16
}

func (a Accelerator) String() string {
	if a.Mods == 0 {
		return fmt.Sprintf("VK(0x%02X)", a.Key)
	}
	return fmt.Sprintf("%s+VK(0x%02X)", a.Mods, a.Key)
}

// ID derives a stable 16-bit identifier for the accelerator, used as the
// RegisterHotKey id and carried back in WM_HOTKEY's wParam.
func (a Accelerator) ID() uint16 {
	h := fnv.New32a()
	var buf [3]byte
	buf[0] = byte(a.Mods)
	binary.LittleEndian.PutUint16(buf[1:], a.Key)
	h.Write(buf[:])
	return uint16(h.Sum32())
}

// Matches reports whether the pressed key and active modifiers trigger this
// accelerator. Modifiers outside the base set are masked off before
// comparing.
func (a Accelerator) Matches(mods Mods, key uint16) bool {
	return a.Mods == mods&modsMask && a.Key == key
}

// Windows RegisterHotKey modifier flags.
const (
	modWinAlt     = 0x0001
	modWinControl = 0x0002
	modWinShift   = 0x0004
	modWinWin     = 0x0008
	// modWinNoRepeat keeps a held hotkey from firing repeatedly (Win7+).
	modWinNoRepeat = 0x4000
)

// winFlags converts Mods to RegisterHotKey fsModifiers flags.
func (m Mods) winFlags() uintptr {
	var f uintptr
	if m&ModAlt != 0 {
		f |= modWinAlt
	}
	if m&ModCtrl != 0 {
		f |= modWinControl
	}
	if m&ModShift != 0 {
		f |= modWinShift
	}
	if m&ModSuper != 0 {
		f |= modWinWin
	}
	return f | modWinNoRepeat
}
