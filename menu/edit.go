//go:build windows

package menu

import (
	"fmt"
	"unsafe"

	"github.com/rpdg/winshell/window"
)

const (
	inputKeyboard = 1

	vkControl = 0x11

	keyeventfKeyUp = 0x0002
)

// input mirrors the Win32 INPUT struct for INPUT_KEYBOARD. The union is as
// large as its biggest member (MOUSEINPUT), hence the trailing padding.
type input struct {
	Type uint32
	_    uint32 // alignment before the union on amd64
	Ki   keybdInput
	_    [8]byte // pad KEYBDINPUT (24 bytes) up to MOUSEINPUT (32 bytes)
}

type keybdInput struct {
	WVk         uint16
	WScan       uint16
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// sendEditShortcut synthesizes Ctrl+vk (down, key, key up, Ctrl up) with
// SendInput, delivering the standard edit behavior to whatever control has
// focus. Injecting the shortcut beats WM_CUT/WM_COPY because it works for
// controls that handle the accelerator rather than the message.
func sendEditShortcut(vk uint16) error {
	events := []input{
		{Type: inputKeyboard, Ki: keybdInput{WVk: vkControl}},
		{Type: inputKeyboard, Ki: keybdInput{WVk: vk}},
		{Type: inputKeyboard, Ki: keybdInput{WVk: vk, DwFlags: keyeventfKeyUp}},
		{Type: inputKeyboard, Ki: keybdInput{WVk: vkControl, DwFlags: keyeventfKeyUp}},
	}

	n, _, _ := window.ProcSendInput.Call(
		uintptr(len(events)),
		uintptr(unsafe.Pointer(&events[0])),
		unsafe.Sizeof(events[0]),
	)
	if int(n) != len(events) {
		return fmt.Errorf("SendInput injected %d of %d events", n, len(events))
	}
	return nil
}
