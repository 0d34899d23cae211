//go:build windows

package window

import (
	"fmt"
	"unsafe"
)

// Msg mirrors the Win32 MSG structure.
type Msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
	_       uint32 // lPrivate
}

// GetMessage blocks for the next message posted to the calling thread.
// It returns false on WM_QUIT. Hotkey and tray callers drive their loops
// with it.
func GetMessage(m *Msg) (bool, error) {
	r, _, _ := ProcGetMessageW.Call(uintptr(unsafe.Pointer(m)), 0, 0, 0)
	switch int32(r) {
	case -1:
		return false, fmt.Errorf("GetMessageW failed")
	case 0:
		return false, nil
	}
	return true, nil
}

// DispatchMessage forwards a message to its window procedure.
func DispatchMessage(m *Msg) {
	ProcTranslateMessage.Call(uintptr(unsafe.Pointer(m)))
	ProcDispatchMessageW.Call(uintptr(unsafe.Pointer(m)))
}
