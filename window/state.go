//go:build windows

package window

import "fmt"

// ShowWindow commands.
const (
	swMinimize = 6 // SW_MINIMIZE
	swMaximize = 3 // SW_MAXIMIZE
	swRestore  = 9 // SW_RESTORE
	swShow     = 5 // SW_SHOW
	swHide     = 0 // SW_HIDE
)

func IsValid(hwnd uintptr) bool {
	r, _, _ := ProcIsWindow.Call(hwnd)
	return r != 0
}

func IsVisible(hwnd uintptr) bool {
	r, _, _ := ProcIsWindowVisible.Call(hwnd)
	return r != 0
}

func IsIconic(hwnd uintptr) bool {
	r, _, _ := ProcIsIconic.Call(hwnd)
	return r != 0
}

// show issues a ShowWindow command. The return value of ShowWindow is the
// previous visibility state, not success, so the only failure mode checked
// is an invalid handle.
func show(hwnd uintptr, cmd uintptr) error {
	if !IsValid(hwnd) {
		return fmt.Errorf("invalid window handle: %x", hwnd)
	}
	ProcShowWindow.Call(hwnd, cmd)
	return nil
}

func Minimize(hwnd uintptr) error { return show(hwnd, swMinimize) }
func Maximize(hwnd uintptr) error { return show(hwnd, swMaximize) }
func Restore(hwnd uintptr) error  { return show(hwnd, swRestore) }
func Show(hwnd uintptr) error     { return show(hwnd, swShow) }
func Hide(hwnd uintptr) error     { return show(hwnd, swHide) }

// SetForeground brings the window to the foreground. Windows refuses this
// for background processes in some focus-stealing scenarios; that surfaces
// as an error here.
func SetForeground(hwnd uintptr) error {
	r, _, _ := ProcSetForegroundWindow.Call(hwnd)
	if r == 0 {
		return fmt.Errorf("SetForegroundWindow failed")
	}
	return nil
}
