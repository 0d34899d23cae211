//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"github.com/rpdg/winshell/wide"
)

// GetTitle reads the window caption. An empty title and a failed call are
// indistinguishable at the GetWindowTextW level, so the length is queried
// first.
func GetTitle(hwnd uintptr) (string, error) {
	if !IsValid(hwnd) {
		return "", fmt.Errorf("invalid window handle: %x", hwnd)
	}

	n, _, _ := ProcGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return "", nil
	}

	buf := make([]uint16, n+1)
	r, _, _ := ProcGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), n+1)
	if r == 0 {
		return "", fmt.Errorf("GetWindowTextW failed for handle %x", hwnd)
	}
	return wide.FromSlice(buf), nil
}

// SetTitle replaces the window caption.
func SetTitle(hwnd uintptr, title string) error {
	return wide.With(title, func(p uintptr) error {
		r, _, _ := ProcSetWindowTextW.Call(hwnd, p)
		if r == 0 {
			return fmt.Errorf("SetWindowTextW failed for handle %x", hwnd)
		}
		return nil
	})
}
