//go:build windows

package window

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/rpdg/winshell/wide"
)

func FindByTitle(title string) (uintptr, error) {
	var hwnd uintptr
	err := wide.With(title, func(p uintptr) error {
		r, _, _ := ProcFindWindowW.Call(0, p)
		if r == 0 {
			return fmt.Errorf("window not found with title: %s", title)
		}
		hwnd = r
		return nil
	})
	return hwnd, err
}

func FindByClass(class string) (uintptr, error) {
	var hwnd uintptr
	err := wide.With(class, func(p uintptr) error {
		r, _, _ := ProcFindWindowW.Call(p, 0)
		if r == 0 {
			return fmt.Errorf("window not found with class: %s", class)
		}
		hwnd = r
		return nil
	})
	return hwnd, err
}

func FindByPID(targetPid uint32) ([]uintptr, error) {
	var hwnds []uintptr

	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		var pid uint32
		ProcGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

		if pid == targetPid {
			hwnds = append(hwnds, hwnd)
		}
		return 1 // Continue enumeration
	})

	ProcEnumWindows.Call(cb, 0)

	if len(hwnds) == 0 {
		return nil, fmt.Errorf("no windows found for PID: %d", targetPid)
	}

	return hwnds, nil
}

// Enum lists every top-level window handle. Untitled and hidden windows are
// included; filtering is the caller's job.
func Enum() ([]uintptr, error) {
	var hwnds []uintptr

	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		hwnds = append(hwnds, hwnd)
		return 1
	})

	r, _, _ := ProcEnumWindows.Call(cb, 0)
	if r == 0 && len(hwnds) == 0 {
		return nil, fmt.Errorf("EnumWindows failed")
	}
	return hwnds, nil
}
