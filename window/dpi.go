//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"github.com/rpdg/winshell/dpi"
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnablePerMonitorDPI opts the process into per-monitor-v2 DPI awareness.
// Without it, every coordinate the process sees on a scaled monitor is
// virtualized. Requires Windows 10 1703+.
func EnablePerMonitorDPI() error {
	if ProcSetProcessDpiAwarenessCtx.Find() != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not found")
	}
	r, _, _ := ProcSetProcessDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed")
	}
	return nil
}

// GetDPI returns the effective DPI of the window's monitor. GetDpiForWindow
// is preferred (Win10+); older systems fall back to GetDpiForMonitor via
// shcore.
func GetDPI(hwnd uintptr) (uint32, error) {
	if ProcGetDpiForWindow.Find() == nil {
		r, _, _ := ProcGetDpiForWindow.Call(hwnd)
		if r != 0 {
			return uint32(r), nil
		}
	}

	hMon := MonitorFromWindow(hwnd)
	if hMon != 0 {
		dx, _, err := GetDpiForMonitor(hMon)
		if err == nil {
			return dx, nil
		}
	}

	return uint32(dpi.BaseDPI), fmt.Errorf("cannot determine DPI")
}

// ScaleFactor returns the window's scale factor (1.0 at 96 DPI).
func ScaleFactor(hwnd uintptr) (float64, error) {
	d, err := GetDPI(hwnd)
	if err != nil {
		return 1.0, err
	}
	return dpi.ScaleFactorForDPI(d), nil
}

func MonitorFromWindow(hwnd uintptr) uintptr {
	const MONITOR_DEFAULTTONEAREST = 2
	r, _, _ := ProcMonitorFromWindow.Call(hwnd, MONITOR_DEFAULTTONEAREST)
	return r
}

func GetDpiForMonitor(hmonitor uintptr) (dpiX, dpiY uint32, err error) {
	if ProcGetDpiForMonitor.Find() != nil {
		return 96, 96, fmt.Errorf("GetDpiForMonitor not found")
	}
	var dx, dy uint32
	// MDT_EFFECTIVE_DPI = 0
	r, _, _ := ProcGetDpiForMonitor.Call(hmonitor, 0, uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
	if r != 0 {
		return 96, 96, fmt.Errorf("GetDpiForMonitor failed")
	}
	return dx, dy, nil
}
