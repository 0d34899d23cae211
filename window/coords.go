//go:build windows

package window

import (
	"fmt"
	"unsafe"
)

type point struct {
	X int32
	Y int32
}

type rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func ScreenToClient(hwnd uintptr, x, y int32) (cx, cy int32, err error) {
	p := point{X: x, Y: y}
	r, _, _ := ProcScreenToClient.Call(hwnd, uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return 0, 0, fmt.Errorf("ScreenToClient failed")
	}
	return p.X, p.Y, nil
}

func ClientToScreen(hwnd uintptr, x, y int32) (sx, sy int32, err error) {
	p := point{X: x, Y: y}
	r, _, _ := ProcClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return 0, 0, fmt.Errorf("ClientToScreen failed")
	}
	return p.X, p.Y, nil
}

// GetClientRect returns the client-area size in device pixels.
func GetClientRect(hwnd uintptr) (width, height int32, err error) {
	var rc rect
	r, _, _ := ProcGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return 0, 0, fmt.Errorf("GetClientRect failed")
	}
	return rc.Right - rc.Left, rc.Bottom - rc.Top, nil
}

func GetCursorPos() (x, y int32, err error) {
	var p point
	r, _, _ := ProcGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if r == 0 {
		return 0, 0, fmt.Errorf("GetCursorPos failed")
	}
	return p.X, p.Y, nil
}
