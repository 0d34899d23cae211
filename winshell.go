//go:build windows

package winshell

import (
	"fmt"

	"github.com/rpdg/winshell/dpi"
	"github.com/rpdg/winshell/menu"
	"github.com/rpdg/winshell/window"
)

type Window struct {
	HWND uintptr
}

// -----------------------------------------------------------------------------
// Window Discovery
// -----------------------------------------------------------------------------

func FindByTitle(title string) (*Window, error) {
	hwnd, err := window.FindByTitle(title)
	if err != nil {
		return nil, ErrWindowNotFound
	}
	return &Window{HWND: hwnd}, nil
}

func FindByClass(class string) (*Window, error) {
	hwnd, err := window.FindByClass(class)
	if err != nil {
		return nil, ErrWindowNotFound
	}
	return &Window{HWND: hwnd}, nil
}

func FindByPID(pid uint32) ([]*Window, error) {
	hwnds, err := window.FindByPID(pid)
	if err != nil {
		return nil, ErrWindowNotFound
	}
	windows := make([]*Window, len(hwnds))
	for i, h := range hwnds {
		windows[i] = &Window{HWND: h}
	}
	return windows, nil
}

// List returns every top-level window with a non-empty title.
func List() ([]*Window, error) {
	hwnds, err := window.Enum()
	if err != nil {
		return nil, err
	}
	var windows []*Window
	for _, h := range hwnds {
		title, err := window.GetTitle(h)
		if err != nil || title == "" {
			continue
		}
		windows = append(windows, &Window{HWND: h})
	}
	return windows, nil
}

// -----------------------------------------------------------------------------
// Window State
// -----------------------------------------------------------------------------

func (w *Window) IsValid() bool {
	return window.IsValid(w.HWND)
}

func (w *Window) IsVisible() bool {
	return window.IsVisible(w.HWND) && !window.IsIconic(w.HWND)
}

func (w *Window) IsMinimized() bool {
	return window.IsIconic(w.HWND)
}

func (w *Window) checkValid() error {
	if !w.IsValid() {
		return ErrWindowGone
	}
	return nil
}

func (w *Window) Minimize() error {
	if err := w.checkValid(); err != nil {
		return err
	}
	return window.Minimize(w.HWND)
}

func (w *Window) Maximize() error {
	if err := w.checkValid(); err != nil {
		return err
	}
	return window.Maximize(w.HWND)
}

func (w *Window) Restore() error {
	if err := w.checkValid(); err != nil {
		return err
	}
	return window.Restore(w.HWND)
}

func (w *Window) Focus() error {
	if err := w.checkValid(); err != nil {
		return err
	}
	return window.SetForeground(w.HWND)
}

// -----------------------------------------------------------------------------
// Title
// -----------------------------------------------------------------------------

func (w *Window) Title() (string, error) {
	if err := w.checkValid(); err != nil {
		return "", err
	}
	title, err := window.GetTitle(w.HWND)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTitleRejected, err)
	}
	return title, nil
}

func (w *Window) SetTitle(title string) error {
	if err := w.checkValid(); err != nil {
		return err
	}
	if err := window.SetTitle(w.HWND, title); err != nil {
		return fmt.Errorf("%w: %v", ErrTitleRejected, err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Menu
// -----------------------------------------------------------------------------

// SetMenu installs m as this window's menu bar. The system takes ownership
// of the menu handle.
func (w *Window) SetMenu(m *menu.Menu) error {
	if err := w.checkValid(); err != nil {
		return err
	}
	return m.Attach(w.HWND)
}

// -----------------------------------------------------------------------------
// Coordinate & DPI
// -----------------------------------------------------------------------------

func EnablePerMonitorDPI() error {
	return window.EnablePerMonitorDPI()
}

func (w *Window) DPI() (uint32, error) {
	return window.GetDPI(w.HWND)
}

// ScaleFactor returns the window's UI scale factor (1.0 at 96 DPI).
func (w *Window) ScaleFactor() (float64, error) {
	return window.ScaleFactor(w.HWND)
}

// InnerSize returns the client-area size in device pixels.
func (w *Window) InnerSize() (dpi.PhysicalSize, error) {
	width, height, err := window.GetClientRect(w.HWND)
	if err != nil {
		return dpi.PhysicalSize{}, err
	}
	return dpi.PhysicalSize{Width: uint32(width), Height: uint32(height)}, nil
}

// InnerSizeLogical returns the client-area size in logical pixels, using the
// window's current scale factor.
func (w *Window) InnerSizeLogical() (dpi.LogicalSize, error) {
	physical, err := w.InnerSize()
	if err != nil {
		return dpi.LogicalSize{}, err
	}
	sf, err := w.ScaleFactor()
	if err != nil {
		return dpi.LogicalSize{}, err
	}
	return physical.ToLogical(sf), nil
}

func (w *Window) ScreenToClient(x, y int32) (cx, cy int32, err error) {
	return window.ScreenToClient(w.HWND, x, y)
}

func (w *Window) ClientToScreen(x, y int32) (sx, sy int32, err error) {
	return window.ClientToScreen(w.HWND, x, y)
}
