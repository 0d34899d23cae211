//go:build windows

// Package tray puts an icon in the Windows notification area through
// Shell_NotifyIconW and keeps it updated. The fixed-size tooltip field of
// NOTIFYICONDATAW is the canonical case of encoding into a bounded native
// wide buffer: overlong tooltips are truncated, never split mid-character.
package tray

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/rpdg/winshell/menu"
	"github.com/rpdg/winshell/wide"
	"github.com/rpdg/winshell/window"
)

var (
	// ErrIconGone implies the tray icon was removed or never added.
	ErrIconGone = errors.New("tray: icon is gone or was removed")
)

// Shell_NotifyIcon messages and flags.
const (
	nimAdd    = 0x0
	nimModify = 0x1
	nimDelete = 0x2

	nifMessage = 0x1
	nifIcon    = 0x2
	nifTip     = 0x4
)

// CallbackMessage is the window message the shell posts to the owner window
// for tray icon mouse activity. lParam carries the mouse message
// (LeftUp, RightUp, ...).
const CallbackMessage = 0x8000 + 0x20 // WM_APP + 0x20

// Mouse messages delivered in the callback's lParam.
const (
	LeftUp     = 0x0202 // WM_LBUTTONUP
	RightUp    = 0x0205 // WM_RBUTTONUP
	MiddleUp   = 0x0208 // WM_MBUTTONUP
	DoubleLeft = 0x0203 // WM_LBUTTONDBLCLK
)

// tipLen is the szTip capacity in NOTIFYICONDATAW, terminator included.
const tipLen = 128

type notifyIconDataW struct {
	CbSize           uint32
	HWnd             uintptr
	UID              uint32
	UFlags           uint32
	UCallbackMessage uint32
	HIcon            uintptr
	SzTip            [tipLen]uint16
	DwState          uint32
	DwStateMask      uint32
	SzInfo           [256]uint16
	UVersion         uint32
	SzInfoTitle      [64]uint16
	DwInfoFlags      uint32
	GuidItem         [16]byte
	HBalloonIcon     uintptr
}

// Options configures a new tray icon.
type Options struct {
	// Tooltip shown on hover. Truncated to the native field size.
	Tooltip string
	// Icon is an HICON, e.g. from LoadIcon. Zero shows the default blank.
	Icon uintptr
	// Menu, when set, is popped up by HandleCallback on right click.
	Menu *menu.Menu
}

// Icon is a live notification-area entry owned by hwnd. All methods must be
// used from the thread running hwnd's message loop.
type Icon struct {
	hwnd uintptr
	uid  uint32
	menu *menu.Menu
	gone bool
}

// next uid per owner window; a plain counter is enough since icons are
// thread-confined.
var nextUID uint32

func notify(msg uintptr, data *notifyIconDataW) error {
	r, _, _ := window.ProcShellNotifyIconW.Call(msg, uintptr(unsafe.Pointer(data)))
	if r == 0 {
		return fmt.Errorf("Shell_NotifyIconW(%d) failed", msg)
	}
	return nil
}

func (i *Icon) baseData() notifyIconDataW {
	d := notifyIconDataW{
		HWnd: i.hwnd,
		UID:  i.uid,
	}
	d.CbSize = uint32(unsafe.Sizeof(d))
	return d
}

// New adds an icon to the notification area. The owner window receives
// CallbackMessage for mouse activity on it.
func New(hwnd uintptr, opts Options) (*Icon, error) {
	nextUID++
	i := &Icon{hwnd: hwnd, uid: nextUID, menu: opts.Menu}

	d := i.baseData()
	d.UFlags = nifMessage | nifIcon | nifTip
	d.UCallbackMessage = CallbackMessage
	d.HIcon = opts.Icon
	// Win32 tooltips truncate by convention; ErrTruncated is expected for
	// long strings and not a failure here.
	if _, err := wide.EncodeInto(d.SzTip[:], opts.Tooltip); err != nil && !errors.Is(err, wide.ErrTruncated) {
		return nil, err
	}

	if err := notify(nimAdd, &d); err != nil {
		return nil, err
	}
	return i, nil
}

// SetTooltip replaces the hover text.
func (i *Icon) SetTooltip(tip string) error {
	if i.gone {
		return ErrIconGone
	}
	d := i.baseData()
	d.UFlags = nifTip
	if _, err := wide.EncodeInto(d.SzTip[:], tip); err != nil && !errors.Is(err, wide.ErrTruncated) {
		return err
	}
	return notify(nimModify, &d)
}

// SetIcon swaps the displayed icon.
func (i *Icon) SetIcon(hicon uintptr) error {
	if i.gone {
		return ErrIconGone
	}
	d := i.baseData()
	d.UFlags = nifIcon
	d.HIcon = hicon
	return notify(nimModify, &d)
}

// SetMenu replaces the context menu popped by HandleCallback. A nil menu
// disables the popup.
func (i *Icon) SetMenu(m *menu.Menu) {
	i.menu = m
}

// HandleCallback processes one CallbackMessage. On right click it shows the
// context menu at the cursor and returns the chosen command id (0 when
// dismissed or when no menu is set). Other mouse messages are reported back
// for the caller to act on.
func (i *Icon) HandleCallback(lparam uintptr) (cmd uint32, mouseMsg uint32, err error) {
	if i.gone {
		return 0, 0, ErrIconGone
	}
	mouseMsg = uint32(lparam)
	if mouseMsg != RightUp || i.menu == nil {
		return 0, mouseMsg, nil
	}

	x, y, err := window.GetCursorPos()
	if err != nil {
		return 0, mouseMsg, err
	}
	cmd, err = i.menu.TrackPopup(i.hwnd, x, y)
	return cmd, mouseMsg, err
}

// Remove deletes the icon from the notification area. Further calls on the
// Icon return ErrIconGone.
func (i *Icon) Remove() error {
	if i.gone {
		return ErrIconGone
	}
	d := i.baseData()
	if err := notify(nimDelete, &d); err != nil {
		return err
	}
	i.gone = true
	return nil
}
