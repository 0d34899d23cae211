//go:build windows

// Package menu builds native Win32 menus: window menu bars and the popup
// menus shown from a tray icon. Item titles cross the native boundary as
// wide strings held live for the duration of each call.
package menu

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/rpdg/winshell/wide"
	"github.com/rpdg/winshell/window"
)

var (
	// ErrMenuGone implies the menu handle was destroyed or never created.
	ErrMenuGone = errors.New("menu: handle is gone or invalid")
)

// Menu flags for AppendMenuW.
const (
	mfString    = 0x0000
	mfGrayed    = 0x0001
	mfDisabled  = 0x0002
	mfChecked   = 0x0008
	mfPopup     = 0x0010
	mfSeparator = 0x0800
	mfEnabled   = 0x0000
	mfUnchecked = 0x0000
)

// Command ids for the built-in edit items. Arbitrary values, chosen high
// enough not to collide with small application ids.
const (
	cutID   = 0x00084F2E
	copyID  = 0x00085FAE
	pasteID = 0x00086F4E
)

// Menu wraps an HMENU. Menus attached to a window or converted into a
// submenu are owned by the system; free-standing ones must be Destroyed.
type Menu struct {
	hmenu uintptr
}

// New creates an empty menu bar.
func New() (*Menu, error) {
	r, _, _ := window.ProcCreateMenu.Call()
	if r == 0 {
		return nil, fmt.Errorf("CreateMenu failed")
	}
	return &Menu{hmenu: r}, nil
}

// NewPopup creates an empty popup (context) menu.
func NewPopup() (*Menu, error) {
	r, _, _ := window.ProcCreatePopupMenu.Call()
	if r == 0 {
		return nil, fmt.Errorf("CreatePopupMenu failed")
	}
	return &Menu{hmenu: r}, nil
}

// Handle exposes the raw HMENU for callers integrating with their own
// message loop.
func (m *Menu) Handle() uintptr {
	return m.hmenu
}

func (m *Menu) append(flags uintptr, id uintptr, title string) error {
	if m.hmenu == 0 {
		return ErrMenuGone
	}
	if title == "" {
		r, _, _ := window.ProcAppendMenuW.Call(m.hmenu, flags, id, 0)
		if r == 0 {
			return fmt.Errorf("AppendMenuW failed")
		}
		return nil
	}
	return wide.With(title, func(p uintptr) error {
		r, _, _ := window.ProcAppendMenuW.Call(m.hmenu, flags, id, p)
		if r == 0 {
			return fmt.Errorf("AppendMenuW failed for %q", title)
		}
		return nil
	})
}

// Item is a custom menu entry. The id is what WM_COMMAND's wParam carries
// when the user picks it.
type Item struct {
	id    uint32
	hmenu uintptr
}

// ID returns the command id to match against WM_COMMAND.
func (it *Item) ID() uint32 { return it.id }

// AppendItem adds a selectable string entry.
func (m *Menu) AppendItem(id uint32, title string, enabled, checked bool) (*Item, error) {
	flags := uintptr(mfString)
	if !enabled {
		flags |= mfGrayed
	}
	if checked {
		flags |= mfChecked
	}
	if err := m.append(flags, uintptr(id), title); err != nil {
		return nil, err
	}
	return &Item{id: id, hmenu: m.hmenu}, nil
}

// AppendSeparator adds a horizontal separator line.
func (m *Menu) AppendSeparator() error {
	return m.append(mfSeparator, 0, "")
}

// AppendSubmenu adds sub as a child menu. Ownership of sub's handle moves to
// this menu; the system destroys it with the parent.
func (m *Menu) AppendSubmenu(title string, enabled bool, sub *Menu) error {
	flags := uintptr(mfPopup)
	if !enabled {
		flags |= mfDisabled
	}
	err := m.append(flags, sub.hmenu, title)
	if err == nil {
		sub.hmenu = 0
	}
	return err
}

// AppendCut, AppendCopy and AppendPaste add standard edit items with the
// usual accelerator captions. Their WM_COMMAND ids are matched by
// HandleCommand, which replays the edit shortcut into the focused control.
func (m *Menu) AppendCut() error {
	return m.append(mfString, cutID, "&Cut\tCtrl+X")
}

func (m *Menu) AppendCopy() error {
	return m.append(mfString, copyID, "&Copy\tCtrl+C")
}

func (m *Menu) AppendPaste() error {
	return m.append(mfString, pasteID, "&Paste\tCtrl+V")
}

// SetTitle rewrites the item's caption in place.
func (it *Item) SetTitle(title string) error {
	buf, err := wide.NewBuffer(title)
	if err != nil {
		return err
	}
	defer buf.Close()

	// MENUITEMINFOW with MIIM_STRING (0x40).
	info := menuItemInfoW{
		FMask:      0x40,
		DwTypeData: buf.Ptr(),
	}
	info.CbSize = uint32(unsafe.Sizeof(info))

	r, _, _ := window.ProcSetMenuItemInfoW.Call(
		it.hmenu,
		uintptr(it.id),
		0, // fByPosition = FALSE, lookup by command id
		uintptr(unsafe.Pointer(&info)),
	)
	if r == 0 {
		return fmt.Errorf("SetMenuItemInfoW failed for item %d", it.id)
	}
	return nil
}

// SetEnabled greys the item out or re-enables it.
func (it *Item) SetEnabled(enabled bool) error {
	flags := uintptr(mfEnabled)
	if !enabled {
		flags = mfGrayed
	}
	r, _, _ := window.ProcEnableMenuItem.Call(it.hmenu, uintptr(it.id), flags)
	// Returns -1 when the item does not exist.
	if int32(r) == -1 {
		return fmt.Errorf("EnableMenuItem: no item with id %d", it.id)
	}
	return nil
}

// SetChecked toggles the item's check mark.
func (it *Item) SetChecked(checked bool) error {
	flags := uintptr(mfUnchecked)
	if checked {
		flags = mfChecked
	}
	r, _, _ := window.ProcCheckMenuItem.Call(it.hmenu, uintptr(it.id), flags)
	if int32(r) == -1 {
		return fmt.Errorf("CheckMenuItem: no item with id %d", it.id)
	}
	return nil
}

// Attach installs the menu as hwnd's menu bar. The system takes ownership
// of the handle.
func (m *Menu) Attach(hwnd uintptr) error {
	if m.hmenu == 0 {
		return ErrMenuGone
	}
	r, _, _ := window.ProcSetMenu.Call(hwnd, m.hmenu)
	if r == 0 {
		return fmt.Errorf("SetMenu failed")
	}
	m.hmenu = 0
	return nil
}

// TrackPopup shows the menu as a context menu at screen coordinates x, y and
// waits for a selection. The chosen command id is returned, or 0 when the
// user dismissed the menu.
//
// hwnd must be brought to the foreground first or the menu will not close
// when the user clicks elsewhere; tray callers hit this classic quirk.
func (m *Menu) TrackPopup(hwnd uintptr, x, y int32) (uint32, error) {
	if m.hmenu == 0 {
		return 0, ErrMenuGone
	}
	window.ProcSetForegroundWindow.Call(hwnd)

	// TPM_RETURNCMD (0x100) | TPM_NONOTIFY (0x80)
	r, _, _ := window.ProcTrackPopupMenu.Call(
		m.hmenu,
		0x100|0x80,
		uintptr(x),
		uintptr(y),
		0,
		hwnd,
		0,
	)
	return uint32(r), nil
}

// HandleCommand dispatches a WM_COMMAND wParam. Built-in edit ids replay the
// matching keyboard shortcut into the focused control and report handled;
// anything else is the caller's custom item.
func HandleCommand(cmd uint32) (handled bool, err error) {
	switch cmd {
	case cutID:
		return true, sendEditShortcut('X')
	case copyID:
		return true, sendEditShortcut('C')
	case pasteID:
		return true, sendEditShortcut('V')
	}
	return false, nil
}

// Destroy releases a free-standing menu. No-op once the handle has been
// given away via Attach or AppendSubmenu.
func (m *Menu) Destroy() {
	if m.hmenu != 0 {
		window.ProcDestroyMenu.Call(m.hmenu)
		m.hmenu = 0
	}
}

type menuItemInfoW struct {
	CbSize        uint32
	FMask         uint32
	FType         uint32
	FState        uint32
	WID           uint32
	HSubMenu      uintptr
	HbmpChecked   uintptr
	HbmpUnchecked uintptr
	DwItemData    uintptr
	DwTypeData    *uint16
	Cch           uint32
	HbmpItem      uintptr
}
