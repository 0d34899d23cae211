// Package winshell provides Windows shell and windowing utilities: window
// discovery and manipulation, native menus, notification-area icons, global
// hotkeys, and DPI-aware coordinate handling.
//
// All text crossing the Win32 boundary goes through the wide subpackage,
// which performs explicit UTF-16 encoding with a terminating NUL and keeps
// the buffer alive for the duration of the native call.
//
// Key Features:
// - Object-centric API (Window struct)
// - Window title, state and coordinate operations
// - Native menu bars, popup menus, and tray icons
// - System-wide hotkeys
// - DPI aware coordinate handling
// - Explicit error handling
//
// Example:
//
//	w, err := winshell.FindByTitle("Untitled - Notepad")
//	if err != nil {
//	    panic(err)
//	}
//
//	w.SetTitle("renamed by winshell")
//	w.Minimize()
package winshell
