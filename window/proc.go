//go:build windows

package window

import (
	"syscall"
)

var (
	user32  = syscall.NewLazyDLL("user32.dll")
	shcore  = syscall.NewLazyDLL("shcore.dll")
	shell32 = syscall.NewLazyDLL("shell32.dll")

	ProcFindWindowW              = user32.NewProc("FindWindowW")
	ProcGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	ProcEnumWindows              = user32.NewProc("EnumWindows")
	ProcIsWindow                 = user32.NewProc("IsWindow")
	ProcIsWindowVisible          = user32.NewProc("IsWindowVisible")
	ProcIsIconic                 = user32.NewProc("IsIconic")
	ProcShowWindow               = user32.NewProc("ShowWindow")
	ProcSetForegroundWindow      = user32.NewProc("SetForegroundWindow")

	ProcGetWindowTextW       = user32.NewProc("GetWindowTextW")
	ProcGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	ProcSetWindowTextW       = user32.NewProc("SetWindowTextW")

	ProcScreenToClient    = user32.NewProc("ScreenToClient")
	ProcClientToScreen    = user32.NewProc("ClientToScreen")
	ProcGetClientRect     = user32.NewProc("GetClientRect")
	ProcGetCursorPos      = user32.NewProc("GetCursorPos")
	ProcGetSystemMetrics  = user32.NewProc("GetSystemMetrics")
	ProcMonitorFromWindow = user32.NewProc("MonitorFromWindow")

	ProcGetDpiForWindow           = user32.NewProc("GetDpiForWindow") // Win10+
	ProcSetProcessDpiAwarenessCtx = user32.NewProc("SetProcessDpiAwarenessContext")

	ProcEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	ProcGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")

	ProcGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor")

	ProcCreateMenu       = user32.NewProc("CreateMenu")
	ProcCreatePopupMenu  = user32.NewProc("CreatePopupMenu")
	ProcDestroyMenu      = user32.NewProc("DestroyMenu")
	ProcAppendMenuW      = user32.NewProc("AppendMenuW")
	ProcSetMenu          = user32.NewProc("SetMenu")
	ProcSetMenuItemInfoW = user32.NewProc("SetMenuItemInfoW")
	ProcEnableMenuItem   = user32.NewProc("EnableMenuItem")
	ProcCheckMenuItem    = user32.NewProc("CheckMenuItem")
	ProcTrackPopupMenu   = user32.NewProc("TrackPopupMenu")

	ProcRegisterHotKey   = user32.NewProc("RegisterHotKey")
	ProcUnregisterHotKey = user32.NewProc("UnregisterHotKey")

	ProcGetMessageW      = user32.NewProc("GetMessageW")
	ProcTranslateMessage = user32.NewProc("TranslateMessage")
	ProcDispatchMessageW = user32.NewProc("DispatchMessageW")

	ProcSendInput  = user32.NewProc("SendInput")
	ProcLoadImageW = user32.NewProc("LoadImageW")

	ProcShellNotifyIconW = shell32.NewProc("Shell_NotifyIconW")
)
