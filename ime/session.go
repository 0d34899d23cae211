// Package ime assembles text delivered by the Windows Input Method Editor.
//
// After WM_IME_ENDCOMPOSITION the finished text arrives as a run of WM_CHAR
// messages, one UTF-16 code unit each; characters outside the Basic
// Multilingual Plane span two messages. A Session buffers the units and
// decodes the text once the run ends.
package ime

import "github.com/rpdg/winshell/wide"

// IME-related window messages.
const (
	WMChar                = 0x0102
	WMSysChar             = 0x0106
	WMIMEStartComposition = 0x010D
	WMIMEEndComposition   = 0x010E
	WMIMEComposition      = 0x010F
	WMIMECompositionFull  = 0x0290
	WMIMEChar             = 0x0286
)

// IsIMEMessage reports whether a message belongs to IME processing and
// should be routed through a Session.
func IsIMEMessage(msg uint32) bool {
	switch msg {
	case WMIMEComposition, WMIMECompositionFull, WMIMEStartComposition,
		WMIMEEndComposition, WMIMEChar, WMChar, WMSysChar:
		return true
	}
	return false
}

// Session accumulates the WM_CHAR units of one finished IME composition.
// The zero value is ready to use.
type Session struct {
	// collecting is true while WM_CHAR messages belonging to a finished
	// composition are still arriving.
	collecting bool
	units      []uint16
}

// Collecting reports whether the session is mid-run: a composition has ended
// but its characters have not all arrived yet.
func (s *Session) Collecting() bool {
	return s.collecting
}

// EndComposition marks the start of the WM_CHAR run that delivers the
// finished text. Call on WM_IME_ENDCOMPOSITION.
func (s *Session) EndComposition() {
	s.collecting = true
}

// PushChar feeds one WM_CHAR (or WM_SYSCHAR) code unit. lastInRun is whether
// the message queue holds no further key messages (PeekMessage with
// PM_NOREMOVE saw none); when the run is complete the decoded text is
// returned with done=true and the session resets.
//
// Units pushed outside a collecting run are ignored: they are ordinary
// keyboard input, not IME output.
func (s *Session) PushChar(unit uint16, lastInRun bool) (text string, done bool) {
	if !s.collecting {
		return "", false
	}
	s.units = append(s.units, unit)
	if !lastInRun {
		return "", false
	}
	text = wide.Decode(s.units)
	s.units = s.units[:0]
	s.collecting = false
	return text, true
}

// Reset discards any buffered units, e.g. when the target window loses
// focus mid-run.
func (s *Session) Reset() {
	s.units = s.units[:0]
	s.collecting = false
}
