// Package wide converts Go strings to null-terminated UTF-16 code-unit
// sequences for native Win32 "W" APIs, and converts native wide strings back.
//
// Every ...W entry point in user32/shell32 expects a pointer to UTF-16 units
// ending in a single zero unit. Go has no implicit string marshalling at the
// syscall boundary, so the conversion is explicit here: encode, hold the
// buffer live across the call, release after. The Buffer type and With cover
// the "hold live" part.
//
// Policy for malformed input: Encode substitutes U+FFFD for invalid UTF-8
// bytes, matching what ranging over a Go string does. EncodeStrict rejects
// them instead. Both reject interior NUL runes, since a NUL would silently
// truncate the string on the native side.
package wide

import (
	"errors"
	"runtime"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

var (
	// ErrInteriorNUL implies the input contains a NUL rune, which would
	// truncate the string at the native boundary.
	ErrInteriorNUL = errors.New("wide: string contains interior NUL")

	// ErrInvalidUTF8 implies EncodeStrict found a byte sequence that is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("wide: string is not valid UTF-8")

	// ErrTruncated implies EncodeInto ran out of room and dropped trailing
	// characters. The destination is still null-terminated.
	ErrTruncated = errors.New("wide: encoded string truncated")
)

// Encode returns the UTF-16 encoding of s followed by exactly one
// terminating zero unit. Invalid UTF-8 bytes are replaced with U+FFFD.
func Encode(s string) ([]uint16, error) {
	// utf16.Encode of the rune slice would work too, but appending rune by
	// rune lets us catch interior NULs in the same pass.
	units := make([]uint16, 0, len(s)+1)
	for _, r := range s {
		if r == 0 {
			return nil, ErrInteriorNUL
		}
		units = utf16.AppendRune(units, r)
	}
	return append(units, 0), nil
}

// EncodeStrict is Encode, except invalid UTF-8 input is an error instead of
// being substituted.
func EncodeStrict(s string) ([]uint16, error) {
	units := make([]uint16, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, ErrInvalidUTF8
		}
		if r == 0 {
			return nil, ErrInteriorNUL
		}
		units = utf16.AppendRune(units, r)
		i += size
	}
	return append(units, 0), nil
}

// Ptr returns a pointer to the first unit of the encoded form of s. The
// caller must keep a reference (or use runtime.KeepAlive) until the native
// call that consumes the pointer has returned; prefer With or Buffer when
// the call site is not trivial.
func Ptr(s string) (*uint16, error) {
	units, err := Encode(s)
	if err != nil {
		return nil, err
	}
	return &units[0], nil
}

// Decode converts UTF-16 units back to a string. Unpaired surrogates decode
// to U+FFFD. A terminating zero unit, if present, must be removed by the
// caller first; use FromSlice for native fixed buffers.
func Decode(units []uint16) string {
	return string(utf16.Decode(units))
}

// FromSlice decodes a native fixed-size buffer, stopping at the first zero
// unit. Fields like NOTIFYICONDATAW.szTip and MONITORINFOEXW.szDevice are
// read this way.
func FromSlice(units []uint16) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	return Decode(units)
}

// FromPtr decodes a null-terminated native wide string. p must point to a
// valid sequence ending in a zero unit; a nil p yields "".
func FromPtr(p *uint16) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, unsafe.Sizeof(*p))
	}
	return Decode(unsafe.Slice(p, n))
}

// EncodeInto encodes s into dst, always leaving dst null-terminated. It
// returns the number of units written including the terminator. If dst is
// too small the string is cut on a character boundary (surrogate pairs are
// never split) and ErrTruncated is returned; Win32 fixed fields like tray
// tooltips conventionally truncate, so callers may ignore that error.
func EncodeInto(dst []uint16, s string) (int, error) {
	if len(dst) == 0 {
		return 0, ErrTruncated
	}
	units, err := Encode(s)
	if err != nil {
		return 0, err
	}
	units = units[:len(units)-1] // strip terminator, re-added below

	n := len(units)
	truncated := false
	if n > len(dst)-1 {
		n = len(dst) - 1
		// Never end on a high surrogate.
		if n > 0 && units[n-1] >= 0xD800 && units[n-1] < 0xDC00 {
			n--
		}
		truncated = true
	}
	copy(dst, units[:n])
	dst[n] = 0
	if truncated {
		return n + 1, ErrTruncated
	}
	return n + 1, nil
}

// Buffer holds a null-terminated UTF-16 string whose storage stays valid for
// the duration of a native call. Keep the Buffer reachable until the call
// returns; With does this automatically.
type Buffer struct {
	units []uint16
}

// NewBuffer encodes s into a fresh Buffer.
func NewBuffer(s string) (*Buffer, error) {
	units, err := Encode(s)
	if err != nil {
		return nil, err
	}
	return &Buffer{units: units}, nil
}

// Ptr returns the pointer to pass to the native call. It panics after Close.
func (b *Buffer) Ptr() *uint16 {
	return &b.units[0]
}

// UintPtr returns the pointer as a uintptr for Proc.Call argument lists. The
// Buffer itself must stay reachable across the call; the uintptr alone does
// not keep it alive.
func (b *Buffer) UintPtr() uintptr {
	return uintptr(unsafe.Pointer(&b.units[0]))
}

// Len returns the number of units excluding the terminator.
func (b *Buffer) Len() int {
	return len(b.units) - 1
}

// Close drops the storage. Using the Buffer afterwards panics, which is
// preferable to a native call reading freed memory going unnoticed.
func (b *Buffer) Close() {
	b.units = nil
}

// With encodes s, invokes fn with a pointer to the null-terminated units,
// and guarantees the storage outlives the call. This is the scoped form for
// one-shot native calls:
//
//	err := wide.With(title, func(p uintptr) error {
//	    r, _, _ := proc.Call(hwnd, p)
//	    if r == 0 {
//	        return ErrCallFailed
//	    }
//	    return nil
//	})
func With(s string, fn func(ptr uintptr) error) error {
	units, err := Encode(s)
	if err != nil {
		return err
	}
	err = fn(uintptr(unsafe.Pointer(&units[0])))
	runtime.KeepAlive(units)
	return err
}
