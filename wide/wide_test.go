package wide

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "Untitled - Notepad"},
		{"latin accents", "Fenêtre première"},
		{"cyrillic", "Главное окно"},
		{"cjk", "メインウィンドウ"},
		{"supplementary plane", "emoji 🗔 and gothic 𐌰𐌱"},
		{"mixed", "Tray — 設定 ⚙ 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, err := Encode(tt.in)
			require.NoError(t, err)

			// Exactly one terminating zero unit, not part of the text.
			require.NotEmpty(t, units)
			assert.EqualValues(t, 0, units[len(units)-1])
			assert.NotContains(t, units[:len(units)-1], uint16(0))

			assert.Equal(t, tt.in, Decode(units[:len(units)-1]))
		})
	}
}

func TestEncode_SupplementaryPlaneUsesSurrogatePair(t *testing.T) {
	units, err := Encode("🗔")
	require.NoError(t, err)

	// One character, two units plus terminator.
	require.Len(t, units, 3)
	assert.True(t, units[0] >= 0xD800 && units[0] < 0xDC00, "high surrogate expected")
	assert.True(t, units[1] >= 0xDC00 && units[1] < 0xE000, "low surrogate expected")
}

func TestEncode_InteriorNUL(t *testing.T) {
	_, err := Encode("abc\x00def")
	assert.ErrorIs(t, err, ErrInteriorNUL)

	_, err = Ptr("abc\x00def")
	assert.ErrorIs(t, err, ErrInteriorNUL)
}

func TestEncode_InvalidUTF8Substituted(t *testing.T) {
	units, err := Encode("ok\xffok")
	require.NoError(t, err)

	assert.Equal(t, "ok�ok", Decode(units[:len(units)-1]))
}

func TestEncodeStrict(t *testing.T) {
	// Valid input behaves like Encode.
	units, err := EncodeStrict("fine")
	require.NoError(t, err)
	assert.Equal(t, "fine", Decode(units[:len(units)-1]))

	_, err = EncodeStrict("broken\xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = EncodeStrict("nul\x00")
	assert.ErrorIs(t, err, ErrInteriorNUL)
}

func TestDecode_UnpairedSurrogate(t *testing.T) {
	// A lone high surrogate cannot round-trip; it decodes to U+FFFD.
	assert.Equal(t, "a�b", Decode([]uint16{'a', 0xD83D, 'b'}))
}

func TestFromSlice(t *testing.T) {
	// Fixed native buffer with trailing garbage after the terminator.
	var buf [16]uint16
	copy(buf[:], utf16.Encode([]rune("tip")))
	buf[4] = 'X'

	assert.Equal(t, "tip", FromSlice(buf[:]))

	// No terminator at all: the whole slice is text.
	assert.Equal(t, "ab", FromSlice([]uint16{'a', 'b'}))
}

func TestFromPtr(t *testing.T) {
	units, err := Encode("pointer walk ✓")
	require.NoError(t, err)

	assert.Equal(t, "pointer walk ✓", FromPtr(&units[0]))
	assert.Equal(t, "", FromPtr(nil))

	var empty = []uint16{0}
	assert.Equal(t, "", FromPtr(&empty[0]))
}

func TestEncodeInto(t *testing.T) {
	var dst [8]uint16

	n, err := EncodeInto(dst[:], "short")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.EqualValues(t, 0, dst[5])
	assert.Equal(t, "short", FromSlice(dst[:]))
}

func TestEncodeInto_Truncates(t *testing.T) {
	var dst [4]uint16

	n, err := EncodeInto(dst[:], "overlong")
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, 4, n)
	assert.Equal(t, "ove", FromSlice(dst[:]))
}

func TestEncodeInto_NeverSplitsSurrogatePair(t *testing.T) {
	// "a" + emoji needs 4 units incl. terminator; give it 3 so the pair
	// cannot fit whole.
	var dst [3]uint16

	_, err := EncodeInto(dst[:], "a🗔")
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, "a", FromSlice(dst[:]))
}

func TestEncodeInto_ZeroDst(t *testing.T) {
	_, err := EncodeInto(nil, "x")
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestBuffer(t *testing.T) {
	b, err := NewBuffer("window title")
	require.NoError(t, err)

	assert.Equal(t, len("window title"), b.Len())
	assert.Equal(t, "window title", FromPtr(b.Ptr()))
	assert.NotZero(t, b.UintPtr())

	b.Close()
	assert.Panics(t, func() { b.Ptr() })
}

func TestWith(t *testing.T) {
	var seen uintptr
	err := With("scoped", func(ptr uintptr) error {
		seen = ptr
		return nil
	})
	require.NoError(t, err)
	assert.NotZero(t, seen)

	sentinel := errors.New("native call failed")
	err = With("scoped", func(uintptr) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)

	called := false
	err = With("bad\x00", func(uintptr) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrInteriorNUL)
	assert.False(t, called, "fn must not run when encoding fails")
}
