package ime

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SingleCharComposition(t *testing.T) {
	var s Session

	s.EndComposition()
	require.True(t, s.Collecting())

	text, done := s.PushChar('あ', true)
	assert.True(t, done)
	assert.Equal(t, "あ", text)
	assert.False(t, s.Collecting())
}

func TestSession_MultiCharRun(t *testing.T) {
	var s Session
	s.EndComposition()

	for _, u := range utf16.Encode([]rune("日本")) {
		_, done := s.PushChar(u, false)
		assert.False(t, done)
	}
	text, done := s.PushChar('語', true)

	require.True(t, done)
	assert.Equal(t, "日本語", text)
}

func TestSession_SurrogatePairSpansMessages(t *testing.T) {
	var s Session
	s.EndComposition()

	pair := utf16.Encode([]rune("🀄")) // mahjong tile, two units
	require.Len(t, pair, 2)

	_, done := s.PushChar(pair[0], false)
	assert.False(t, done)

	text, done := s.PushChar(pair[1], true)
	require.True(t, done)
	assert.Equal(t, "🀄", text)
}

func TestSession_IgnoresCharsOutsideComposition(t *testing.T) {
	var s Session

	text, done := s.PushChar('a', true)
	assert.False(t, done)
	assert.Empty(t, text)
}

func TestSession_ConsecutiveCompositions(t *testing.T) {
	var s Session

	s.EndComposition()
	text, done := s.PushChar('一', true)
	require.True(t, done)
	require.Equal(t, "一", text)

	s.EndComposition()
	text, done = s.PushChar('二', true)
	require.True(t, done)
	assert.Equal(t, "二", text)
}

func TestSession_Reset(t *testing.T) {
	var s Session
	s.EndComposition()
	s.PushChar('x', false)

	s.Reset()
	assert.False(t, s.Collecting())

	// Buffered unit must not leak into the next composition.
	s.EndComposition()
	text, done := s.PushChar('y', true)
	require.True(t, done)
	assert.Equal(t, "y", text)
}

func TestIsIMEMessage(t *testing.T) {
	assert.True(t, IsIMEMessage(WMChar))
	assert.True(t, IsIMEMessage(WMIMEEndComposition))
	assert.True(t, IsIMEMessage(WMSysChar))
	assert.False(t, IsIMEMessage(0x0100)) // WM_KEYDOWN
	assert.False(t, IsIMEMessage(0x0200)) // WM_MOUSEMOVE
}
