//go:build windows

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpdg/winshell/hotkey"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		in   string
		want hotkey.Accelerator
	}{
		{"ctrl+shift+k", hotkey.Accelerator{Mods: hotkey.ModCtrl | hotkey.ModShift, Key: 'K'}},
		{"alt+f5", hotkey.Accelerator{Mods: hotkey.ModAlt, Key: 0x74}},
		{"win+d", hotkey.Accelerator{Mods: hotkey.ModSuper, Key: 'D'}},
		{"Ctrl+Alt+2", hotkey.Accelerator{Mods: hotkey.ModCtrl | hotkey.ModAlt, Key: '2'}},
		{"f11", hotkey.Accelerator{Key: 0x7A}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCombo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCombo_Rejects(t *testing.T) {
	for _, in := range []string{"hyper+k", "ctrl+", "ctrl+esc", "f99"} {
		_, err := parseCombo(in)
		assert.Error(t, err, in)
	}
}
