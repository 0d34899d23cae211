//go:build windows

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpdg/winshell/hotkey"
	"github.com/rpdg/winshell/window"
)

var hotkeyCmd = &cobra.Command{
	Use:   "hotkey <combo>",
	Short: "Register a global hotkey and report each time it fires",
	Long: `Registers a system-wide hotkey and blocks, logging every activation.
The combo is modifiers plus a single key, e.g. "ctrl+shift+k" or "alt+f5".`,
	Args: cobra.ExactArgs(1),
	RunE: runHotkey,
}

func init() {
	rootCmd.AddCommand(hotkeyCmd)
}

func parseCombo(combo string) (hotkey.Accelerator, error) {
	var a hotkey.Accelerator
	parts := strings.Split(strings.ToLower(combo), "+")
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl":
			a.Mods |= hotkey.ModCtrl
		case "alt":
			a.Mods |= hotkey.ModAlt
		case "shift":
			a.Mods |= hotkey.ModShift
		case "win", "super":
			a.Mods |= hotkey.ModSuper
		default:
			return a, fmt.Errorf("unknown modifier %q", part)
		}
	}

	key := parts[len(parts)-1]
	switch {
	case len(key) == 1 && (key[0] >= 'a' && key[0] <= 'z' || key[0] >= '0' && key[0] <= '9'):
		a.Key = uint16(strings.ToUpper(key)[0])
	case strings.HasPrefix(key, "f"):
		var n int
		if _, err := fmt.Sscanf(key, "f%d", &n); err != nil || n < 1 || n > 24 {
			return a, fmt.Errorf("unknown key %q", key)
		}
		a.Key = uint16(0x70 + n - 1) // VK_F1 = 0x70
	default:
		return a, fmt.Errorf("unknown key %q", key)
	}
	return a, nil
}

func runHotkey(cmd *cobra.Command, args []string) error {
	accel, err := parseCombo(args[0])
	if err != nil {
		return err
	}

	mgr := hotkey.NewManager()
	defer mgr.Close()

	id, err := mgr.Register(accel)
	if err != nil {
		return err
	}
	log.Info().Str("combo", accel.String()).Uint16("id", id).Msg("hotkey registered, waiting (Ctrl+C to quit)")

	var msg window.Msg
	for {
		ok, err := window.GetMessage(&msg)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if msg.Message == hotkey.WMHotkey {
			if a, found := mgr.Lookup(uint16(msg.WParam)); found {
				log.Info().Str("combo", a.String()).Msg("hotkey fired")
			}
		}
		window.DispatchMessage(&msg)
	}
}
