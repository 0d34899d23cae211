//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpdg/winshell/dpi"
	"github.com/rpdg/winshell/screen"
	"github.com/rpdg/winshell/window"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors with bounds, work areas, and scale factors",
	RunE:  runMonitors,
}

func init() {
	rootCmd.AddCommand(monitorsCmd)
}

func runMonitors(cmd *cobra.Command, args []string) error {
	monitors, err := screen.Monitors()
	if err != nil {
		return err
	}

	vb := screen.VirtualBounds()
	fmt.Printf("virtual desktop: %dx%d at (%d,%d)\n\n", vb.Width(), vb.Height(), vb.Left, vb.Top)

	for _, m := range monitors {
		scale := 1.0
		if dx, _, err := window.GetDpiForMonitor(m.Handle); err == nil {
			scale = dpi.ScaleFactorForDPI(dx)
		}
		primary := ""
		if m.Primary {
			primary = " (primary)"
		}
		fmt.Printf("%s%s\n", m.DeviceName, primary)
		fmt.Printf("  bounds:    %dx%d at (%d,%d)\n", m.Bounds.Width(), m.Bounds.Height(), m.Bounds.Left, m.Bounds.Top)
		fmt.Printf("  work area: %dx%d at (%d,%d)\n", m.WorkArea.Width(), m.WorkArea.Height(), m.WorkArea.Left, m.WorkArea.Top)
		fmt.Printf("  scale:     %.2f\n", scale)
	}
	return nil
}
