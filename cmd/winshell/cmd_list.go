//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpdg/winshell"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows with their titles and state",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	windows, err := winshell.List()
	if err != nil {
		return err
	}

	for _, w := range windows {
		title, err := w.Title()
		if err != nil {
			log.Debug().Err(err).Uint64("hwnd", uint64(w.HWND)).Msg("skipping window")
			continue
		}
		state := "visible"
		if w.IsMinimized() {
			state = "minimized"
		} else if !w.IsVisible() {
			state = "hidden"
		}
		fmt.Printf("%10x  %-9s  %s\n", w.HWND, state, title)
	}
	log.Info().Int("count", len(windows)).Msg("windows enumerated")
	return nil
}
