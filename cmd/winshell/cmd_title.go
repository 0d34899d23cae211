//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpdg/winshell"
)

var titleCmd = &cobra.Command{
	Use:   "title <current-title> [new-title]",
	Short: "Read or replace a window's caption",
	Long: `Finds the window whose caption exactly matches <current-title>.
With no further argument the caption is printed; with [new-title] it is replaced.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
}

func runTitle(cmd *cobra.Command, args []string) error {
	w, err := winshell.FindByTitle(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", err, args[0])
	}

	if len(args) == 1 {
		title, err := w.Title()
		if err != nil {
			return err
		}
		fmt.Println(title)
		return nil
	}

	if err := w.SetTitle(args[1]); err != nil {
		return err
	}
	log.Info().Str("from", args[0]).Str("to", args[1]).Msg("title replaced")
	return nil
}
