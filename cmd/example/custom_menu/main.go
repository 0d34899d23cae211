//go:build windows

package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/rpdg/winshell"
	"github.com/rpdg/winshell/menu"
)

const (
	idOpen = iota + 1
	idSave
	idQuit
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Target: Notepad. The menu bar replaces Notepad's own, which is fine
	// for a demo window you are about to close anyway.
	w, err := winshell.FindByClass("Notepad")
	if err != nil {
		log.Fatal().Msg("Notepad not found. Please open Notepad to run this example.")
	}

	bar, err := menu.New()
	if err != nil {
		log.Fatal().Err(err).Msg("creating menu bar")
	}

	file, err := menu.NewPopup()
	if err != nil {
		log.Fatal().Err(err).Msg("creating file menu")
	}
	if _, err := file.AppendItem(idOpen, "&Open…", true, false); err != nil {
		log.Fatal().Err(err).Msg("appending item")
	}
	saveItem, err := file.AppendItem(idSave, "&Save", false, false)
	if err != nil {
		log.Fatal().Err(err).Msg("appending item")
	}
	file.AppendSeparator()
	file.AppendItem(idQuit, "&Quit", true, false)

	edit, err := menu.NewPopup()
	if err != nil {
		log.Fatal().Err(err).Msg("creating edit menu")
	}
	edit.AppendCut()
	edit.AppendCopy()
	edit.AppendPaste()

	if err := bar.AppendSubmenu("&File", true, file); err != nil {
		log.Fatal().Err(err).Msg("attaching file submenu")
	}
	if err := bar.AppendSubmenu("&Edit", true, edit); err != nil {
		log.Fatal().Err(err).Msg("attaching edit submenu")
	}

	// Demonstrate in-place item updates before handing the bar over.
	saveItem.SetTitle("&Save (disabled until a file is open)")

	if err := w.SetMenu(bar); err != nil {
		log.Fatal().Err(err).Msg("installing menu bar")
	}
	log.Info().Msg("menu installed; WM_COMMAND ids 1-3 are now delivered to Notepad")
}
