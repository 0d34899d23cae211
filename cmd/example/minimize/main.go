//go:build windows

package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpdg/winshell"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	winshell.EnablePerMonitorDPI()

	// Target: Notepad
	w, err := winshell.FindByClass("Notepad")
	if err != nil {
		log.Fatal().Msg("Notepad not found. Please open Notepad to run this example.")
	}

	title, _ := w.Title()
	log.Info().Str("title", title).Uint64("hwnd", uint64(w.HWND)).Msg("found window")

	log.Info().Msg("minimizing...")
	if err := w.Minimize(); err != nil {
		log.Fatal().Err(err).Msg("minimize failed")
	}

	time.Sleep(2 * time.Second)

	log.Info().Msg("restoring...")
	if err := w.Restore(); err != nil {
		log.Fatal().Err(err).Msg("restore failed")
	}

	if sf, err := w.ScaleFactor(); err == nil {
		log.Info().Float64("scale", sf).Msg("window scale factor")
	}
}
