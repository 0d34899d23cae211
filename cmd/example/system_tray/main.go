//go:build windows

package main

import (
	"os"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpdg/winshell/menu"
	"github.com/rpdg/winshell/tray"
)

var (
	kernel32             = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// The console window owns the icon, so the demo needs no window of its
	// own. A real application would use its main window here.
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		log.Fatal().Msg("no console window; run from a terminal")
	}

	ctx, err := menu.NewPopup()
	if err != nil {
		log.Fatal().Err(err).Msg("creating context menu")
	}
	defer ctx.Destroy()
	ctx.AppendItem(1, "Open", true, false)
	ctx.AppendSeparator()
	ctx.AppendItem(2, "Quit", true, false)

	var hicon uintptr
	if len(os.Args) > 1 {
		if hicon, err = tray.LoadIcon(os.Args[1]); err != nil {
			log.Fatal().Err(err).Str("path", os.Args[1]).Msg("loading icon")
		}
	}

	icon, err := tray.New(hwnd, tray.Options{
		Tooltip: "winshell tray example",
		Icon:    hicon,
		Menu:    ctx,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("adding tray icon")
	}
	log.Info().Msg("tray icon added; updating tooltip in 5s, removing in 10s")

	time.Sleep(5 * time.Second)
	if err := icon.SetTooltip("tooltip updated — even long tooltips are truncated safely at the 127-unit native limit without splitting characters like 🗔"); err != nil {
		log.Error().Err(err).Msg("updating tooltip")
	}

	time.Sleep(5 * time.Second)
	if err := icon.Remove(); err != nil {
		log.Error().Err(err).Msg("removing tray icon")
	}
	log.Info().Msg("done")
}
