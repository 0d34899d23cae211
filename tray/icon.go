//go:build windows

package tray

import (
	"fmt"

	"github.com/rpdg/winshell/wide"
	"github.com/rpdg/winshell/window"
)

// LoadImageW arguments.
const (
	imageIcon      = 1
	lrLoadFromFile = 0x0010
	lrDefaultSize  = 0x0040
)

// LoadIcon loads an .ico file from disk and returns the HICON for
// Options.Icon or SetIcon.
func LoadIcon(path string) (uintptr, error) {
	var hicon uintptr
	err := wide.With(path, func(p uintptr) error {
		r, _, _ := window.ProcLoadImageW.Call(
			0, // no module, loading from file
			p,
			imageIcon,
			0, 0, // use the resource's own size
			lrLoadFromFile|lrDefaultSize,
		)
		if r == 0 {
			return fmt.Errorf("LoadImageW failed for %s", path)
		}
		hicon = r
		return nil
	})
	return hicon, err
}
