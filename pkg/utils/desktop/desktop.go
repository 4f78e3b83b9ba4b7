// Package desktop wraps the native file dialog and clipboard.
// Both need cgo and a desktop session, so they live apart from
// the rest of utils.
package desktop

import (
	"bytes"
	"image"
	"image/png"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
)

// AskForFile shows a native file picker filtered to ROM files
// and archives, returning the chosen path.
func AskForFile(title, startingDir string) (string, error) {
	builder := dialog.File().
		SetStartDir(startingDir).
		Filter("Game Boy ROM", "gb", "zip", "7z", "gz").
		Title(title)

	// show the dialog
	return builder.Load()
}

// CopyImage places img on the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	if err := clipboard.Init(); err != nil {
		return err
	}

	// encode image to byte slice
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())
	return nil
}
