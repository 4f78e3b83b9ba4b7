package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"golang.org/x/image/bmp"
)

var rom = []byte{0x00, 0xC3, 0x50, 0x01}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func zipped(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadFile(t *testing.T) {
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write(rom)
	w.Close()

	tests := []struct {
		name string
		data []byte
	}{
		{"game.gb", rom},
		{"game.gb.gz", gz.Bytes()},
		{"game.zip", zipped(t, map[string][]byte{"readme.txt": []byte("hi"), "game.gb": rom})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(writeFile(t, tt.name, tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, rom) {
				t.Errorf("expected %x, got %x", rom, got)
			}
		})
	}
}

func TestLoadFile_NoROM(t *testing.T) {
	path := writeFile(t, "docs.zip", zipped(t, map[string][]byte{"readme.txt": []byte("hi")}))
	if _, err := LoadFile(path); !errors.Is(err, ErrNoROM) {
		t.Errorf("expected ErrNoROM, got %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(1, 0, 4) != 1 || Clamp(1, 5, 4) != 4 || Clamp(1, 3, 4) != 3 {
		t.Error("unexpected clamp result")
	}
	if Clamp(0.5, 2.0, 1.5) != 1.5 {
		t.Error("unexpected float clamp result")
	}
}

func TestFrameToImage(t *testing.T) {
	var frame ppu.Frame
	for y := range frame {
		for x := range frame[y] {
			frame[y][x] = palette.White
		}
	}
	frame[0][0] = palette.Black
	frame[143][159] = palette.DarkGrey

	img := FrameToImage(&frame, palette.Schemes[palette.Green])
	if got := img.RGBAAt(0, 0); got.R != 0x0F || got.G != 0x38 || got.B != 0x0F || got.A != 0xFF {
		t.Errorf("unexpected colour at 0,0: %v", got)
	}
	if got := img.RGBAAt(159, 143); got.R != 0x30 || got.G != 0x62 {
		t.Errorf("unexpected colour at 159,143: %v", got)
	}

	scaled := ScaleImage(img, 2)
	if scaled.Bounds().Dx() != 320 || scaled.Bounds().Dy() != 288 {
		t.Fatalf("unexpected scaled size %v", scaled.Bounds())
	}
	if scaled.RGBAAt(1, 1) != img.RGBAAt(0, 0) {
		t.Errorf("expected nearest neighbour scaling to keep pixels sharp")
	}
	if ScaleImage(img, 100).Bounds().Dx() != 160*MaxScale {
		t.Errorf("expected scale to be clamped to %d", MaxScale)
	}

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != ppu.ScreenWidth || decoded.Bounds().Dy() != ppu.ScreenHeight {
		t.Errorf("unexpected decoded size %v", decoded.Bounds())
	}
}
