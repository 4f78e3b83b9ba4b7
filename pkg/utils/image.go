package utils

import (
	"image"
	"io"
	"os"

	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// MaxScale is the largest scale factor accepted by ScaleImage.
const MaxScale = 16

// FrameToImage converts a frame of shades into an RGBA image,
// colouring it with scheme.
func FrameToImage(frame *ppu.Frame, scheme palette.Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	FrameToRGBA(frame, scheme, img.Pix)
	return img
}

// FrameToRGBA writes frame into pix as packed RGBA pixels. pix
// must hold at least ScreenWidth * ScreenHeight * 4 bytes.
func FrameToRGBA(frame *ppu.Frame, scheme palette.Scheme, pix []byte) {
	i := 0
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			rgb := scheme.RGB(frame[y][x])
			pix[i], pix[i+1], pix[i+2], pix[i+3] = rgb[0], rgb[1], rgb[2], 0xFF
			i += 4
		}
	}
}

// ScaleImage scales img by factor using nearest neighbour sampling,
// which keeps pixel edges sharp. factor is clamped to [1, MaxScale].
func ScaleImage(img image.Image, factor int) *image.RGBA {
	factor = Clamp(1, factor, MaxScale)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// EncodeBMP writes img to w as a bitmap.
func EncodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// SaveBMP writes img to filename as a bitmap.
func SaveBMP(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := EncodeBMP(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
