package launcher

import (
	"image"
	"image/color"
)

// Texture is a backend-owned, drawable copy of an icon.
type Texture interface {
	Release()
}

// Surface is the rendering target. All calls come from the loop goroutine.
type Surface interface {
	CreateTexture(img image.Image) (Texture, error)
	// Show makes the surface visible. It is not called if initialization fails.
	Show() error
	Clear(c color.Color)
	DrawTexture(t Texture, dst image.Rectangle)
	// DrawRect strokes the outline of r, width pixels thick, inside r.
	DrawRect(r image.Rectangle, c color.Color, width int)
	Present()
	Close() error
}

// IconDecoder turns an icon file into a size×size image.
type IconDecoder interface {
	Decode(path string, size int) (image.Image, error)
}

var (
	Background     = color.RGBA{A: 0xff}
	HighlightColor = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
)
