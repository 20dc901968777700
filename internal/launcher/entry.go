package launcher

import (
	"image"

	"console-launcher/internal/models"
)

// Entry is one placed icon. It draws itself but does not know whether it
// is selected; the loop tells it.
type Entry struct {
	App      models.AppEntry
	Position image.Point
	Rect     image.Rectangle

	texture Texture
}

// The highlight sits outside the icon rectangle, so drawing it last only
// matters on surfaces coarser than a pixel.
func (e *Entry) Draw(s Surface, layout Layout, selected bool) {
	s.DrawTexture(e.texture, e.Rect)
	if selected {
		s.DrawRect(layout.HighlightRect(e.Rect), HighlightColor, layout.BorderWidth)
	}
}

func (e *Entry) release() {
	if e.texture != nil {
		e.texture.Release()
		e.texture = nil
	}
}
