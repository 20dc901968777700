package launcher

import (
	"fmt"
	"image"
	"time"
)

// Layout fixes the window geometry and the grid the icons are placed on.
type Layout struct {
	WindowWidth   int
	WindowHeight  int
	IconSize      int
	Spacing       int
	Columns       int
	BorderWidth   int
	BorderInset   int
	FrameInterval time.Duration
}

func DefaultLayout() Layout {
	return Layout{
		WindowWidth:   800,
		WindowHeight:  480,
		IconSize:      128,
		Spacing:       20,
		Columns:       3,
		BorderWidth:   4,
		BorderInset:   4,
		FrameInterval: 16 * time.Millisecond,
	}
}

func (l Layout) Validate() error {
	switch {
	case l.WindowWidth <= 0 || l.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d must be positive", l.WindowWidth, l.WindowHeight)
	case l.IconSize <= 0:
		return fmt.Errorf("icon size %d must be positive", l.IconSize)
	case l.Spacing < 0:
		return fmt.Errorf("spacing %d must not be negative", l.Spacing)
	case l.Columns <= 0:
		return fmt.Errorf("columns %d must be positive", l.Columns)
	case l.BorderWidth < 0 || l.BorderInset < 0:
		return fmt.Errorf("border %d/%d must not be negative", l.BorderWidth, l.BorderInset)
	case l.FrameInterval <= 0:
		return fmt.Errorf("frame interval %v must be positive", l.FrameInterval)
	}
	return nil
}

// Cell returns the top-left pixel of grid slot i.
func (l Layout) Cell(i int) image.Point {
	step := l.IconSize + l.Spacing
	return image.Pt(
		(i%l.Columns)*step+l.Spacing,
		(i/l.Columns)*step+l.Spacing,
	)
}

// IconRect is the destination rectangle of the icon in slot i.
func (l Layout) IconRect(i int) image.Rectangle {
	p := l.Cell(i)
	return image.Rect(p.X, p.Y, p.X+l.IconSize, p.Y+l.IconSize)
}

// HighlightRect surrounds an icon rectangle by BorderInset pixels.
func (l Layout) HighlightRect(icon image.Rectangle) image.Rectangle {
	return icon.Inset(-l.BorderInset)
}

func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.WindowWidth, l.WindowHeight)
}
