// Package term renders the launcher grid on a text console. Each terminal
// cell shows two vertically stacked virtual pixels using a half-block glyph.
package term

import (
	"errors"
	"image"
	"image/color"
	"time"

	"console-launcher/internal/launcher"
	"console-launcher/internal/logger"

	"github.com/gdamore/tcell/v2"
)

const upperHalfBlock = '▀'

var errClosed = errors.New("terminal screen is closed")

type texture struct {
	img image.Image
}

func (t *texture) Release() { t.img = nil }

// Screen maps the launcher's pixel space onto the terminal.
type Screen struct {
	screen tcell.Screen
	layout launcher.Layout
	queue  *launcher.Queue
	logger logger.Logger

	cols, rows int
	fb         []color.RGBA

	started bool
	closed  bool
	done    chan struct{}
}

func NewScreen(screen tcell.Screen, layout launcher.Layout, queue *launcher.Queue, log logger.Logger) *Screen {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Screen{
		screen: screen,
		layout: layout,
		queue:  queue,
		logger: log,
		done:   make(chan struct{}),
	}
}

// Open creates a Screen on the controlling terminal. The terminal is not
// taken over until Show.
func Open(layout launcher.Layout, queue *launcher.Queue, log logger.Logger) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreen(s, layout, queue, log), nil
}

func (s *Screen) CreateTexture(img image.Image) (launcher.Texture, error) {
	if s.closed {
		return nil, errClosed
	}
	return &texture{img: img}, nil
}

func (s *Screen) Show() error {
	if s.closed {
		return errClosed
	}
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.started = true

	s.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorReset))
	s.screen.HideCursor()
	s.screen.Clear()

	go s.pump()
	return nil
}

func (s *Screen) pump() {
	defer close(s.done)
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			kind, ok := eventForKey(ev)
			if ok && !s.queue.Push(launcher.Event{Kind: kind}) {
				s.logger.Warning("Terminal", "input queue full, key dropped", nil)
			}
		}
	}
}

func eventForKey(ev *tcell.EventKey) (launcher.EventKind, bool) {
	switch ev.Key() {
	case tcell.KeyRight:
		return launcher.EventRight, true
	case tcell.KeyLeft:
		return launcher.EventLeft, true
	case tcell.KeyEnter:
		return launcher.EventConfirm, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		// a console has no close button
		return launcher.EventClose, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return launcher.EventQuitKey, true
		}
	}
	return launcher.EventNone, false
}

// Clear resets the virtual framebuffer, resizing it to the current
// terminal dimensions.
func (s *Screen) Clear(c color.Color) {
	cols, rows := 80, 24
	if s.started {
		cols, rows = s.screen.Size()
	}
	if cols != s.cols || rows != s.rows {
		s.cols, s.rows = cols, rows
		s.fb = make([]color.RGBA, cols*rows*2)
	}

	fill := rgba(c)
	for i := range s.fb {
		s.fb[i] = fill
	}
}

// virtual converts a pixel rectangle to virtual pixel coordinates, growing
// it outward so nothing collapses to zero size. The result is not clipped.
func (s *Screen) virtual(r image.Rectangle) image.Rectangle {
	vw, vh := s.cols, s.rows*2
	w, h := s.layout.WindowWidth, s.layout.WindowHeight

	x0 := r.Min.X * vw / w
	y0 := r.Min.Y * vh / h
	x1 := (r.Max.X*vw + w - 1) / w
	y1 := (r.Max.Y*vh + h - 1) / h
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1)
}

func (s *Screen) bounds() image.Rectangle {
	return image.Rect(0, 0, s.cols, s.rows*2)
}

func (s *Screen) set(x, y int, c color.RGBA) {
	s.fb[y*s.cols+x] = c
}

func (s *Screen) DrawTexture(t launcher.Texture, dst image.Rectangle) {
	tex, ok := t.(*texture)
	if !ok || tex.img == nil || len(s.fb) == 0 {
		return
	}

	full := s.virtual(dst)
	v := full.Intersect(s.bounds())
	if v.Empty() {
		return
	}

	b := tex.img.Bounds()
	for y := v.Min.Y; y < v.Max.Y; y++ {
		sy := b.Min.Y + ((y-full.Min.Y)*2+1)*b.Dy()/(full.Dy()*2)
		for x := v.Min.X; x < v.Max.X; x++ {
			sx := b.Min.X + ((x-full.Min.X)*2+1)*b.Dx()/(full.Dx()*2)
			px := rgba(tex.img.At(sx, sy))
			if px.A == 0 {
				continue
			}
			s.set(x, y, blend(s.fb[y*s.cols+x], px))
		}
	}
}

// DrawRect strokes the outline at least one virtual pixel thick.
func (s *Screen) DrawRect(r image.Rectangle, c color.Color, width int) {
	if len(s.fb) == 0 || width <= 0 {
		return
	}
	v := s.virtual(r)
	thick := width * s.cols / s.layout.WindowWidth
	if thick < 1 {
		thick = 1
	}
	inner := v.Inset(thick)
	clip := v.Intersect(s.bounds())

	fill := rgba(c)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if !image.Pt(x, y).In(inner) {
				s.set(x, y, fill)
			}
		}
	}
}

func (s *Screen) Present() {
	if !s.started || s.closed || len(s.fb) == 0 {
		return
	}
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			top := s.fb[(2*y)*s.cols+x]
			bottom := s.fb[(2*y+1)*s.cols+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
	s.screen.Show()
}

// Close restores the terminal and waits briefly for the input pump.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.started {
		return nil
	}

	s.screen.Fini()
	select {
	case <-s.done:
	case <-time.After(time.Second):
		s.logger.Warning("Terminal", "input pump did not stop", nil)
	}
	s.logger.Info("Terminal", "closed", nil)
	return nil
}

// Serve runs the loop on the calling goroutine.
func (s *Screen) Serve(loop func()) {
	loop()
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// blend composites premultiplied src over dst.
func blend(dst, src color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	inv := uint16(0xff - src.A)
	return color.RGBA{
		R: src.R + uint8(uint16(dst.R)*inv/0xff),
		G: src.G + uint8(uint16(dst.G)*inv/0xff),
		B: src.B + uint8(uint16(dst.B)*inv/0xff),
		A: 0xff,
	}
}
