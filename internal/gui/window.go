package gui

import (
	"errors"
	"image"
	"image/color"

	"console-launcher/internal/launcher"
	"console-launcher/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var errClosed = errors.New("window is closed")

type opKind int

const (
	opTexture opKind = iota
	opRect
)

// drawOp is recorded on the loop goroutine and replayed on the fyne
// goroutine, so canvas objects are only touched from fyne.Do.
type drawOp struct {
	kind  opKind
	tex   *texture
	rect  image.Rectangle
	color color.Color
	width int
}

type texture struct {
	img *canvas.Image
}

func (t *texture) Release() {
	fyne.Do(func() {
		t.img.Image = nil
	})
}

// Window is a fixed-size fyne window acting as the launcher's surface.
type Window struct {
	app    fyne.App
	window fyne.Window
	queue  *launcher.Queue
	logger logger.Logger
	layout launcher.Layout

	root       *fyne.Container
	background *canvas.Rectangle
	rects      []*canvas.Rectangle

	clear          color.Color
	pending        []drawOp
	presented      []drawOp
	presentedClear color.Color
	shown          bool
	closed         bool
}

func NewWindow(app fyne.App, title string, layout launcher.Layout, queue *launcher.Queue, log logger.Logger) *Window {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	bounds := layout.Bounds()
	size := fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))

	background := canvas.NewRectangle(launcher.Background)
	background.SetMinSize(size)
	background.Resize(size)

	root := container.NewWithoutLayout(background)

	window := app.NewWindow(title)
	window.SetPadded(false)
	window.SetContent(root)
	window.Resize(size)
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	w := &Window{
		app:        app,
		window:     window,
		queue:      queue,
		logger:     log,
		layout:     layout,
		root:       root,
		background: background,
		clear:      launcher.Background,
	}

	window.Canvas().SetOnTypedKey(w.handleKey)
	window.SetCloseIntercept(w.requestClose)

	return w
}

// requestClose turns the window manager's close button into a loop event;
// the loop then tears the window down itself.
func (w *Window) requestClose() {
	w.logger.Info("Window", "close requested", nil)
	w.queue.Push(launcher.Event{Kind: launcher.EventClose})
}

func (w *Window) handleKey(ev *fyne.KeyEvent) {
	kind, ok := eventForKey(ev.Name)
	if !ok {
		return
	}
	if !w.queue.Push(launcher.Event{Kind: kind}) {
		w.logger.Warning("Window", "input queue full, key dropped", map[string]interface{}{
			"key": string(ev.Name),
		})
	}
}

func eventForKey(name fyne.KeyName) (launcher.EventKind, bool) {
	switch name {
	case fyne.KeyRight:
		return launcher.EventRight, true
	case fyne.KeyLeft:
		return launcher.EventLeft, true
	case fyne.KeyReturn, fyne.KeyEnter:
		return launcher.EventConfirm, true
	case fyne.KeyQ:
		return launcher.EventQuitKey, true
	default:
		return launcher.EventNone, false
	}
}

func (w *Window) CreateTexture(img image.Image) (launcher.Texture, error) {
	if w.closed {
		return nil, errClosed
	}
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillStretch
	c.ScaleMode = canvas.ImageScaleSmooth
	return &texture{img: c}, nil
}

func (w *Window) Show() error {
	if w.closed {
		return errClosed
	}
	w.shown = true
	fyne.Do(func() {
		w.window.Show()
	})
	return nil
}

func (w *Window) Clear(c color.Color) {
	w.clear = c
	w.pending = w.pending[:0]
}

func (w *Window) DrawTexture(t launcher.Texture, dst image.Rectangle) {
	tex, ok := t.(*texture)
	if !ok {
		return
	}
	w.pending = append(w.pending, drawOp{kind: opTexture, tex: tex, rect: dst})
}

func (w *Window) DrawRect(r image.Rectangle, c color.Color, width int) {
	w.pending = append(w.pending, drawOp{kind: opRect, rect: r, color: c, width: width})
}

// Present hands the frame to fyne. Frames identical to the last one are
// skipped to avoid needless canvas refreshes.
func (w *Window) Present() {
	if w.closed {
		return
	}
	if w.presented != nil && w.presentedClear == w.clear && sameFrame(w.presented, w.pending) {
		return
	}

	ops := append([]drawOp(nil), w.pending...)
	bg := w.clear
	w.presented = ops
	w.presentedClear = bg

	fyne.Do(func() {
		w.apply(bg, ops)
	})
}

func (w *Window) apply(bg color.Color, ops []drawOp) {
	w.background.FillColor = bg

	objects := make([]fyne.CanvasObject, 0, len(ops)+1)
	objects = append(objects, w.background)

	rectIdx := 0
	for _, op := range ops {
		pos := fyne.NewPos(float32(op.rect.Min.X), float32(op.rect.Min.Y))
		size := fyne.NewSize(float32(op.rect.Dx()), float32(op.rect.Dy()))

		switch op.kind {
		case opTexture:
			op.tex.img.Move(pos)
			op.tex.img.Resize(size)
			objects = append(objects, op.tex.img)
		case opRect:
			if rectIdx == len(w.rects) {
				w.rects = append(w.rects, canvas.NewRectangle(color.Transparent))
			}
			r := w.rects[rectIdx]
			rectIdx++
			r.FillColor = color.Transparent
			r.StrokeColor = op.color
			r.StrokeWidth = float32(op.width)
			r.Move(pos)
			r.Resize(size)
			objects = append(objects, r)
		}
	}

	w.root.Objects = objects
	w.root.Refresh()
}

// Close hides the window and stops the fyne event loop. A window that was
// never shown is closed in place, before the event loop ever starts.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if !w.shown {
		w.window.Close()
		return nil
	}
	fyne.Do(func() {
		w.window.Close()
		w.app.Quit()
	})
	w.logger.Info("Window", "closed", nil)
	return nil
}

// Serve runs loop on its own goroutine and blocks in the fyne event loop
// on the calling (main) goroutine until the loop has finished.
func (w *Window) Serve(loop func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop()
	}()

	w.app.Run()
	// fyne can stop on its own (e.g. OS quit); make sure the loop follows
	w.queue.Push(launcher.Event{Kind: launcher.EventClose})
	<-done
}

func sameFrame(a, b []drawOp) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
