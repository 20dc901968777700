package term

import (
	"image"
	"image/color"
	"testing"
	"time"

	"console-launcher/internal/launcher"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen, *launcher.Queue) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	queue := launcher.NewQueue(8)
	s := NewScreen(sim, launcher.DefaultLayout(), queue, nil)

	if err := s.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(func() { s.Close() })
	return s, sim, queue
}

func solidImage(c color.RGBA, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func cellColors(t *testing.T, sim tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	t.Helper()
	r, _, style, _ := sim.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestScreen_RendersIconAndHighlight(t *testing.T) {
	s, sim, _ := newSimScreen(t)
	layout := launcher.DefaultLayout()

	tex, err := s.CreateTexture(solidImage(color.RGBA{R: 255, A: 255}, 128))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	icon := layout.IconRect(0)
	s.Clear(launcher.Background)
	s.DrawTexture(tex, icon)
	s.DrawRect(layout.HighlightRect(icon), launcher.HighlightColor, layout.BorderWidth)
	s.Present()

	red := tcell.NewRGBColor(255, 0, 0)
	yellow := tcell.NewRGBColor(255, 255, 0)
	black := tcell.NewRGBColor(0, 0, 0)

	r, fg, bg := cellColors(t, sim, 5, 3)
	if r != upperHalfBlock || fg != red || bg != red {
		t.Errorf("icon cell = %q fg=%v bg=%v, want red half block", r, fg, bg)
	}

	if _, fg, bg := cellColors(t, sim, 1, 3); fg != yellow || bg != yellow {
		t.Errorf("border cell fg=%v bg=%v, want yellow", fg, bg)
	}

	if _, fg, bg := cellColors(t, sim, 40, 20); fg != black || bg != black {
		t.Errorf("background cell fg=%v bg=%v, want black", fg, bg)
	}
}

func TestScreen_TransparentPixelsKeepBackground(t *testing.T) {
	s, sim, _ := newSimScreen(t)

	tex, _ := s.CreateTexture(solidImage(color.RGBA{}, 16))
	s.Clear(launcher.Background)
	s.DrawTexture(tex, launcher.DefaultLayout().IconRect(0))
	s.Present()

	black := tcell.NewRGBColor(0, 0, 0)
	if _, fg, bg := cellColors(t, sim, 5, 3); fg != black || bg != black {
		t.Errorf("transparent icon cell fg=%v bg=%v, want black", fg, bg)
	}
}

func TestScreen_KeysReachQueue(t *testing.T) {
	_, sim, queue := newSimScreen(t)

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	want := []launcher.EventKind{
		launcher.EventRight,
		launcher.EventQuitKey,
		launcher.EventConfirm,
		launcher.EventClose,
	}

	var got []launcher.EventKind
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < len(want) && time.Now().Before(deadline) {
		if ev, ok := queue.Pop(); ok {
			got = append(got, ev.Kind)
			continue
		}
		time.Sleep(5 * time.Millisecond)
	}

	if len(got) != len(want) {
		t.Fatalf("queued %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("queued %v, want %v", got, want)
		}
	}
}

func TestScreen_CloseIsIdempotent(t *testing.T) {
	s, _, _ := newSimScreen(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := s.CreateTexture(solidImage(color.RGBA{}, 1)); err == nil {
		t.Error("CreateTexture after Close should fail")
	}
}

func TestScreen_CloseWithoutShow(t *testing.T) {
	s := NewScreen(tcell.NewSimulationScreen("UTF-8"), launcher.DefaultLayout(), launcher.NewQueue(1), nil)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
