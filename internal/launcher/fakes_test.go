package launcher

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"console-launcher/internal/process"
)

type fakeTexture struct {
	id       int
	released bool
}

func (t *fakeTexture) Release() { t.released = true }

type drawOp struct {
	kind  string
	rect  image.Rectangle
	color color.Color
	width int
	tex   *fakeTexture
}

type fakeSurface struct {
	textures   []*fakeTexture
	ops        []drawOp
	frames     [][]drawOp
	shown      bool
	closed     int
	textureErr error
}

func (s *fakeSurface) CreateTexture(img image.Image) (Texture, error) {
	if s.textureErr != nil {
		return nil, s.textureErr
	}
	t := &fakeTexture{id: len(s.textures)}
	s.textures = append(s.textures, t)
	return t, nil
}

func (s *fakeSurface) Show() error { s.shown = true; return nil }

func (s *fakeSurface) Clear(c color.Color) {
	s.ops = append(s.ops, drawOp{kind: "clear", color: c})
}

func (s *fakeSurface) DrawTexture(t Texture, dst image.Rectangle) {
	s.ops = append(s.ops, drawOp{kind: "texture", rect: dst, tex: t.(*fakeTexture)})
}

func (s *fakeSurface) DrawRect(r image.Rectangle, c color.Color, width int) {
	s.ops = append(s.ops, drawOp{kind: "rect", rect: r, color: c, width: width})
}

func (s *fakeSurface) Present() {
	s.frames = append(s.frames, s.ops)
	s.ops = nil
}

func (s *fakeSurface) Close() error { s.closed++; return nil }

// fakeDecoder fails for any path listed in bad.
type fakeDecoder struct {
	bad   map[string]bool
	calls []string
}

func (d *fakeDecoder) Decode(path string, size int) (image.Image, error) {
	d.calls = append(d.calls, path)
	if d.bad[path] {
		return nil, fmt.Errorf("cannot decode %s", path)
	}
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

type fakeSpawner struct {
	calls [][]string
	err   error
}

func (s *fakeSpawner) Spawn(argv []string) (*process.Handle, error) {
	s.calls = append(s.calls, argv)
	if s.err != nil {
		return nil, s.err
	}
	return &process.Handle{ID: "launch_test", Argv: argv}, nil
}

var errSpawn = errors.New("exec: not found")
