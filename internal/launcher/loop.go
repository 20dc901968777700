package launcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"console-launcher/internal/logger"
	"console-launcher/internal/models"
	"console-launcher/internal/process"
)

// Spawner starts a launched application without waiting for it.
type Spawner interface {
	Spawn(argv []string) (*process.Handle, error)
}

type Options struct {
	Layout Layout
	// QuitKey makes 'q' stop the loop in addition to closing the window.
	QuitKey bool
}

// IconError names the icon that stopped initialization.
type IconError struct {
	Name string
	Path string
	Err  error
}

func (e *IconError) Error() string {
	return fmt.Sprintf("icon %s for %q: %v", e.Path, e.Name, e.Err)
}

func (e *IconError) Unwrap() error { return e.Err }

var errNotInitialized = errors.New("launcher has no entries; call Initialize first")

// Loop owns the surface, the placed entries and the selection cursor.
type Loop struct {
	opts    Options
	surface Surface
	decoder IconDecoder
	spawner Spawner
	queue   *Queue
	logger  logger.Logger

	entries []*Entry
	state   State
	closed  bool
}

func New(opts Options, surface Surface, decoder IconDecoder, spawner Spawner, queue *Queue, log logger.Logger) (*Loop, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if queue == nil {
		queue = NewQueue(0)
	}
	return &Loop{
		opts:    opts,
		surface: surface,
		decoder: decoder,
		spawner: spawner,
		queue:   queue,
		logger:  log,
	}, nil
}

// Initialize decodes every icon and places it on the grid. Any failure
// releases what was already loaded and leaves the surface hidden.
func (l *Loop) Initialize(apps []models.AppEntry) error {
	if len(apps) == 0 {
		return models.ErrEmptyCatalog
	}

	layout := l.opts.Layout
	entries := make([]*Entry, 0, len(apps))
	for i, app := range apps {
		img, err := l.decoder.Decode(app.IconPath, layout.IconSize)
		if err == nil && img == nil {
			err = errors.New("decoder returned no image")
		}
		if err != nil {
			releaseAll(entries)
			return &IconError{Name: app.Name, Path: app.IconPath, Err: err}
		}

		tex, err := l.surface.CreateTexture(img)
		if err != nil {
			releaseAll(entries)
			return &IconError{Name: app.Name, Path: app.IconPath, Err: fmt.Errorf("create texture: %w", err)}
		}

		entries = append(entries, &Entry{
			App:      app,
			Position: layout.Cell(i),
			Rect:     layout.IconRect(i),
			texture:  tex,
		})
	}

	l.entries = entries
	l.state = NewState(len(entries))

	l.logger.Info("Launcher", "entries loaded", map[string]interface{}{
		"count":   len(entries),
		"columns": layout.Columns,
	})
	return nil
}

// PollInput drains every pending event. Events queued behind a stop are
// discarded.
func (l *Loop) PollInput() {
	for l.state.Running() {
		ev, ok := l.queue.Pop()
		if !ok {
			return
		}
		l.handle(ev)
	}
}

func (l *Loop) handle(ev Event) {
	switch ev.Kind {
	case EventClose:
		l.state.Stop()
	case EventRight:
		l.state.Next()
	case EventLeft:
		l.state.Prev()
	case EventConfirm:
		// fire and forget; the handle is dropped
		_, _ = l.Launch()
	case EventQuitKey:
		if l.opts.QuitKey {
			l.state.Stop()
		}
	}
}

// Launch starts the selected entry's command as a detached child.
func (l *Loop) Launch() (*process.Handle, error) {
	if len(l.entries) == 0 {
		return nil, errNotInitialized
	}

	entry := l.entries[l.state.Selected()]
	argv, err := process.SplitCommand(entry.App.Command)
	if err != nil {
		l.logger.Error("Launcher", "invalid command", err, map[string]interface{}{"name": entry.App.Name})
		return nil, err
	}

	l.logger.Info("Launcher", fmt.Sprintf("Launching %s...", entry.App.Name), map[string]interface{}{
		"argv": argv,
	})

	h, err := l.spawner.Spawn(argv)
	if err != nil {
		l.logger.Error("Launcher", fmt.Sprintf("Failed to launch %s", entry.App.Name), err, map[string]interface{}{"name": entry.App.Name})
		return nil, err
	}
	if h != nil {
		l.logger.Debug("Launcher", "child started", map[string]interface{}{
			"launch_id": h.ID,
			"pid":       h.PID,
		})
	}
	return h, nil
}

// Render draws one frame. The selected entry gets the highlight border.
func (l *Loop) Render() {
	l.surface.Clear(Background)
	selected := l.state.Selected()
	for i, e := range l.entries {
		e.Draw(l.surface, l.opts.Layout, i == selected)
	}
	l.surface.Present()
}

// Run shows the surface and drives poll, render, sleep until the loop is
// stopped by input or ctx. The surface is closed on return.
func (l *Loop) Run(ctx context.Context) error {
	if len(l.entries) == 0 {
		return errNotInitialized
	}
	if err := l.surface.Show(); err != nil {
		_ = l.Close()
		return fmt.Errorf("show surface: %w", err)
	}

	l.logger.Info("Launcher", "loop started", map[string]interface{}{
		"frame_interval": l.opts.Layout.FrameInterval.String(),
	})

	frame := time.NewTimer(l.opts.Layout.FrameInterval)
	defer frame.Stop()

	for l.state.Running() {
		l.PollInput()
		l.Render()

		frame.Reset(l.opts.Layout.FrameInterval)
		select {
		case <-ctx.Done():
			l.state.Stop()
		case <-frame.C:
		}
	}

	l.logger.Info("Launcher", "loop stopped", nil)
	return l.Close()
}

// Close releases textures and tears down the surface. Safe to call twice.
func (l *Loop) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.state.Stop()
	releaseAll(l.entries)
	return l.surface.Close()
}

func (l *Loop) Selected() int     { return l.state.Selected() }
func (l *Loop) Running() bool     { return l.state.Running() }
func (l *Loop) Entries() []*Entry { return l.entries }

func releaseAll(entries []*Entry) {
	for _, e := range entries {
		e.release()
	}
}
