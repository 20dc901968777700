package app

import (
	"fmt"

	"console-launcher/internal/config"
	"console-launcher/internal/gui"
	"console-launcher/internal/icons"
	"console-launcher/internal/launcher"
	"console-launcher/internal/logger"
	"console-launcher/internal/models"
	"console-launcher/internal/process"
	"console-launcher/internal/shutdown"
	"console-launcher/internal/term"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Console Launcher"
	AppID      = "com.consolelauncher.launcher"
	AppVersion = "1.0.0"
	queueSize  = 64
)

// Backend is a Surface that also knows how to host the frame loop.
type Backend interface {
	launcher.Surface
	Serve(loop func())
}

// BackendFactory builds the rendering backend once the layout is known.
type BackendFactory func(settings *config.Settings, layout launcher.Layout, queue *launcher.Queue, log logger.Logger) (Backend, error)

type Option func(*Application)

// WithBackend replaces the backend chosen by Settings.Backend.
func WithBackend(f BackendFactory) Option {
	return func(a *Application) { a.newBackend = f }
}

// WithLogOutput hands over the writer behind the logger. While the
// terminal backend owns the screen the writer is held; the caller releases
// it once the terminal has been restored.
func WithLogOutput(h *logger.HeldWriter) Option {
	return func(a *Application) { a.logOutput = h }
}

// WithSpawner replaces the detached process spawner.
func WithSpawner(s launcher.Spawner) Option {
	return func(a *Application) { a.spawner = s }
}

type Application struct {
	settings *config.Settings
	logger   logger.Logger
	shutdown *shutdown.Manager

	newBackend BackendFactory
	spawner    launcher.Spawner
	logOutput  *logger.HeldWriter

	queue   *launcher.Queue
	backend Backend
	loop    *launcher.Loop
	runErr  error
}

// NewApplication reads the catalog, opens the backend and loads every
// icon. On error nothing has been shown and everything acquired so far
// has been released.
func NewApplication(settings *config.Settings, log logger.Logger, sm *shutdown.Manager, opts ...Option) (*Application, error) {
	a := &Application{
		settings:   settings,
		logger:     log,
		shutdown:   sm,
		newBackend: defaultBackend,
		spawner:    process.NewDetached(log).WithDir(settings.Behavior.LaunchDir),
		queue:      launcher.NewQueue(queueSize),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger.Info("Application", "starting", map[string]interface{}{
		"version": AppVersion,
		"catalog": settings.Catalog,
		"backend": settings.Backend,
	})

	apps, err := models.LoadCatalog(settings.Catalog)
	if err != nil {
		return nil, err
	}

	layout := settings.Layout.Launcher()
	backend, err := a.newBackend(settings, layout, a.queue, log)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", settings.Backend, err)
	}
	a.backend = backend

	loop, err := launcher.New(launcher.Options{
		Layout:  layout,
		QuitKey: settings.Behavior.QuitKey,
	}, backend, icons.NewDecoder(), a.spawner, a.queue, log)
	if err != nil {
		backend.Close()
		return nil, err
	}
	a.loop = loop
	sm.Register("launcher", shutdown.Func(func() {
		if err := loop.Close(); err != nil {
			a.logger.Error("Application", "launcher teardown failed", err, nil)
		}
	}))

	if err := loop.Initialize(apps); err != nil {
		loop.Close()
		return nil, err
	}

	a.logger.Info("Application", "initialization complete", map[string]interface{}{
		"entries": len(apps),
	})
	return a, nil
}

// Run blocks until the launcher stops, either from input or because the
// shutdown manager's context was cancelled.
func (a *Application) Run() error {
	if a.logOutput != nil && a.settings.Backend == config.BackendTerminal {
		a.logOutput.Hold()
	}
	a.backend.Serve(func() {
		a.runErr = a.loop.Run(a.shutdown.Context())
	})
	return a.runErr
}

func (a *Application) Loop() *launcher.Loop {
	return a.loop
}

func (a *Application) Queue() *launcher.Queue {
	return a.queue
}

func defaultBackend(settings *config.Settings, layout launcher.Layout, queue *launcher.Queue, log logger.Logger) (Backend, error) {
	switch settings.Backend {
	case config.BackendTerminal:
		screen, err := term.Open(layout, queue, log)
		if err != nil {
			return nil, err
		}
		return screen, nil
	case config.BackendWindow:
		fyneapp.SetMetadata(fyne.AppMetadata{
			ID:      AppID,
			Name:    AppName,
			Version: AppVersion,
		})
		fyneApp := fyneapp.NewWithID(AppID)
		return gui.NewWindow(fyneApp, settings.Title, layout, queue, log), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", settings.Backend)
	}
}
