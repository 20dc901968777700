package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"console-launcher/internal/app"
	"console-launcher/internal/config"
	"console-launcher/internal/logger"
	"console-launcher/internal/shutdown"

	"golang.org/x/term"
)

// resetSequence is the ANSI full reset (RIS).
const resetSequence = "\033c"

func main() {
	if err := run(); err != nil {
		log.Fatalf("%s: %v", app.AppName, err)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML settings file")
	catalog := flag.String("apps", "", "path to the application catalog (overrides settings)")
	backend := flag.String("backend", "", "rendering backend: window or terminal (overrides settings)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *catalog != "" {
		settings.Catalog = *catalog
	}
	if *backend != "" {
		settings.Backend = *backend
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validate flags: %w", err)
	}

	level, err := logger.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	logOutput := logger.NewHeldWriter(os.Stdout)
	appLogger := logger.NewWithOutput(logOutput, level, settings.Log.JSON)
	// Deferred before Shutdown so held lines print after the terminal reset.
	defer logOutput.Release()

	sm := shutdown.NewManager(appLogger)
	sm.SetTimeout(settings.Behavior.ShutdownTimeout)
	sm.Listen()
	defer sm.Shutdown()

	// Registered first so it runs after the surface is torn down.
	if settings.Behavior.ResetTerminal {
		sm.Register("terminal-reset", shutdown.Func(resetTerminal))
	}

	application, err := app.NewApplication(settings, appLogger, sm, app.WithLogOutput(logOutput))
	if err != nil {
		return err
	}
	if err := application.Run(); err != nil {
		return err
	}

	appLogger.Info("Main", "launcher exited", nil)
	return nil
}

func resetTerminal() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprint(os.Stdout, resetSequence)
	}
}
