package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/configcheck/internal/app"
	"github.com/leengari/configcheck/internal/config"
	"github.com/leengari/configcheck/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configcheck: %v\n", err)
		return 1
	}

	// Load settings
	settings, settingsPath, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configcheck: %v\n", err)
		return 1
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configcheck: invalid logLevel %q: %v\n", settings.LogLevel, err)
		return 1
	}

	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  level,
		SeqURL: settings.SeqURL,
	})
	defer closeFn()

	slog.SetDefault(logger)
	slog.Debug("settings resolved",
		"settings_file", settingsPath,
		"config_path", settings.ConfigPath,
	)

	// Run check
	if err := app.Run(settings, os.Stdout, logger); err != nil {
		slog.Error("config check failed", "error", err)
		return 1
	}

	return 0
}
