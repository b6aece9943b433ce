package main

import (
	"github.com/mbeaudin/legendscale/internal/config"
	"github.com/mbeaudin/legendscale/internal/logger"
	"github.com/mbeaudin/legendscale/internal/store"
	"github.com/mbeaudin/legendscale/pkg/spectrum"
)

// newCommandLogger builds the per-command logger. It writes to stderr so
// stdout stays reserved for command results.
func newCommandLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

// openSettingsStore loads the per-field settings file, creating an empty
// store when none exists yet.
func openSettingsStore() (*store.Store, string, error) {
	path, err := defaultSettingsPath()
	if err != nil {
		return nil, "", err
	}

	st, err := store.NewStore(path)
	if err != nil {
		return nil, "", err
	}

	return st, path, nil
}

// loadPaletteRegistry seeds a registry with the built-in spectrums plus any
// palettes from the configuration file. An explicit --config path must
// parse; the default path is optional and skipped when absent.
func loadPaletteRegistry(flags *rootFlags) (*spectrum.Registry, *config.Config, error) {
	registry := spectrum.NewRegistry()

	var cfg *config.Config
	if flags.configPath != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = parsed
	} else {
		fallback, err := defaultConfigPath()
		if err != nil {
			return nil, nil, err
		}
		parsed, err := config.ParseConfigIfPresent(fallback)
		if err != nil {
			return nil, nil, err
		}
		cfg = parsed
	}
	if cfg == nil {
		return registry, nil, nil
	}

	for _, pal := range cfg.SpectrumPalettes() {
		if err := registry.Register(pal); err != nil {
			return nil, nil, err
		}
	}

	return registry, cfg, nil
}
