// Package config holds the host settings: which renderer to use and how to
// draw. Defaults come from the environment (optionally a .env file) and can
// be overridden with command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Environment variables read by Load
const (
	EnvRenderer  = "MAZE_RENDERER"
	EnvCellSize  = "MAZE_CELL_SIZE"
	EnvLanguage  = "MAZE_LANG"
	EnvStepLimit = "MAZE_STEP_LIMIT"
)

const defaultCellSize = 7

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the host's configuration values
type Config struct {
	Renderer  string // Rendering backend: "tui" or "ebiten"
	CellSize  int    // Pixel size of one cell in the window renderer
	Language  string // UI language, e.g. "en" or "ja"
	StepLimit int    // Per-seed stride cap; 0 leaves generation unbounded
	Dump      bool   // Print a text dump of one maze and exit
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Renderer: RendererTUI,
		CellSize: defaultCellSize,
		Language: "en",
	}
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if one exists.
func Load() (Config, error) {
	// A missing .env file is normal; only a malformed one is reported.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a configuration from lookup, falling back to Default for
// unset variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	cfg.Renderer = getEnvWithDefault(lookup, EnvRenderer, cfg.Renderer)
	cfg.Language = getEnvWithDefault(lookup, EnvLanguage, languageFromLocale(lookup, cfg.Language))

	var err error
	if cfg.CellSize, err = getEnvAsInt(lookup, EnvCellSize, cfg.CellSize); err != nil {
		return Config{}, err
	}
	if cfg.StepLimit, err = getEnvAsInt(lookup, EnvStepLimit, cfg.StepLimit); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Bind registers flags that override the loaded values
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "rendering backend: tui or ebiten")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels for the ebiten renderer")
	fs.StringVar(&c.Language, "lang", c.Language, "UI language (en, ja)")
	fs.IntVar(&c.StepLimit, "step-limit", c.StepLimit, "abort generation after this many strides on one seed point (0 = no limit)")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print a text dump of a new maze and exit")
}

// Validate checks the configuration values
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalidConfig, c.Renderer)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.StepLimit < 0 {
		return fmt.Errorf("%w: step limit must not be negative, got %d", ErrInvalidConfig, c.StepLimit)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set
func getEnvWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set
func getEnvAsInt(lookup func(string) (string, bool), key string, defaultValue int) (int, error) {
	valueStr, exists := lookup(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// languageFromLocale picks the UI language from the usual POSIX variables
func languageFromLocale(lookup func(string) (string, bool), fallback string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value, exists := lookup(key); exists && value != "" {
			return value
		}
	}
	return fallback
}
