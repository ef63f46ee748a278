package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"wallmaze/pkg/engine/config"
	"wallmaze/pkg/engine/logging"
	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/engine/terminal"
	"wallmaze/pkg/game/devtools"
	"wallmaze/pkg/game/generator"
	"wallmaze/pkg/game/locale"
	"wallmaze/pkg/game/renderer"
	"wallmaze/pkg/game/renderer/ebiten"
	"wallmaze/pkg/game/renderer/tui"
	"wallmaze/pkg/game/state"
	"wallmaze/pkg/maze"
)

var appLogger *logging.Logger

// newBuilder returns a builder that generates a reference-size maze from a
// fresh time-seeded source on every call
func newBuilder(cfg config.Config) state.Builder {
	return func() (*maze.Maze, error) {
		return maze.Generate(
			generator.DefaultWidth,
			generator.DefaultHeight,
			random.NewTimeSeeded(),
			maze.WithStepLimit(cfg.StepLimit),
		)
	}
}

// dumpMaze generates one maze and writes its dump to stdout, logging how
// many strides the walk took
func dumpMaze(cfg config.Config) error {
	counter := random.NewCounter(random.NewTimeSeeded())
	m, err := maze.Generate(generator.DefaultWidth, generator.DefaultHeight, counter, maze.WithStepLimit(cfg.StepLimit))
	if err != nil {
		return err
	}
	appLogger.Infof("Generated %dx%d maze in %d strides", m.Width(), m.Height(), counter.Calls())

	return devtools.DumpMaze(os.Stdout, m, 1)
}

// selectRenderer creates the backend named in the configuration
func selectRenderer(cfg config.Config) (renderer.Renderer, error) {
	switch cfg.Renderer {
	case config.RendererEbiten:
		return ebiten.New(cfg.CellSize), nil
	case config.RendererTUI:
		if !terminal.IsInteractive() {
			return nil, errors.New("the tui renderer needs an interactive terminal; use -dump or -renderer ebiten")
		}
		return tui.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}

func main() {
	var err error
	appLogger, err = logging.New("APP", logging.ColorGreen, os.Stderr)
	if err != nil {
		log.Fatalf("Creating app logger: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger.Errorf("Loading configuration: %v", err)
		os.Exit(1)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		appLogger.Errorf("Invalid flags: %v", err)
		os.Exit(2)
	}

	if err := locale.SetLanguage(cfg.Language); err != nil {
		appLogger.Warnf("Falling back to %s (available: %s): %v",
			locale.DefaultLanguage, strings.Join(locale.Languages(), ", "), err)
		if err := locale.SetLanguage(locale.DefaultLanguage); err != nil {
			appLogger.Errorf("Loading UI strings: %v", err)
			os.Exit(1)
		}
	}

	if cfg.Dump {
		if err := dumpMaze(cfg); err != nil {
			appLogger.Errorf("Dumping maze: %v", err)
			os.Exit(1)
		}
		return
	}

	session, err := state.NewSession(newBuilder(cfg))
	if err != nil {
		appLogger.Errorf("Generating maze: %v", err)
		os.Exit(1)
	}

	r, err := selectRenderer(cfg)
	if err != nil {
		appLogger.Errorf("Selecting renderer: %v", err)
		os.Exit(2)
	}
	renderer.SetRenderer(r)
	renderer.Init()

	appLogger.Infof("Showing %dx%d maze with the %s renderer", session.Maze.Width(), session.Maze.Height(), r.Name())
	if err := renderer.Run(session); err != nil {
		appLogger.Errorf("Renderer stopped: %v", err)
		os.Exit(1)
	}
	appLogger.Infof("Bye after %d mazes", session.Generation)
}
