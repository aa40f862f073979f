package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	engineinput "gridmaze/pkg/engine/input"
	"gridmaze/pkg/engine/logger"
	"gridmaze/pkg/game/config"
	"gridmaze/pkg/game/devtools"
	"gridmaze/pkg/game/gameplay"
	"gridmaze/pkg/game/i18n"
	"gridmaze/pkg/game/renderer"
	ebitenrenderer "gridmaze/pkg/game/renderer/ebiten"
	"gridmaze/pkg/game/renderer/tui"
	"gridmaze/pkg/game/state"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	seed := flag.Int64("seed", 0, "random seed (0 keeps the configured seed)")
	rows := flag.Int("rows", 0, "grid rows (0 keeps the configured value)")
	cols := flag.Int("cols", 0, "grid columns (0 keeps the configured value)")
	rendererName := flag.String("renderer", "", "renderer: tui or ebiten")
	dump := flag.Bool("dump", false, "generate and solve one maze, print the map dump and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Command line flags override the config file and environment
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *cols > 0 {
		cfg.Cols = *cols
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}

	warnings, err := cfg.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	config.SetCurrent(cfg)

	// Logs would corrupt the terminal display, so the TUI logs to a file only
	if cfg.Renderer == "tui" && !*dump {
		cfg.Logging.ConsoleEnabled = false
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
	}
	for _, w := range warnings {
		logger.Warning(w)
	}

	i18n.Load(cfg.LocalesDir, cfg.Language)
	applyKeyBindings(cfg.Keys)

	if *dump {
		err = runDump(cfg)
	} else {
		err = runInteractive(cfg)
	}
	if err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers .env, the YAML file and MAZE_* variables
func loadConfig(path string) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// applyKeyBindings rebinds actions from the keys: section
func applyKeyBindings(keys map[string]string) {
	for name, code := range keys {
		action, ok := engineinput.ActionByName(name)
		if !ok {
			logger.Warningf("keys: unknown action %q", name)
			continue
		}
		engineinput.SetSingleBinding(action, code)
		logger.Debugf("keys: %s bound to %q", engineinput.ActionName(action), code)
	}
}

// runDump generates and solves one maze and prints the dump to stdout
func runDump(cfg *config.Config) error {
	cfg.GenerateOnStart = false
	g, err := gameplay.BuildGame(cfg)
	if err != nil {
		return err
	}
	if err := gameplay.GenerateNow(g); err != nil {
		return err
	}
	if _, err := gameplay.RequestSolve(g); err != nil {
		return err
	}
	return devtools.WriteDump(os.Stdout, g)
}

// newRenderer creates the configured renderer backend
func newRenderer(cfg *config.Config) renderer.Renderer {
	switch cfg.Renderer {
	case "ebiten":
		return ebitenrenderer.New(cfg.TileSize)
	default:
		return tui.New(os.Stdout, os.Stdin)
	}
}

// runInteractive runs the game loop beside the renderer until either side ends.
// The renderer keeps the main goroutine, which the windowed backend requires.
func runInteractive(cfg *config.Config) error {
	g, err := gameplay.BuildGame(cfg)
	if err != nil {
		return err
	}

	r := newRenderer(cfg)
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", cfg.Renderer, err)
	}
	defer r.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loopDone := make(chan error, 1)
	go func(g *state.Game) {
		loopDone <- gameplay.Run(ctx, g, r, time.Duration(cfg.TickIntervalMS)*time.Millisecond)
		cancel()
	}(g)

	runErr := r.Run(ctx)
	cancel()
	loopErr := <-loopDone

	if errors.Is(loopErr, context.Canceled) {
		loopErr = nil
	}
	logger.Infof("maze %s: exiting after %d moves", g.ID, g.Session.Moves())
	return errors.Join(runErr, loopErr)
}
