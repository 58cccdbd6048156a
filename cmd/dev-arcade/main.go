package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dev-arcade/audio"
	"github.com/lixenwraith/dev-arcade/config"
	"github.com/lixenwraith/dev-arcade/core"
	"github.com/lixenwraith/dev-arcade/engine"
	"github.com/lixenwraith/dev-arcade/games"
)

const loopCapacity = 256

var (
	gameFlag  = flag.String("game", "", "Game to open first: bugsquash, codebreaker")
	debugFlag = flag.Bool("debug", false, "Write debug logs to the log directory")
	seedFlag  = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag  = flag.Bool("mute", false, "Start with sound muted")
	envFlag   = flag.String("env", "", "Env file to load (default .env when present)")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dev-arcade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*envFlag)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	sound.SetMuted(cfg.Muted)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn("audio unavailable", "component", "audio", "error", err)
	}

	loop := engine.NewLoop(loopCapacity)
	sched := engine.NewLoopScheduler(loop)
	defer sched.StopAll()

	a, err := newApp(screen, cfg, engine.NewMonotonicTimeProvider(), sched, sound, logger)
	if err != nil {
		return err
	}
	defer a.close()
	a.onQuit = loop.Stop

	// PollEvent blocks; events cross to the loop goroutine as closures
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !loop.Post(func() { a.handleEvent(ev) }) {
				return
			}
		}
	})

	sched.Every(cfg.FrameRate, a.draw)
	loop.Post(a.draw)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// applyFlags overrides env configuration with flags given on the command line
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "game":
			cfg.Game, err = games.ParseID(*gameFlag)
		case "debug":
			if *debugFlag {
				cfg.Logging.Level = "debug"
			}
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Muted = *muteFlag
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	return nil
}
