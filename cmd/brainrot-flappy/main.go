package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/brandonlouis96/brainrot-flappy/internal/audio"
	"github.com/brandonlouis96/brainrot-flappy/internal/config"
	"github.com/brandonlouis96/brainrot-flappy/internal/game"
	"github.com/brandonlouis96/brainrot-flappy/internal/term"
)

const (
	logDir      = "logs"
	logFileName = "brainrot-flappy.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag   = flag.String("config", "brainrot-flappy.yaml", "Path to the YAML settings file")
	frontendFlag = flag.String("frontend", "", "Frontend override: gl or term")
	seedFlag     = flag.Uint64("seed", 0, "Random seed override (0 = use config, then clock)")
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/")
)

// setupLogging points the standard logger at logs/brainrot-flappy.log in
// debug mode and discards everything otherwise. A log over maxLogSize is
// rotated to a timestamped name first.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("brainrot-flappy-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// resolveSeed prefers the flag, then the config file, then the clock.
func resolveSeed(flagSeed, cfgSeed uint64) uint64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfgSeed != 0:
		return cfgSeed
	}
	return uint64(time.Now().UnixNano())
}

func main() {
	// Frontends restore the terminal on unwind; report the crash after.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nBRAINROT FLAPPY CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configFlag)
	loaded := err == nil
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (using defaults)\n", err)
	}
	fileFrontend := cfg.Frontend
	if *frontendFlag != "" {
		cfg.Frontend = *frontendFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %v\n", err)
		os.Exit(2)
	}
	seed := resolveSeed(*seedFlag, cfg.Seed)
	log.Printf("frontend=%s theme=%s seed=%d", cfg.Frontend, cfg.Theme, seed)

	var snd *audio.System
	if cfg.Audio.Enabled {
		snd, err = audio.New(cfg.Audio.MusicVolume, cfg.Audio.SFXVolume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
			log.Printf("audio init failed: %v", err)
			snd = nil
		}
	}
	defer snd.Close()

	var theme string
	switch cfg.Frontend {
	case config.FrontendTerm:
		theme, err = term.RunTerminal(cfg, seed, snd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
	default:
		theme = game.RunDesktop(cfg, seed, snd)
	}

	// A broken file is left for the user to fix.
	if loaded && theme != cfg.Theme {
		cfg.Theme = theme
		cfg.Frontend = fileFrontend
		if err := config.Save(*configFlag, cfg); err != nil {
			log.Printf("save settings: %v", err)
		}
	}
}
