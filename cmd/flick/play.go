package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flick-arena/internal/audio"
	"github.com/vovakirdan/flick-arena/internal/config"
	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/platform/tui"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

var (
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagMute       bool
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the specified level pack (default: classic).

Controls:
  Mouse drag  - Pull back and release to flick the ball
  P/Esc       - Pause
  R/Space     - Retry, next level or start over
  M           - Mute
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Fewer bullets, shorter flick cooldown
  normal - Levels as authored
  hard   - More bullets, longer flick cooldown
  fixed  - Levels exactly as authored, density 0 stays 0

Examples:
  flick play
  flick play training --difficulty easy
  flick play classic --level 3
  flick play --levels ./my-packs mypack
  flick play --config ./settings.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Load packs from this file or directory instead of the built-in ones")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level to start on (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	packID := ""
	if len(args) > 0 {
		packID = args[0]
	}

	// the TUI owns the terminal, so play mode always logs to a file
	logPath := flagLogFile
	if logPath == "" {
		logPath = defaultLogFile()
	}
	logger, closeLog, err := newLoggerTo(logPath, io.Discard)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	settings, err := config.LoadSettings(flagConfig)
	if err != nil {
		exitErr("%v", err)
	}

	presetName := string(settings.Difficulty.Preset)
	if flagDifficulty != "" {
		presetName = flagDifficulty
	}
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		exitErr("%v", err)
	}

	pack, err := loadPack(packID, flagLevels, logger)
	if err != nil {
		exitErr("%v", err)
	}
	lvls := config.ApplyPreset(pack.Levels, preset)

	if flagStartLevel < 1 || flagStartLevel > len(lvls) {
		exitErr("--level %d out of range (pack %q has %d levels)", flagStartLevel, pack.ID, len(lvls))
	}

	if flagMute {
		settings.Audio.Enabled = false
	}
	player := audio.NewPlayer(settings.Audio)
	if settings.Audio.Enabled {
		if err := player.Start(); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
	}
	defer player.Close()

	rng, seed := newRNG(flagSeed)
	engine, err := sim.NewEngine(lvls, settings.Tuning, rng, sim.MultiSink{player, eventLog{logger}})
	if err != nil {
		exitErr("%v", err)
	}
	if flagStartLevel > 1 {
		engine.LoadLevel(flagStartLevel - 1)
	}

	logger.Info("starting", "pack", pack.ID, "levels", len(lvls), "difficulty", preset, "seed", seed)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	runErr := tui.Run(engine, tui.Options{
		Config: cfg,
		Input:  settings.Input,
		Audio:  player,
		Logger: logger,
	})
	if runErr != nil {
		player.Close()
		closeLog()
		exitErr("running arena: %v", runErr)
	}
}
