package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flick-arena/internal/config"
	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/platform/tui"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

var (
	flagSimLevels     string
	flagSimConfig     string
	flagSimDifficulty string
	flagSimSeconds    float64
	flagSimRetries    int
)

var simCmd = &cobra.Command{
	Use:   "sim [pack]",
	Short: "Run a level pack headless with the autopilot",
	Long: `Play a pack without a terminal UI. The autopilot dodges incoming bullets
and the run reports how far it got. With a fixed --seed the run is
reproducible, which makes it useful for tuning level packs.

Examples:
  flick sim
  flick sim classic --seed 42
  flick sim --levels ./my-packs mypack --difficulty hard --retries 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLevels, "levels", "", "Load packs from this file or directory instead of the built-in ones")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom settings YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 600, "Game seconds to simulate before giving up")
	simCmd.Flags().IntVar(&flagSimRetries, "retries", 3, "Retries per level before giving up")
}

// levelRun is the autopilot's record on one level.
type levelRun struct {
	name    string
	deaths  int
	flicks  int
	cleared bool
}

func runSim(cmd *cobra.Command, args []string) {
	packID := ""
	if len(args) > 0 {
		packID = args[0]
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	settings, err := config.LoadSettings(flagSimConfig)
	if err != nil {
		exitErr("%v", err)
	}
	presetName := string(settings.Difficulty.Preset)
	if flagSimDifficulty != "" {
		presetName = flagSimDifficulty
	}
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		exitErr("%v", err)
	}

	pack, err := loadPack(packID, flagSimLevels, logger)
	if err != nil {
		exitErr("%v", err)
	}
	lvls := config.ApplyPreset(pack.Levels, preset)

	rng, seed := newRNG(flagSeed)
	events := sim.EventCounter{}
	engine, err := sim.NewEngine(lvls, settings.Tuning, rng, sim.MultiSink{events, eventLog{logger}})
	if err != nil {
		exitErr("%v", err)
	}

	runs := make([]levelRun, len(lvls))
	for i, lv := range lvls {
		runs[i].name = lv.Name
	}

	dt := core.RuntimeConfig{TickRate: flagFPS}.FrameDelta()
	maxFrames := int(flagSimSeconds / dt)
	pilot := sim.DefaultAutopilot()

	frames := 0
loop:
	for ; frames < maxFrames; frames++ {
		run := &runs[engine.LevelNumber()-1]

		switch engine.State() {
		case sim.StateRunning:
			if imp, ok := pilot.Decide(engine.Snapshot()); ok && engine.ApplyImpulse(imp) {
				run.flicks++
			}
			switch engine.Step(dt).State {
			case sim.StateGameOver:
				run.deaths++
				logger.Info("level failed", "level", run.name, "deaths", run.deaths)
			case sim.StateLevelComplete, sim.StateGameComplete:
				run.cleared = true
				logger.Info("level cleared", "level", run.name, "deaths", run.deaths)
			}
		case sim.StateGameOver:
			if run.deaths > flagSimRetries {
				break loop
			}
			engine.Advance()
		case sim.StateLevelComplete:
			engine.Advance()
		default:
			break loop
		}
	}

	fmt.Printf("Pack %s (%s), difficulty %s, seed %d\n", pack.ID, pack.Name, preset, seed)
	fmt.Printf("Simulated %.1fs of play in %d frames\n\n", float64(frames)*dt, frames)

	rows := make([][]string, len(runs))
	for i, r := range runs {
		result := "not reached"
		switch {
		case r.cleared:
			result = "cleared"
		case r.deaths > 0:
			result = "failed"
		}
		rows[i] = []string{strconv.Itoa(i + 1), r.name, result, strconv.Itoa(r.deaths), strconv.Itoa(r.flicks)}
	}
	fmt.Println(tui.RenderTable([]tui.Column{
		{Title: "#"}, {Title: "Level"}, {Title: "Result"}, {Title: "Deaths"}, {Title: "Flicks"},
	}, rows))

	fmt.Println()
	kinds := []sim.EventKind{
		sim.EventWallBounce, sim.EventObstacleBounce, sim.EventSlowZoneEnter,
		sim.EventGameOver, sim.EventLevelComplete, sim.EventGameComplete,
	}
	evRows := make([][]string, len(kinds))
	for i, k := range kinds {
		evRows[i] = []string{k.String(), strconv.Itoa(events[k])}
	}
	fmt.Println(tui.RenderTable([]tui.Column{{Title: "Event"}, {Title: "Count"}}, evRows))

	if engine.State() != sim.StateGameComplete {
		closeLog()
		os.Exit(1)
	}
}
