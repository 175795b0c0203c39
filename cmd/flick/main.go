// flick is a top-down arcade arena in the terminal: drag with the mouse to
// flick the ball and survive the enemy fire until the timer runs out.
//
// Usage:
//
//	flick list                - List available level packs
//	flick play [pack]         - Play a pack (default: classic)
//	flick validate <path>     - Check level pack files
//	flick sim [pack]          - Run a pack headless with the autopilot
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flick",
	Short: "Flick Arena - dodge bullets by flicking a ball in your terminal",
	Long: `Flick Arena is a top-down arcade game. Drag with the mouse and release
to flick the ball away from the enemy fire. Survive the timer to clear a level.

Available commands:
  list      - Show all level packs
  play      - Play a level pack
  validate  - Check level pack files for errors
  sim       - Run a pack headless with the autopilot

Examples:
  flick list
  flick play
  flick play training --difficulty easy
  flick play --levels ./my-packs mypack
  flick validate ./my-packs
  flick sim classic --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simCmd)
}

// exitErr prints err and exits with status 1.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
