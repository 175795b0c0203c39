package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flick-arena/internal/levels"
	"github.com/vovakirdan/flick-arena/internal/platform/tui"
	"github.com/vovakirdan/flick-arena/internal/registry"
)

var flagListLevels string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available level packs",
	Long: `Shows the built-in level packs, or the valid packs found under --levels.

Examples:
  flick list
  flick list --levels ./my-packs`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListLevels, "levels", "", "List packs from this file or directory")
}

func runList(cmd *cobra.Command, args []string) {
	var infos []registry.PackInfo

	if flagListLevels != "" {
		logger, closeLog, err := newLogger(os.Stderr)
		if err != nil {
			exitErr("%v", err)
		}
		defer closeLog()

		loader := levels.NewLoader(flagListLevels)
		loader.Logger = logger
		packs, err := loader.LoadAll()
		if err != nil {
			exitErr("%v", err)
		}
		for _, p := range packs {
			infos = append(infos, registry.PackInfo{ID: p.ID, Title: p.Name, Description: p.Description, Levels: len(p.Levels)})
		}
	} else {
		infos = registry.List()
	}

	if len(infos) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	rows := make([][]string, len(infos))
	for i, p := range infos {
		rows[i] = []string{p.ID, p.Title, strconv.Itoa(p.Levels), p.Description}
	}

	fmt.Println("Available level packs:")
	fmt.Println()
	fmt.Println(tui.RenderTable([]tui.Column{
		{Title: "ID"}, {Title: "Title"}, {Title: "Levels"}, {Title: "Description"},
	}, rows))
	fmt.Println()
	fmt.Println("Run 'flick play <id>' to play a pack.")
}
