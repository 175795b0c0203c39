package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flick-arena/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>",
	Short: "Check level pack files",
	Long: `Parse and validate level packs. A directory is scanned recursively for
.yaml and .yml files. Exits with status 1 if any file has errors.

Examples:
  flick validate ./my-pack.yaml
  flick validate ./my-packs`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	files, err := packFiles(args[0])
	if err != nil {
		exitErr("%v", err)
	}
	if len(files) == 0 {
		exitErr("no level pack files in %s", args[0])
	}

	loader := levels.NewLoader(args[0])
	failed := 0
	for _, path := range files {
		p, err := loader.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s\n      %v\n", path, err)
			failed++
			continue
		}
		errs := levels.Validate(p)
		if len(errs) == 0 {
			fmt.Printf("ok    %s (%s, %d levels)\n", path, p.ID, len(p.Levels))
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", path)
		for _, e := range errs {
			fmt.Printf("      %s\n", e.Error())
		}
	}

	fmt.Println()
	fmt.Printf("%d files checked, %d failed\n", len(files), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// packFiles lists the pack files at root, which may be a file or a directory.
func packFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(levels.FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
