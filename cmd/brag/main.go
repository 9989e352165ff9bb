package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/maebert/bragmaster/internal/cli"
	"github.com/maebert/bragmaster/internal/service"
	"github.com/maebert/bragmaster/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine bragfile path: env var or default ~/.brag.md.
	bragFile := os.Getenv("BRAG_FILE")
	if bragFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			bragFile = filepath.Join(home, ".brag.md")
		}
	}

	app := &cli.App{
		Query:     service.NewQueryService(),
		Templates: service.NewTemplateService(),
		Merge:     service.NewMergeService(),
		Store:     store.NewFileStore(),

		DefaultFile: bragFile,
		Now:         time.Now,
	}

	// Detect interactive terminal for the edit workflow.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
