package cli

import (
	"fmt"
	"time"

	"github.com/maebert/bragmaster/internal/domain"
	"github.com/maebert/bragmaster/internal/service"
	"github.com/maebert/bragmaster/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands,
// plus the configuration resolved in main. The core itself keeps no
// process-wide state: everything commands need arrives through here.
type App struct {
	Query     service.QueryService
	Templates service.TemplateService
	Merge     service.MergeService
	Store     store.DocumentStore

	// DefaultFile is the bragfile path used when -f is not given,
	// resolved from BRAG_FILE in main.
	DefaultFile string
	// Now supplies the date used for new session labels.
	Now func() time.Time
	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "brag" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "brag",
		Short:        "Track and review periodic BRAG check-ins",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("file", "f", "", "Path to the bragfile (default $BRAG_FILE)")
	root.PersistentFlags().StringP("users", "u", "", "Filter by users, separate multiple users with commas")

	root.AddCommand(
		newUsersCmd(app),
		newCurrentCmd(app),
		newLastCmd(app),
		newTemplateCmd(app),
		newUpdateCmd(app),
		newEditCmd(app),
	)

	return root
}

// bragfilePath resolves the -f flag against the configured default.
func bragfilePath(app *App, flags *pflag.FlagSet) (string, error) {
	path, _ := flags.GetString("file")
	if path == "" {
		path = app.DefaultFile
	}
	if path == "" {
		return "", fmt.Errorf("no bragfile given: pass -f or set BRAG_FILE")
	}
	return path, nil
}

func userFilter(flags *pflag.FlagSet) domain.UserFilter {
	raw, _ := flags.GetString("users")
	return domain.ParseUserFilter(raw)
}

// loadDocument resolves the bragfile path and parses it.
func loadDocument(app *App, cmd *cobra.Command) (*domain.Document, string, error) {
	path, err := bragfilePath(app, cmd.Flags())
	if err != nil {
		return nil, "", err
	}
	doc, err := app.Store.Load(cmd.Context(), path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
