package cli

import (
	"fmt"

	"github.com/maebert/bragmaster/internal/bragfile"
	"github.com/maebert/bragmaster/internal/domain"
	"github.com/spf13/cobra"
)

func newCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print each user's current (most recent) session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSessions(app, cmd, app.Query.CurrentSessions)
		},
	}
}

func newLastCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print each user's previous session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSessions(app, cmd, app.Query.LastSessions)
		},
	}
}

// printSessions emits the selected sessions as bragfile markdown so
// the output can be piped straight back into "brag update".
func printSessions(app *App, cmd *cobra.Command, sel func(*domain.Document, domain.UserFilter) *domain.Document) error {
	doc, _, err := loadDocument(app, cmd)
	if err != nil {
		return err
	}

	out := sel(doc, userFilter(cmd.Flags()))
	if out.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), bragfile.Serialize(out))
	return nil
}
