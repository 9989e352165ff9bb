package cli

import (
	"fmt"

	"github.com/maebert/bragmaster/internal/bragfile"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a new session template seeded with carried-over tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(app, cmd)
			if err != nil {
				return err
			}

			label := date
			if label == "" {
				label = app.now().Format("2006-01-02")
			}

			tpl := app.Templates.Generate(doc, label, userFilter(cmd.Flags()))
			if tpl.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No users to template.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), bragfile.Serialize(tpl))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Label for the new session (default today, YYYY-MM-DD)")

	return cmd
}
