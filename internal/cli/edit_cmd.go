package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/maebert/bragmaster/internal/bragfile"
	"github.com/maebert/bragmaster/internal/editor"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open a new session template in $EDITOR and merge it back",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("edit needs an interactive terminal; pipe into 'brag update' instead")
			}

			doc, path, err := loadDocument(app, cmd)
			if err != nil {
				return err
			}

			label := date
			if label == "" {
				label = app.now().Format("2006-01-02")
			}

			tpl := app.Templates.Generate(doc, label, userFilter(cmd.Flags()))
			if tpl.Empty() {
				return fmt.Errorf("no users to template in %s", path)
			}

			edited, err := editor.Edit(bragfile.Serialize(tpl))
			if err != nil {
				return err
			}

			incoming, err := bragfile.Parse(edited)
			if err != nil {
				return fmt.Errorf("edited template: %w", err)
			}

			merged := app.Merge.Merge(doc, incoming)

			confirm := true
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Write session %s to %s?", label, path)).
					Value(&confirm),
			))
			if err := form.Run(); err != nil {
				return err
			}
			if !confirm {
				fmt.Fprintln(cmd.OutOrStdout(), "Discarded.")
				return nil
			}

			if err := app.Store.Save(cmd.Context(), path, merged); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Label for the new session (default today, YYYY-MM-DD)")

	return cmd
}
