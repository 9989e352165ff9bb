package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/maebert/bragmaster/internal/bragfile"
	"github.com/spf13/cobra"
)

func newUpdateCmd(app *App) *cobra.Command {
	var inputPath string
	var write bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Merge an edited template or piped text into the bragfile",
		Long: "Reads bragfile-formatted text from stdin (or -i) and merges it " +
			"into the canonical file: new users and sessions are appended, " +
			"existing tasks are matched by text and get their status and " +
			"comment updated. Nothing is ever deleted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, err := loadDocument(app, cmd)
			if err != nil {
				return err
			}

			var raw []byte
			if inputPath != "" {
				raw, err = os.ReadFile(inputPath)
				if err != nil {
					return fmt.Errorf("reading input %s: %w", inputPath, err)
				}
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}

			// Parse fully before touching anything: a bad incoming
			// text must never cause a partial write.
			incoming, err := bragfile.Parse(string(raw))
			if err != nil {
				return fmt.Errorf("incoming text: %w", err)
			}

			merged := app.Merge.Merge(doc, incoming)

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), bragfile.Serialize(merged))
				return nil
			}
			if err := app.Store.Save(cmd.Context(), path, merged); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read the edited text from a file instead of stdin")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the merged result back to the bragfile")

	return cmd
}
