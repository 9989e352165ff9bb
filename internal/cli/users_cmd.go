package cli

import (
	"fmt"

	"github.com/maebert/bragmaster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the users tracked in the bragfile",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDocument(app, cmd)
			if err != nil {
				return err
			}

			users := app.Query.Users(doc, userFilter(cmd.Flags()))
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}

			headers := []string{"NAME", "EMAIL", "STATUS", "SESSIONS", "LATEST"}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				latest := ""
				if s := u.CurrentSession(); s != nil {
					latest = s.Label
				}
				rows = append(rows, []string{
					formatter.Bold(u.Name),
					formatter.Dim(u.Email),
					formatter.ActiveIndicator(u.Active),
					fmt.Sprintf("%d", len(u.Sessions)),
					latest,
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
