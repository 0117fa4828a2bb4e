// cmd/client/cmd/collection/list.go
package collection

import (
	"fmt"
	"text/tabwriter"

	"collectionhub/cmd/client/cmd/types"
	"collectionhub/internal/domain/collection"

	"github.com/spf13/cobra"
)

type progressJSON struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	ItemsCount        int     `json:"itemsCount"`
	CollectedCount    int     `json:"collectedCount"`
	CompletionPercent int     `json:"completionPercent"`
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Коллекции и прогресс сбора",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		progress, err := app.Progress(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения коллекций: %w", err)
		}

		if types.WantJSON(cmd) {
			out := make([]progressJSON, 0, len(progress))
			for _, p := range progress {
				out = append(out, progressJSON{
					ID:                p.Collection.ID.String(),
					Name:              p.Collection.Name,
					Description:       p.Collection.Description,
					ItemsCount:        p.ItemsCount,
					CollectedCount:    p.CollectedCount,
					CompletionPercent: p.CompletionPercent,
				})
			}
			return types.PrintJSON(cmd.OutOrStdout(), out)
		}

		printProgress(cmd, progress)
		return nil
	},
}

func printProgress(cmd *cobra.Command, progress []collection.Progress) {
	if len(progress) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Коллекций пока нет: hubctl collections create <название>")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tНазвание\tПредметов\tСобрано\tПрогресс\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, p := range progress {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t\n",
			p.Collection.ID,
			types.Truncate(p.Collection.Name, 30),
			p.ItemsCount,
			p.CollectedCount,
			types.Percent(p.CompletionPercent),
		)
	}
	w.Flush()

	items, collected, percent := collection.Totals(progress)
	fmt.Fprintf(cmd.OutOrStdout(), "\nВсего: %d коллекций, собрано %d из %d (%s)\n",
		len(progress), collected, items, types.Percent(percent))
}
