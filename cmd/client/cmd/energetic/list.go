package energetic

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"collectionhub/cmd/client/cmd/types"
	"collectionhub/internal/domain/energetic"

	"github.com/spf13/cobra"
)

var listType string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Каталог с локальными отметками",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		list, err := app.Energetics(cmd.Context(), listType)
		if err != nil {
			return fmt.Errorf("ошибка получения каталога: %w", err)
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), list)
		}

		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Каталог пуст")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tОписание\tТип\tСтатус\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t\n")
		for _, e := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				e.ID,
				types.Truncate(e.Description, 40),
				e.Type,
				types.Status(e.Collect),
			)
		}
		w.Flush()

		fmt.Fprintf(cmd.OutOrStdout(), "\nТипы: %s\n", strings.Join(energetic.UniqueTypes(list), ", "))
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listType, "type", "t", "", "фильтр по типу")
}
