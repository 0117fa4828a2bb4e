// cmd/client/cmd/item/list.go
package item

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"collectionhub/cmd/client/cmd/types"
	"collectionhub/internal/domain/collection"

	"github.com/spf13/cobra"
)

var (
	listType       string
	listCollection string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список предметов",
	Long: `Просмотр предметов всех коллекций или одной коллекции.

Флаг --type фильтрует по типу, значение "all" отключает фильтр.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		items, err := app.Items(cmd.Context(), listType, listCollection)
		if err != nil {
			return fmt.Errorf("ошибка получения предметов: %w", err)
		}

		if types.WantJSON(cmd) {
			out := make([]itemJSON, 0, len(items))
			for _, it := range items {
				out = append(out, toJSON(it))
			}
			return types.PrintJSON(cmd.OutOrStdout(), out)
		}

		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Предметы не найдены")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tНазвание\tТип\tСтатус\t\n")
		fmt.Fprintf(w, "---\t---\t---\t---\t\n")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				it.ID,
				types.Truncate(it.Name, 30),
				it.TypeName(),
				types.Status(it.CollectStatus),
			)
		}
		w.Flush()

		if kinds := collection.UniqueTypes(items); len(kinds) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\nТипы: %s\n", strings.Join(kinds, ", "))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Всего предметов: %d\n", len(items))
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listType, "type", "t", "", "фильтр по типу")
	ListCmd.Flags().StringVarP(&listCollection, "collection", "c", "", "id коллекции")
}
