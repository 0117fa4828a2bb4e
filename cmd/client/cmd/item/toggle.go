package item

import (
	"fmt"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var ToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Переключить статус: collected <-> unknown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		it, err := app.ToggleItem(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка переключения статуса: %w", err)
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), toJSON(it))
		}

		fmt.Printf("%s: %s\n", it.Name, types.Status(it.CollectStatus))
		return nil
	},
}
