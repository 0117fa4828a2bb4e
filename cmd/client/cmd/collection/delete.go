package collection

import (
	"fmt"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить коллекцию вместе с предметами",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.DeleteCollection(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления коллекции: %w", err)
		}

		fmt.Println("Коллекция удалена")
		return nil
	},
}
