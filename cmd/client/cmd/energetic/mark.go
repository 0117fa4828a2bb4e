package energetic

import (
	"fmt"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var MarkCmd = &cobra.Command{
	Use:   "mark <id> <status>",
	Short: "Отметить запись каталога",
	Long:  `Статус: unknown, collected или will-not-collect.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.MarkEnergetic(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("ошибка сохранения отметки: %w", err)
		}

		fmt.Println("Отметка сохранена")
		return nil
	},
}
