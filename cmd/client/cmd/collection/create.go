package collection

import (
	"fmt"
	"strings"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var createDescription string

var CreateCmd = &cobra.Command{
	Use:   "create <название>",
	Short: "Создать коллекцию",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		c, err := app.CreateCollection(cmd.Context(), strings.Join(args, " "), createDescription)
		if err != nil {
			return fmt.Errorf("ошибка создания коллекции: %w", err)
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), progressJSON{
				ID:          c.ID.String(),
				Name:        c.Name,
				Description: c.Description,
			})
		}

		fmt.Printf("✅ Коллекция создана: %s (%s)\n", c.Name, c.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "описание коллекции")
}
