package auth

import (
	"fmt"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var MeCmd = &cobra.Command{
	Use:   "me",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		u, err := app.Me(cmd.Context())
		if err != nil {
			return err
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), u)
		}

		fmt.Printf("Пользователь: %s\n", u.Username)
		fmt.Printf("Email:        %s\n", u.Email)
		fmt.Printf("ID:           %s\n", u.ID)
		fmt.Printf("Создан:       %s\n", u.CreatedAt.Format("2006-01-02"))
		return nil
	},
}
