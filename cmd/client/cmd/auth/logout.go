package auth

import (
	"errors"
	"fmt"

	"collectionhub/cmd/client/cmd/types"
	"collectionhub/internal/app/client"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить локальную сессию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			if errors.Is(err, client.ErrNoSession) {
				fmt.Println("Вы не вошли в систему")
				return nil
			}
			return err
		}

		fmt.Println("Сессия завершена")
		return nil
	},
}
