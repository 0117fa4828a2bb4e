package auth

import (
	"fmt"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Изменить пароль",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		current, err := readPassword("Текущий пароль: ")
		if err != nil {
			return err
		}
		next, err := readPassword("Новый пароль: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Повторите новый пароль: ")
		if err != nil {
			return err
		}

		if err := app.ChangePassword(cmd.Context(), current, next, confirm); err != nil {
			return fmt.Errorf("ошибка смены пароля: %w", err)
		}

		fmt.Println("✅ Пароль изменен")
		return nil
	},
}
