// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var RegisterCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на сервере Collection Hub.

Пароль: не короче 8 символов, строчная и заглавная буквы, цифра и спецсимвол.
После регистрации сессия сохраняется, повторный вход не нужен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Регистрация нового пользователя ===")
		fmt.Println()

		username := prompt("Имя пользователя: ")
		email := prompt("Email: ")

		password, err := readPassword("Пароль: ")
		if err != nil {
			return err
		}
		passwordConfirm, err := readPassword("Повторите пароль: ")
		if err != nil {
			return err
		}

		if password != passwordConfirm {
			return fmt.Errorf("пароли не совпадают")
		}

		u, err := app.Signup(cmd.Context(), username, email, password)
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Регистрация завершена, вы вошли как %s\n", u.Username)
		return nil
	},
}
