// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"time"

	"collectionhub/cmd/client/cmd/types"

	"github.com/spf13/cobra"
)

var loginName string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в Collection Hub",
	Long: `Аутентификация на сервере Collection Hub по имени пользователя или email.

После входа токен сессии сохраняется локально для последующих команд.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		login := loginName
		if login == "" {
			login = prompt("Имя пользователя или email: ")
		}

		password, err := readPassword("Пароль: ")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		u, err := app.Login(ctx, login, password)
		if err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Printf("✅ Вход выполнен: %s\n", u.Username)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginName, "user", "u", "", "имя пользователя или email")
}
