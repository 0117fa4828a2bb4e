// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"collectionhub/cmd/client/cmd/auth"
	"collectionhub/cmd/client/cmd/collection"
	"collectionhub/cmd/client/cmd/energetic"
	"collectionhub/cmd/client/cmd/item"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Проверить настройки hubctl",
	Long: `Команда init выполняет первоначальную проверку клиента:
	1. Создает локальную базу для сессии и отметок каталога
	2. Проверяет соединение с сервером`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("=== Collection Hub ===")
		fmt.Printf("Сервер:         %s\n", cfg.BaseURL())
		fmt.Printf("Локальная база: %s\n", cfg.DataPath)
		fmt.Println()

		fmt.Println("Проверка соединения с сервером...")
		if err := app.CheckConnection(cmd.Context()); err != nil {
			fmt.Printf("⚠️  Предупреждение: не удалось подключиться к серверу: %v\n", err)
		} else {
			fmt.Println("✓ Соединение с сервером установлено")
		}

		fmt.Println()
		if app.IsAuthenticated() {
			fmt.Printf("Вы вошли как %s\n", app.Username())
			return nil
		}

		fmt.Println("Что дальше:")
		fmt.Println("1. Зарегистрируйтесь: hubctl register")
		fmt.Println("2. Или войдите: hubctl login")
		fmt.Println("3. Создайте первую коллекцию: hubctl collections create <название>")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Команды аутентификации
	rootCmd.AddGroup(auth.Group)
	rootCmd.AddCommand(auth.Commands()...)

	rootCmd.AddCommand(collection.CollectionCmd)
	rootCmd.AddCommand(item.ItemCmd)
	rootCmd.AddCommand(energetic.EnergeticCmd)
}
