// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"collectionhub/cmd/client/cmd/types"
	"collectionhub/internal/app/client"
	"collectionhub/internal/app/client/config"
	serverconfig "collectionhub/internal/app/server/config"
	"collectionhub/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	app       *client.App
	debug     bool
	serverURL string
	dataPath  string
)

var rootCmd = &cobra.Command{
	Use:   "hubctl",
	Short: "hubctl - клиент Collection Hub",
	Long: `hubctl - консольный клиент Collection Hub.

Позволяет вести коллекции и предметы, отмечать собранное и смотреть
каталог энергетиков. Сессия и личные отметки каталога хранятся локально.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("ошибка создания директории данных: %w", err)
	}

	app, err = client.New(cfg, newLogger())
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

// newLogger: подробный лог только с --debug, иначе предупреждения в stderr
func newLogger() *slog.Logger {
	if debug {
		return logger.New(serverconfig.EnvLocal)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().Bool(types.JSONFlag, false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Collection Hub (host:port)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "путь к локальной базе hubctl")
}
