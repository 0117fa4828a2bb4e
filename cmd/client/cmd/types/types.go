// Package types - общие для команд hubctl ключи контекста и вывод.
package types

import (
	"encoding/json"
	"fmt"
	"io"

	"collectionhub/internal/app/client"
	"collectionhub/internal/domain/item"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type contextKey string

const (
	ClientAppKey contextKey = "app"
	JSONFlag                = "json"
)

// App достает приложение, созданное в PersistentPreRunE
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// WantJSON - передан глобальный флаг --json
func WantJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool(JSONFlag)
	return err == nil && v
}

func PrintJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// Status - статус сбора с цветом
func Status(s item.CollectStatus) string {
	switch s {
	case item.StatusCollected:
		return green("✓ collected")
	case item.StatusWillNotCollect:
		return faint("– will-not-collect")
	default:
		return yellow("? unknown")
	}
}

// Percent красит процент: 100 зеленый, от 50 желтый, ниже красный
func Percent(p int) string {
	s := fmt.Sprintf("%3d%%", p)
	switch {
	case p >= 100:
		return green(s)
	case p >= 50:
		return yellow(s)
	default:
		return red(s)
	}
}

func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
