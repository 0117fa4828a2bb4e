package energetic

import (
	"github.com/spf13/cobra"
)

// EnergeticCmd - каталог энергетиков и личные отметки
var EnergeticCmd = &cobra.Command{
	Use:     "energetics",
	Aliases: []string{"energetic"},
	Short:   "Каталог энергетиков",
	Long: `Просмотр общего каталога энергетиков.

Отметки сбора для каталога хранятся только на этом компьютере.`,
}

func init() {
	EnergeticCmd.AddCommand(ListCmd, MarkCmd)
}
