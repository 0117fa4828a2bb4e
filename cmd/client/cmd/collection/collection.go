package collection

import (
	"github.com/spf13/cobra"
)

// CollectionCmd - родительская команда для операций с коллекциями
var CollectionCmd = &cobra.Command{
	Use:     "collections",
	Aliases: []string{"collection", "col"},
	Short:   "Управление коллекциями",
	Long:    `Просмотр прогресса, создание и удаление коллекций.`,
}

func init() {
	CollectionCmd.AddCommand(ListCmd, CreateCmd, DeleteCmd)
}
