package item

import (
	"fmt"
	"strings"

	"collectionhub/cmd/client/cmd/types"
	"collectionhub/internal/app/client"
	"collectionhub/internal/domain/item"

	"github.com/spf13/cobra"
)

var (
	addCollection  string
	addDescription string
	addImage       string
	addType        string
	addStatus      string
)

var AddCmd = &cobra.Command{
	Use:   "add <название>",
	Short: "Добавить предмет в коллекцию",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		in := client.ItemInput{
			CollectionID: addCollection,
			Name:         strings.Join(args, " "),
			Description:  addDescription,
		}
		if addImage != "" {
			in.Image = &addImage
		}
		if addType != "" {
			in.Type = &addType
		}
		if addStatus != "" {
			st, err := item.ParseStatus(addStatus)
			if err != nil {
				return fmt.Errorf("неизвестный статус %q: unknown, collected или will-not-collect", addStatus)
			}
			in.CollectStatus = &st
		}

		it, err := app.AddItem(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("ошибка добавления предмета: %w", err)
		}

		if types.WantJSON(cmd) {
			return types.PrintJSON(cmd.OutOrStdout(), toJSON(it))
		}

		fmt.Printf("✅ Предмет добавлен: %s (%s)\n", it.Name, it.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addCollection, "collection", "c", "", "id коллекции")
	AddCmd.Flags().StringVarP(&addDescription, "description", "d", "", "описание предмета")
	AddCmd.Flags().StringVar(&addImage, "image", "", "URL изображения")
	AddCmd.Flags().StringVarP(&addType, "type", "t", "", "тип предмета")
	AddCmd.Flags().StringVarP(&addStatus, "status", "s", "", "статус сбора")
	_ = AddCmd.MarkFlagRequired("collection")
	_ = AddCmd.MarkFlagRequired("description")
}
