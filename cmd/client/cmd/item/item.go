package item

import (
	"time"

	"collectionhub/internal/domain/item"

	"github.com/spf13/cobra"
)

// ItemCmd - родительская команда для операций с предметами
var ItemCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"item"},
	Short:   "Управление предметами коллекций",
	Long:    `Просмотр, добавление предметов и переключение статуса сбора.`,
}

func init() {
	ItemCmd.AddCommand(ListCmd, AddCmd, ToggleCmd)
}

type itemJSON struct {
	ID            string             `json:"id"`
	CollectionID  string             `json:"collectionId"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Image         *string            `json:"image"`
	Type          *string            `json:"type"`
	CollectStatus item.CollectStatus `json:"collectStatus"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func toJSON(it item.Item) itemJSON {
	return itemJSON{
		ID:            it.ID.String(),
		CollectionID:  it.CollectionID.String(),
		Name:          it.Name,
		Description:   it.Description,
		Image:         it.Image,
		Type:          it.Type,
		CollectStatus: it.CollectStatus,
		CreatedAt:     it.CreatedAt,
	}
}
