package energetic

import "context"

type Repository interface {
	// List с пустым typ возвращает весь каталог
	List(ctx context.Context, typ string) ([]Energetic, error)
	Create(ctx context.Context, e Energetic) error
	// CreateBatch вставляет записи одной транзакцией, уже известные
	// (type, description) пропускаются. Возвращает число новых записей.
	CreateBatch(ctx context.Context, list []Energetic) (int, error)
}
