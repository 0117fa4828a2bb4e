package api

import (
	"collectionhub/internal/app/server/config"
	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/energetic"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/domain/session"
	"collectionhub/internal/domain/upload"
	"collectionhub/internal/domain/user"
	"collectionhub/internal/infrastructure/media"
	"collectionhub/internal/infrastructure/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// Services - доменные сервисы, общие для JSON API и страниц
type Services struct {
	User       user.Servicer
	Session    session.Servicer
	Collection collection.Servicer
	Item       item.Servicer
	Energetic  energetic.Servicer
	Upload     upload.Servicer
}

// NewServices собирает сервисы поверх postgres. store может быть nil,
// тогда загрузка изображений отключена.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, store upload.Store, log *slog.Logger) *Services {
	sessionRepo := postgres.NewSessionRepository(pool, log)
	signer := session.NewSigner([]byte(cfg.Session.Secret))

	userRepo := postgres.NewUserRepository(pool, log)
	itemRepo := postgres.NewItemRepository(pool, log)
	collectionRepo := postgres.NewCollectionRepository(pool, log)
	energeticRepo := postgres.NewEnergeticRepository(pool, log)

	itemService := item.NewService(itemRepo, log)

	return &Services{
		User:       user.NewService(userRepo, user.NewPasswordValidator(), log),
		Session:    session.NewService(sessionRepo, signer, cfg.Session.TTL, log),
		Collection: collection.NewService(collectionRepo, itemService, log),
		Item:       itemService,
		Energetic:  energetic.NewService(energeticRepo, log),
		Upload:     upload.NewService(store, media.Downscale, cfg.Media.MaxWidth, log),
	}
}
