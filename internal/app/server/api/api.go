// JSON API и страницы на одном chi.Mux.
//
//POST   /api/auth/signup            # Регистрация (публичный, лимит)
//POST   /api/auth/login             # Логин (публичный, лимит)
//POST   /api/auth/logout            # Выход
//GET    /api/auth/me                # Профиль (auth)
//PATCH  /api/auth/me                # Изменить профиль (auth)
//PUT    /api/auth/me/password       # Сменить пароль (auth)
//DELETE /api/auth/me                # Удалить аккаунт (auth)
//GET    /api/collections            # Коллекции (auth)
//POST   /api/collections            # Создать коллекцию (auth)
//GET    /api/collections/progress   # Прогресс (auth)
//GET    /api/collections/{id}       # Коллекция с предметами (auth)
//PATCH  /api/collections/{id}       # Изменить коллекцию (auth)
//DELETE /api/collections/{id}       # Удалить коллекцию (auth)
//GET    /api/items                  # Предметы (auth)
//POST   /api/items                  # Создать предмет (auth)
//GET    /api/items/types            # Типы предметов (auth)
//PATCH  /api/items/{id}             # Изменить предмет (auth)
//POST   /api/items/{id}/toggle      # Переключить статус (auth)
//DELETE /api/items/{id}             # Удалить предмет (auth)
//GET    /api/energetics             # Каталог энергетиков (публичный)
//POST   /api/energetics             # Добавить энергетик (auth)
//POST   /api/uploads                # Загрузить изображение (auth)

package api

import (
	"net/http"

	collectionAPI "collectionhub/internal/app/server/api/http/collection"
	energeticAPI "collectionhub/internal/app/server/api/http/energetic"
	healthAPI "collectionhub/internal/app/server/api/http/health"
	itemAPI "collectionhub/internal/app/server/api/http/item"
	"collectionhub/internal/app/server/api/http/middleware"
	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/app/server/api/http/middleware/logger"
	"collectionhub/internal/app/server/api/http/middleware/ratelimit"
	uploadAPI "collectionhub/internal/app/server/api/http/upload"
	userAPI "collectionhub/internal/app/server/api/http/user"
	"collectionhub/internal/app/server/config"
	"collectionhub/internal/app/server/web"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Collection *collectionAPI.Handler
	Item       *itemAPI.Handler
	Energetic  *energeticAPI.Handler
	Upload     *uploadAPI.Handler
}

// Deps - все, что нужно для сборки роутера.
// DB и Limiter могут быть nil.
type Deps struct {
	Config   *config.Config
	Services *Services
	DB       healthAPI.Pinger
	Limiter  ratelimit.Allower
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register и страницами.
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	// chi требует регистрировать middleware до маршрутов
	mux.Use(chimw.RequestID)
	if deps.Config.Server.TrustProxyHeaders {
		// RemoteAddr из заголовков proxy, по нему считает rate limit
		mux.Use(chimw.RealIP)
	}
	mux.Use(chimw.Recoverer)
	if origins := deps.Config.Server.AllowedOrigins; len(origins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	config := huma.DefaultConfig("Collection Hub API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {Type: "apiKey", In: "cookie", Name: "session"},
	}

	API := humachi.New(mux, config)
	// журнал запросов общий для всех операций, включая ответы auth middleware
	API.UseMiddleware(logger.New(log).Middleware())

	h := handlers(API, deps, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Collection.SetupRoutes(API)
	h.Item.SetupRoutes(API)
	h.Energetic.SetupRoutes(API)
	h.Upload.SetupRoutes(API)

	web.NewHandler(web.Deps{
		Users:       deps.Services.User,
		Sessions:    deps.Services.Session,
		Collections: deps.Services.Collection,
		Items:       deps.Services.Item,
	}, deps.Config.Session.CookieSecure, log).SetupRoutes(mux)

	return mux
}

func handlers(api huma.API, deps Deps, log *slog.Logger) *Handlers {
	svc := deps.Services
	authMW := auth.New(api, svc.Session, log)
	middlewares := middleware.NewContainer()

	healthHandler := healthAPI.NewHandler(deps.DB, log, middlewares.GetAllAndClear())

	if deps.Limiter != nil {
		middlewares.Add(ratelimit.New(api, deps.Limiter, log).Middleware())
	}
	throttled := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	userHandler := userAPI.NewHandler(
		svc.User, svc.Session, deps.Config.Session.CookieSecure, log,
		throttled, middlewares.GetAllAndClear(),
	)

	middlewares.Add(authMW.Middleware())
	collectionHandler := collectionAPI.NewHandler(svc.Collection, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	itemHandler := itemAPI.NewHandler(svc.Item, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	energeticHandler := energeticAPI.NewHandler(svc.Energetic, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	uploadHandler := uploadAPI.NewHandler(svc.Upload, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Collection: collectionHandler,
		Item:       itemHandler,
		Energetic:  energeticHandler,
		Upload:     uploadHandler,
	}
}
