package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"collectionhub/internal/app/client/config"
	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/energetic"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    *SQLiteStorage
	session    LocalSession
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
		storage:    storage,
	}

	// Загружаем токен если он есть
	ls, err := storage.Session()
	switch {
	case err == nil:
		app.session = ls
		app.httpClient.SetToken(ls.Token)
		log.Debug("Сессия загружена", "user", ls.Username)
	case !errors.Is(err, ErrNoSession):
		storage.Close()
		return nil, err
	}

	return app, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// IsAuthenticated - есть сохраненная сессия
func (a *App) IsAuthenticated() bool {
	return a.session.Token != ""
}

// Username возвращает имя пользователя сохраненной сессии
func (a *App) Username() string {
	return a.session.Username
}

func (a *App) Signup(ctx context.Context, username, email, password string) (User, error) {
	u, token, err := a.httpClient.Signup(ctx, username, email, password)
	if err != nil {
		return User{}, err
	}
	return u, a.saveSession(token, u.Username)
}

func (a *App) Login(ctx context.Context, login, password string) (User, error) {
	u, token, err := a.httpClient.Login(ctx, login, password)
	if err != nil {
		return User{}, err
	}
	return u, a.saveSession(token, u.Username)
}

func (a *App) saveSession(token, username string) error {
	if err := a.storage.SaveSession(token, username); err != nil {
		return err
	}
	a.session = LocalSession{Token: token, Username: username, SavedAt: time.Now()}
	return nil
}

// Logout отзывает сессию на сервере и всегда очищает локальную
func (a *App) Logout(ctx context.Context) error {
	if !a.IsAuthenticated() {
		return ErrNoSession
	}

	if err := a.httpClient.Logout(ctx); err != nil {
		a.log.Warn("Не удалось завершить сессию на сервере", "error", err)
	}
	return a.dropSession()
}

func (a *App) dropSession() error {
	a.session = LocalSession{}
	a.httpClient.SetToken("")
	return a.storage.ClearSession()
}

// authed выполняет запрос от имени пользователя. Отвергнутая сервером сессия удаляется.
func (a *App) authed(fn func() error) error {
	if !a.IsAuthenticated() {
		return ErrNoSession
	}

	err := fn()
	if errors.Is(err, errs.ErrUnauthorized) {
		if clearErr := a.dropSession(); clearErr != nil {
			a.log.Warn("Не удалось очистить сессию", "error", clearErr)
		}
		return fmt.Errorf("сессия истекла, выполните hubctl login: %w", err)
	}
	return err
}

func (a *App) Me(ctx context.Context) (User, error) {
	var u User
	err := a.authed(func() (err error) {
		u, err = a.httpClient.Me(ctx)
		return err
	})
	return u, err
}

func (a *App) ChangePassword(ctx context.Context, current, next, confirm string) error {
	return a.authed(func() error {
		return a.httpClient.ChangePassword(ctx, current, next, confirm)
	})
}

// Progress считает прогресс коллекций локально по спискам коллекций и предметов
func (a *App) Progress(ctx context.Context) ([]collection.Progress, error) {
	var (
		cols  []collection.Collection
		items []item.Item
	)
	err := a.authed(func() (err error) {
		if cols, err = a.httpClient.Collections(ctx); err != nil {
			return err
		}
		items, err = a.httpClient.Items(ctx, "", "")
		return err
	})
	if err != nil {
		return nil, err
	}

	return collection.Summarize(cols, items), nil
}

func (a *App) CreateCollection(ctx context.Context, name, description string) (collection.Collection, error) {
	var desc *string
	if d := strings.TrimSpace(description); d != "" {
		desc = &d
	}

	var c collection.Collection
	err := a.authed(func() (err error) {
		c, err = a.httpClient.CreateCollection(ctx, name, desc)
		return err
	})
	return c, err
}

func (a *App) DeleteCollection(ctx context.Context, id string) error {
	return a.authed(func() error {
		return a.httpClient.DeleteCollection(ctx, id)
	})
}

func (a *App) Items(ctx context.Context, typ, collectionID string) ([]item.Item, error) {
	var items []item.Item
	err := a.authed(func() (err error) {
		items, err = a.httpClient.Items(ctx, typ, collectionID)
		return err
	})
	return items, err
}

func (a *App) AddItem(ctx context.Context, in ItemInput) (item.Item, error) {
	var it item.Item
	err := a.authed(func() (err error) {
		it, err = a.httpClient.CreateItem(ctx, in)
		return err
	})
	return it, err
}

func (a *App) ToggleItem(ctx context.Context, id string) (item.Item, error) {
	var it item.Item
	err := a.authed(func() (err error) {
		it, err = a.httpClient.ToggleItem(ctx, id)
		return err
	})
	return it, err
}

// Energetics - каталог с наложенными локальными отметками
func (a *App) Energetics(ctx context.Context, typ string) ([]energetic.Energetic, error) {
	list, err := a.httpClient.Energetics(ctx, typ)
	if err != nil {
		return nil, err
	}

	marks, err := a.storage.Marks()
	if err != nil {
		return nil, err
	}

	return energetic.Merge(list, marks), nil
}

// MarkEnergetic сохраняет отметку локально, запись должна быть в каталоге
func (a *App) MarkEnergetic(ctx context.Context, rawID, rawStatus string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return errs.New(errs.ErrInvalidInput, "некорректный id записи: "+rawID)
	}

	status, err := item.ParseStatus(rawStatus)
	if err != nil {
		return errs.New(errs.ErrInvalidInput, "неизвестный статус: "+rawStatus)
	}

	list, err := a.httpClient.Energetics(ctx, "")
	if err != nil {
		return err
	}

	for _, e := range list {
		if e.ID == id {
			return a.storage.SetMark(id, status)
		}
	}
	return errs.New(errs.ErrNotFound, "запись каталога не найдена: "+rawID)
}
