package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"collectionhub/internal/app/client/config"
	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/energetic"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/domain/session"

	"golang.org/x/exp/slog"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "hubctl/1.0",
	}
}

// SetToken устанавливает токен сессии, который уходит в cookie
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

// Signup регистрирует пользователя и возвращает токен новой сессии
func (h *httpClient) Signup(ctx context.Context, username, email, password string) (User, string, error) {
	req := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	return h.authenticate(ctx, "/api/auth/signup", req)
}

func (h *httpClient) Login(ctx context.Context, login, password string) (User, string, error) {
	req := map[string]string{
		"login":    login,
		"password": password,
	}
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpClient) authenticate(ctx context.Context, path string, body any) (User, string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return User{}, "", err
	}

	token := sessionToken(resp)

	var u User
	if err := h.parseResponse(resp, &u); err != nil {
		return User{}, "", err
	}
	if token == "" {
		return User{}, "", fmt.Errorf("сервер не вернул cookie сессии")
	}

	h.SetToken(token)
	return u, token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	h.SetToken("")
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Me(ctx context.Context) (User, error) {
	var u User
	if err := h.call(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// ChangePassword меняет пароль пользователя
func (h *httpClient) ChangePassword(ctx context.Context, current, next, confirm string) error {
	req := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
		"confirmPassword": confirm,
	}
	return h.call(ctx, http.MethodPut, "/api/auth/me/password", req, nil)
}

func (h *httpClient) Collections(ctx context.Context) ([]collection.Collection, error) {
	var list []collectionDTO
	if err := h.call(ctx, http.MethodGet, "/api/collections", nil, &list); err != nil {
		return nil, err
	}

	out := make([]collection.Collection, 0, len(list))
	for _, c := range list {
		out = append(out, c.toDomain())
	}
	return out, nil
}

func (h *httpClient) CreateCollection(ctx context.Context, name string, description *string) (collection.Collection, error) {
	req := struct {
		Name        string  `json:"name"`
		Description *string `json:"description,omitempty"`
	}{Name: name, Description: description}

	var c collectionDTO
	if err := h.call(ctx, http.MethodPost, "/api/collections", req, &c); err != nil {
		return collection.Collection{}, err
	}
	return c.toDomain(), nil
}

func (h *httpClient) DeleteCollection(ctx context.Context, id string) error {
	return h.call(ctx, http.MethodDelete, "/api/collections/"+url.PathEscape(id), nil, nil)
}

// Items возвращает предметы; пустые typ и collectionID не фильтруют
func (h *httpClient) Items(ctx context.Context, typ, collectionID string) ([]item.Item, error) {
	q := url.Values{}
	if typ != "" {
		q.Set("type", typ)
	}
	if collectionID != "" {
		q.Set("collectionId", collectionID)
	}

	path := "/api/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list []itemDTO
	if err := h.call(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	out := make([]item.Item, 0, len(list))
	for _, it := range list {
		out = append(out, it.toDomain())
	}
	return out, nil
}

func (h *httpClient) CreateItem(ctx context.Context, in ItemInput) (item.Item, error) {
	var it itemDTO
	if err := h.call(ctx, http.MethodPost, "/api/items", in, &it); err != nil {
		return item.Item{}, err
	}
	return it.toDomain(), nil
}

func (h *httpClient) ToggleItem(ctx context.Context, id string) (item.Item, error) {
	var it itemDTO
	if err := h.call(ctx, http.MethodPost, "/api/items/"+url.PathEscape(id)+"/toggle", nil, &it); err != nil {
		return item.Item{}, err
	}
	return it.toDomain(), nil
}

func (h *httpClient) Energetics(ctx context.Context, typ string) ([]energetic.Energetic, error) {
	path := "/api/energetics"
	if typ != "" {
		path += "?" + url.Values{"type": {typ}}.Encode()
	}

	var list []energetic.Energetic
	if err := h.call(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *httpClient) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: h.token})
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"size", len(body),
	)

	if resp.StatusCode >= 400 {
		return responseError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// responseError переводит ответ сервера в доменную ошибку, сохраняя статус через errors.Is
func responseError(status int, body []byte) error {
	msg := fmt.Sprintf("статус %d", status)

	var e apiError
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Detail != "" {
			msg = e.Detail
		} else if e.Title != "" {
			msg = e.Title
		}
		var fields []string
		for _, fe := range e.Errors {
			if fe.Message != "" && fe.Message != msg {
				fields = append(fields, fe.Message)
			}
		}
		if len(fields) > 0 {
			msg += ": " + strings.Join(fields, "; ")
		}
	}

	return errs.New(statusKind(status), "ошибка сервера: "+msg)
}

func statusKind(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return errs.ErrUnauthorized
	case http.StatusForbidden:
		return errs.ErrForbidden
	case http.StatusNotFound:
		return errs.ErrNotFound
	case http.StatusConflict:
		return errs.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errs.ErrInvalidInput
	default:
		return errs.ErrUnavailable
	}
}

// sessionToken достает значение cookie сессии из Set-Cookie
func sessionToken(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c.Value
		}
	}
	return ""
}
