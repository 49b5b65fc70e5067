package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session состояние сессии пользователя
type Session struct {
	UserID        int64 `json:"userId"`
	Authenticated bool  `json:"authenticated"`
}

// Client клиент для работы с AuthService
// Вызывается только в момент отправки черновика
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AuthService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// IsAuthenticated проверяет, аутентифицирован ли пользователь
// Отсутствие сессии - не ошибка, а false
func (c *Client) IsAuthenticated(ctx context.Context, userID int64) (bool, error) {
	url := fmt.Sprintf("%s/internal/sessions/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return session.Authenticated, nil
}

// LoginURL возвращает адрес страницы входа для редиректа
// неаутентифицированного пользователя
func (c *Client) LoginURL() string {
	return c.baseURL + "/login"
}
