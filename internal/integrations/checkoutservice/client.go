package checkoutservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrCheckoutRejected возвращается, когда checkout отклонил передачу
	ErrCheckoutRejected = errors.New("checkoutservice client: checkout rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("checkoutservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("checkoutservice client: invalid response")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PayloadService одна услуга в составе checkout payload
type PayloadService struct {
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
}

// Payload плоский payload для передачи в checkout
// Оплата и подтверждение целиком на стороне checkout - сервису бронирования
// виден только успех или неуспех самой передачи
type Payload struct {
	TotalPrice   float64          `json:"totalPrice"`
	Date         string           `json:"date"` // YYYY-MM-DD
	Time         string           `json:"time"` // HH:MM
	ListingID    int64            `json:"listingId"`
	Services     []PayloadService `json:"services"`
	EmployeeID   int64            `json:"employeeId"`
	EmployeeName string           `json:"employeeName"`
	Note         string           `json:"note"`
	BusinessName string           `json:"businessName"`
}

// Client клиент для работы с CheckoutService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CheckoutService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// StartCheckout передает собранное бронирование в checkout
func (c *Client) StartCheckout(ctx context.Context, payload *Payload) error {
	url := c.baseURL + "/internal/checkout"

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnprocessableEntity:
		return ErrCheckoutRejected
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
