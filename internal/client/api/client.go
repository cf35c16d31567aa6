package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет операции proxy API, используемые клиентом
type ClientAPI interface {
	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)

	// UpdateStock отправляет одну корректировку остатка.
	// Ошибка возвращается только если запрос не завершился (сеть);
	// любой HTTP ответ, включая 4xx/5xx, возвращается как UpdateResult.
	UpdateStock(ctx context.Context, token string, payload json.RawMessage) (*UpdateResult, error)

	// LaunchShipment отправляет одну заявку на отгрузку.
	// Как и UpdateStock, возвращает ошибку только при отсутствии HTTP ответа.
	LaunchShipment(ctx context.Context, token string, kind models.ShipmentKind, payload json.RawMessage) (*ShipmentResult, error)

	// GetProducts получает список товаров с остатками
	GetProducts(ctx context.Context, token string) ([]models.Product, error)

	// Ping проверяет доступность сервера: любой HTTP ответ означает online
	Ping(ctx context.Context) error
}

// Endpoints содержит полные URL endpoints proxy API
type Endpoints struct {
	Login            string
	UpdateStock      string
	Products         string
	ShipmentFactory  string
	ShipmentWarranty string
}

// Shipment возвращает URL запуска отгрузки указанного типа
func (e Endpoints) Shipment(kind models.ShipmentKind) (string, error) {
	switch kind {
	case models.ShipmentFactory:
		return e.ShipmentFactory, nil
	case models.ShipmentWarranty:
		return e.ShipmentWarranty, nil
	default:
		return "", fmt.Errorf("unknown shipment type %q", kind)
	}
}

// UpdateResult содержит результат отправки корректировки
type UpdateResult struct {
	Response   *api.StockUpdateResponse // разобранное тело ответа (nil, если не JSON)
	Message    string                   // сообщение об ошибке сервера для non-2xx
	StatusCode int                      // HTTP статус
}

// OK сообщает, что сервер принял корректировку (2xx)
func (r *UpdateResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ShipmentResult содержит результат отправки заявки на отгрузку
type ShipmentResult struct {
	Response   *api.ShipmentResponse // разобранное тело ответа (nil, если не JSON)
	Message    string                // сообщение об ошибке сервера для non-2xx
	StatusCode int                   // HTTP статус
}

// OK сообщает, что сервер принял заявку (2xx)
func (r *ShipmentResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ErrNetwork помечает ошибки, при которых запрос не получил HTTP ответа
var ErrNetwork = errors.New("network error")

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с proxy API
type Client struct {
	httpClient *http.Client
	endpoints  Endpoints
}

// NewClient создает новый API клиент
func NewClient(endpoints Endpoints, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// HTTPClient возвращает нижележащий *http.Client (используется кешем ассетов)
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, http.MethodPost, c.endpoints.Login, "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if resp.Status != api.StatusSuccess {
		return nil, fmt.Errorf("login rejected: %s", resp.Message)
	}
	return &resp, nil
}

// UpdateStock отправляет payload корректировки как есть
func (c *Client) UpdateStock(ctx context.Context, token string, payload json.RawMessage) (*UpdateResult, error) {
	status, body, err := c.send(ctx, http.MethodPost, c.endpoints.UpdateStock, token, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("update stock request failed: %w", err)
	}

	result := &UpdateResult{StatusCode: status}

	var resp api.StockUpdateResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		result.Response = &resp
	}

	if !result.OK() {
		result.Message = errorMessage(status, body)
	}

	return result, nil
}

// LaunchShipment отправляет payload заявки на endpoint ее типа
func (c *Client) LaunchShipment(ctx context.Context, token string, kind models.ShipmentKind, payload json.RawMessage) (*ShipmentResult, error) {
	url, err := c.endpoints.Shipment(kind)
	if err != nil {
		return nil, err
	}

	status, body, err := c.send(ctx, http.MethodPost, url, token, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("launch shipment request failed: %w", err)
	}

	result := &ShipmentResult{StatusCode: status}

	var resp api.ShipmentResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		result.Response = &resp
	}

	if !result.OK() {
		result.Message = errorMessage(status, body)
	}

	return result, nil
}

// GetProducts получает список товаров с остатками
func (c *Client) GetProducts(ctx context.Context, token string) ([]models.Product, error) {
	var resp api.ProductsResponse
	err := c.doRequest(ctx, http.MethodGet, c.endpoints.Products, token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get products request failed: %w", err)
	}
	return resp.Data, nil
}

// Ping выполняет HEAD запрос к update endpoint
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.send(ctx, http.MethodHead, c.endpoints.UpdateStock, "", nil)
	return err
}

// doRequest выполняет HTTP запрос с JSON телом и декодирует успешный ответ
func (c *Client) doRequest(ctx context.Context, method, url, token string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	status, respBody, err := c.send(ctx, method, url, token, bodyReader)
	if err != nil {
		return err
	}

	// Проверяем статус код
	if status < 200 || status >= 300 {
		return errors.New(errorMessage(status, respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// send выполняет запрос и возвращает статус и тело ответа.
// Ошибка означает, что HTTP ответ не был получен.
func (c *Client) send(ctx context.Context, method, url, token string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		// Статус уже получен - сервер ответил
		return resp.StatusCode, nil, nil
	}

	return resp.StatusCode, respBody, nil
}

// errorMessage формирует текст ошибки из ответа сервера
func errorMessage(status int, body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		if msg != "" {
			return fmt.Sprintf("server error (%d): %s", status, msg)
		}
	}
	return fmt.Sprintf("request failed with status %d: %s", status, string(body))
}
