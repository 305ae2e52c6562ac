package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"shipyard/internal/domain/vessel"
)

// ResourcePath - базовый путь коллекции на сервере
const ResourcePath = "/api/embarcaciones"

// ErrServer - сервер ответил статусом вне 2xx. 4xx и 5xx не различаются.
var ErrServer = errors.New("server error")

// StatusError несёт код ответа и текст ошибки сервера
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error: status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server error: status %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrServer
}

// HTTPClient - REST клиент коллекции /api/embarcaciones
type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

// NewHTTPClient создаёт клиент; timeout == 0 оставляет таймаут транспорта по умолчанию
func NewHTTPClient(baseURL string, timeout time.Duration, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &HTTPClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   baseURL,
		userAgent: "Shipyard-Client/1.0",
	}
}

// HealthCheck проверяет доступность сервера
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

// List запрашивает всю коллекцию
func (h *HTTPClient) List(ctx context.Context) ([]vessel.Vessel, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, ResourcePath, nil)
	if err != nil {
		return nil, err
	}

	var vessels []vessel.Vessel
	if err := h.parseResponse(resp, &vessels); err != nil {
		return nil, err
	}
	if vessels == nil {
		vessels = []vessel.Vessel{}
	}
	return vessels, nil
}

// Create отправляет новую запись; id назначает сервер
func (h *HTTPClient) Create(ctx context.Context, in vessel.Input) (*vessel.Vessel, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, ResourcePath, in)
	if err != nil {
		return nil, err
	}

	var created vessel.Vessel
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update заменяет поля записи id
func (h *HTTPClient) Update(ctx context.Context, id int, in vessel.Input) (*vessel.Vessel, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, itemPath(id), in)
	if err != nil {
		return nil, err
	}

	var updated vessel.Vessel
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete удаляет запись; тело ответа не требуется
func (h *HTTPClient) Delete(ctx context.Context, id int) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, itemPath(id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func itemPath(id int) string {
	return ResourcePath + "/" + strconv.Itoa(id)
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
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

func (h *HTTPClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"request_id", resp.Header.Get("X-Request-ID"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: errorMessage(body)}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// errorMessage достаёт текст из problem+json ответа или из {"error": "..."}
func errorMessage(body []byte) string {
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &problem); err != nil {
		return ""
	}
	switch {
	case problem.Detail != "":
		return problem.Detail
	case problem.Error != "":
		return problem.Error
	default:
		return problem.Title
	}
}
