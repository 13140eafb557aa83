package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с CatalogService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfile получает витринную карточку ресурса
func (c *Client) GetProfile(ctx context.Context, resourceID int64) (*Profile, error) {
	url := fmt.Sprintf("%s/internal/resources/%d/profile", c.baseURL, resourceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid resource ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetProfileWithGracefulDegradation получает витринную карточку ресурса с graceful degradation
// При недоступности CatalogService возвращает ErrServiceDegraded, что позволяет
// использовать технические имена ресурсов вместо витринных
func (c *Client) GetProfileWithGracefulDegradation(ctx context.Context, resourceID int64) (*Profile, error) {
	c.log.Info("Fetching catalog profile for resource_id=%d", resourceID)

	profile, err := c.GetProfile(ctx, resourceID)
	if err != nil {
		// Если карточки просто нет, пробрасываем ошибку дальше
		if err == ErrProfileNotFound {
			c.log.Info("No catalog profile found for resource_id=%d", resourceID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("CatalogService unavailable, applying graceful degradation for resource_id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: resource_id=%d, error=%v", ErrServiceDegraded, resourceID, err)
	}

	c.log.Info("Successfully fetched profile for resource_id=%d, display_name=%s", resourceID, profile.DisplayName)
	return profile, nil
}
