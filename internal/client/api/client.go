// Package api реализует HTTP клиент лабораторного сервера.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vulnlab/accesslab/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
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

// SetToken устанавливает bearer токен для последующих запросов.
// Токен уходит как есть: клиент его не разбирает и не проверяет.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GetUser получает запись пользователя по id. Сервер не сверяет id с
// identity вызывающего — любой валидный токен открывает любую запись.
func (c *Client) GetUser(ctx context.Context, id int64) (*api.User, error) {
	var resp api.User
	url := fmt.Sprintf("/api/v1/users/%d", id)
	err := c.doRequest(ctx, "GET", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// ListUsers получает полный список пользователей
func (c *Client) ListUsers(ctx context.Context) ([]api.User, error) {
	var resp []api.User
	err := c.doRequest(ctx, "GET", "/api/v1/users", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	return resp, nil
}

// UpdateProfile частично обновляет профиль пользователя id
func (c *Client) UpdateProfile(ctx context.Context, id int64, req api.UpdateProfileRequest) (*api.User, error) {
	var resp api.User
	url := fmt.Sprintf("/api/v1/users/%d/profile", id)
	err := c.doRequest(ctx, "PATCH", url, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// DeleteUser удаляет запись пользователя id
func (c *Client) DeleteUser(ctx context.Context, id int64) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	url := fmt.Sprintf("/api/v1/users/%d", id)
	err := c.doRequest(ctx, "DELETE", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("delete user request failed: %w", err)
	}
	return &resp, nil
}

// ChangeRole назначает пользователю id новую роль
func (c *Client) ChangeRole(ctx context.Context, id int64, role string) (*api.ChangeRoleResponse, error) {
	var resp api.ChangeRoleResponse
	url := fmt.Sprintf("/api/v1/users/%d/role", id)
	err := c.doRequest(ctx, "PUT", url, api.ChangeRoleRequest{Role: role}, &resp)
	if err != nil {
		return nil, fmt.Errorf("change role request failed: %w", err)
	}
	return &resp, nil
}

// SystemInfo получает конфигурацию сервера, включая signing secret
func (c *Client) SystemInfo(ctx context.Context) (*api.SystemInfoResponse, error) {
	var resp api.SystemInfoResponse
	err := c.doRequest(ctx, "GET", "/api/v1/system/info", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("system info request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	err := c.doRequest(ctx, "GET", "/api/v1/health", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// ResetDatabase возвращает сервер к исходному набору данных (debug)
func (c *Client) ResetDatabase(ctx context.Context) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.doRequest(ctx, "POST", "/api/v1/debug/reset", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("reset request failed: %w", err)
	}
	return &resp, nil
}

// ForgeToken просит сервер выпустить токен с произвольными claims (debug)
func (c *Client) ForgeToken(ctx context.Context, req api.ForgeTokenRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/debug/token", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("forge token request failed: %w", err)
	}
	return &resp, nil
}

// Audit получает след операций сервера (debug)
func (c *Client) Audit(ctx context.Context) (*api.AuditResponse, error) {
	var resp api.AuditResponse
	err := c.doRequest(ctx, "GET", "/api/v1/debug/audit", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("audit request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
