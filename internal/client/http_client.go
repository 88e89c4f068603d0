package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/models"
)

// HTTPClient клиент HTTP API калькулятора
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient создает клиента для сервиса по адресу baseURL
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Close нужен для совместимости с интерфейсом Calculator
func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// Calculate отправляет запрос POST /api/calculate
func (c *HTTPClient) Calculate(ctx context.Context, req models.CalculateRequest) (float64, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("error encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/calculate", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	var calcResp models.CalculateResponse
	if err := json.NewDecoder(resp.Body).Decode(&calcResp); err != nil {
		return 0, fmt.Errorf("error decoding response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode == http.StatusOK && calcResp.Result != nil {
		return *calcResp.Result, nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		if calcErr := calculate.FromMessage(calcResp.Error); calcErr != nil {
			return 0, calcErr
		}
	}

	return 0, fmt.Errorf("calculation failed (status %d): %s", resp.StatusCode, calcResp.Error)
}
