package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
	"github.com/sirupsen/logrus"
)

// Client talks to the catalog/search backend. It deliberately carries no
// retry policy and no client-side timeout; requests ride on the caller's
// context only.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ListProducts fetches the full catalog. Any transport or non-2xx failure
// collapses to an empty list so the grid can still render; the error is
// returned alongside for callers that want to surface the reason.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.makeRequest(ctx, http.MethodGet, "/products/", nil, &products); err != nil {
		c.logger.WithError(err).Error("Failed to fetch product catalog")
		return []models.Product{}, err
	}
	return products, nil
}

// SubmitQuery sends one conversational search turn. The query must already be
// trimmed and non-empty; sessionID is empty on the first turn. On any failure
// the response is nil and the caller shows a generic error.
func (c *Client) SubmitQuery(ctx context.Context, query, sessionID string) (*models.SearchResponse, error) {
	payload := models.SearchQuery{
		Query:     query,
		SessionID: sessionID,
	}

	var response models.SearchResponse
	if err := c.makeRequest(ctx, http.MethodPost, "/search/", payload, &response); err != nil {
		c.logger.WithFields(logrus.Fields{
			"query":      query,
			"session_id": sessionID,
		}).WithError(err).Error("Search request failed")
		return nil, err
	}
	return &response, nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload interface{}, result interface{}) error {
	url := c.baseURL + endpoint

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    url,
	}).Debug("Making backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"method":        method,
		"url":           url,
		"response_size": len(responseBody),
	}).Debug("Backend response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend request failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	if result != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
