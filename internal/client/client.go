package client

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// Defaults mirror the server's own rate-limit configuration.
	defaultRateLimit = 20
	defaultBurst     = 5
	maxRetries       = 3
)

// ClientInterface defines the interface for the journal API client.
type ClientInterface interface {
	Health() error
	ListTrades(c models.Collection) ([]models.TradeRecord, error)
	AddTrade(form models.TradeForm, c models.Collection) (*models.TradeRecord, error)
	UpdateTrade(id int, form models.TradeForm, c models.Collection) error
	DeleteTrade(id int, c models.Collection) error
	ClearTrades(c models.Collection) error
	GetStats(c models.Collection) (*journal.Summary, error)
	GetDailyTarget() (float64, error)
	SetDailyTarget(v float64) error
}

// Client is a client for the journal API server. It implements
// ClientInterface.
type Client struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

// NewClient creates a journal API client for the server at baseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		client:  resty.New().SetBaseURL(baseURL),
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}
}

func collectionPath(c models.Collection) string {
	return "/api/collections/" + string(c)
}

// doRequest handles the actual request execution with rate limiting and
// retry logic. Retries apply to 429s and server errors with exponential
// backoff; everything else fails immediately.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error

	for i := 0; i < maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil // Success
		}

		shouldRetry := false
		var retryAfter time.Duration

		if resp != nil && resp.StatusCode() != 0 {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests {
				shouldRetry = true
				if seconds, err := strconv.Atoi(resp.Header().Get("Retry-After")); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
		} else { // Network or other client-side errors
			shouldRetry = true
		}

		if !shouldRetry {
			return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
		}

		if retryAfter == 0 {
			// Exponential backoff: 1s, 2s, 4s
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
}

// Health checks connectivity to the journal server.
func (c *Client) Health() error {
	req := c.client.R()
	if _, err := c.doRequest(context.Background(), "GET", "/health", req); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// ListTrades fetches every record of the named collection, in insertion
// order.
func (c *Client) ListTrades(col models.Collection) ([]models.TradeRecord, error) {
	var trades []models.TradeRecord
	req := c.client.R().SetResult(&trades)

	resp, err := c.doRequest(context.Background(), "GET", collectionPath(col)+"/trades", req)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	return *resp.Result().(*[]models.TradeRecord), nil
}

// AddTrade creates a record from form in the named collection and returns it
// with its assigned id.
func (c *Client) AddTrade(form models.TradeForm, col models.Collection) (*models.TradeRecord, error) {
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		SetResult(&models.TradeRecord{})

	resp, err := c.doRequest(context.Background(), "POST", collectionPath(col)+"/trades", req)
	if err != nil {
		c.logger.Error("Failed to add trade", zap.Error(err), zap.String("collection", string(col)))
		return nil, fmt.Errorf("failed to add trade: %w", err)
	}

	return resp.Result().(*models.TradeRecord), nil
}

// UpdateTrade replaces the fields of the record with the given id. A missing
// id is a no-op on the server, so this only fails on transport errors.
func (c *Client) UpdateTrade(id int, form models.TradeForm, col models.Collection) error {
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(form)

	url := fmt.Sprintf("%s/trades/%d", collectionPath(col), id)
	if _, err := c.doRequest(context.Background(), "PUT", url, req); err != nil {
		return fmt.Errorf("failed to update trade %d: %w", id, err)
	}
	return nil
}

// DeleteTrade removes the record with the given id.
func (c *Client) DeleteTrade(id int, col models.Collection) error {
	url := fmt.Sprintf("%s/trades/%d", collectionPath(col), id)
	if _, err := c.doRequest(context.Background(), "DELETE", url, c.client.R()); err != nil {
		return fmt.Errorf("failed to delete trade %d: %w", id, err)
	}
	return nil
}

// ClearTrades empties the named collection.
func (c *Client) ClearTrades(col models.Collection) error {
	url := collectionPath(col) + "/trades"
	if _, err := c.doRequest(context.Background(), "DELETE", url, c.client.R()); err != nil {
		return fmt.Errorf("failed to clear trades: %w", err)
	}
	return nil
}

// GetStats fetches the statistics summary of the named collection.
func (c *Client) GetStats(col models.Collection) (*journal.Summary, error) {
	req := c.client.R().SetResult(&journal.Summary{})

	resp, err := c.doRequest(context.Background(), "GET", collectionPath(col)+"/stats", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return resp.Result().(*journal.Summary), nil
}

type dailyTargetPayload struct {
	DailyTarget float64 `json:"dailyTarget"`
}

// GetDailyTarget fetches the shared daily profit target.
func (c *Client) GetDailyTarget() (float64, error) {
	req := c.client.R().SetResult(&dailyTargetPayload{})

	resp, err := c.doRequest(context.Background(), "GET", "/api/daily-target", req)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily target: %w", err)
	}

	return resp.Result().(*dailyTargetPayload).DailyTarget, nil
}

// SetDailyTarget replaces the shared daily profit target.
func (c *Client) SetDailyTarget(v float64) error {
	req := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(dailyTargetPayload{DailyTarget: v})

	if _, err := c.doRequest(context.Background(), "PUT", "/api/daily-target", req); err != nil {
		return fmt.Errorf("failed to set daily target: %w", err)
	}
	return nil
}
