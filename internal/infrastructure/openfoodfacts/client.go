package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/foodlens/backend/internal/domain"
)

const (
	maxAttempts     = 3
	maxErrorBodyLen = 1024
	maxBodyLen      = 4 << 20
	defaultBackoff  = 500 * time.Millisecond
	defaultTimeout  = 15 * time.Second
	defaultRPM      = 100
)

// Config configures the Open Food Facts client.
type Config struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerMinute int
}

// Client fetches product records from the Open Food Facts API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	backoff     time.Duration
	logger      *zap.Logger
}

// NewClient creates a rate-limited client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRPM
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5),
		backoff:     defaultBackoff,
		logger:      logger,
	}
}

// productResponse is the envelope of GET /api/v2/product/{barcode}.json.
type productResponse struct {
	Code          string     `json:"code"`
	Status        int        `json:"status"`
	StatusVerbose string     `json:"status_verbose"`
	Product       offProduct `json:"product"`
}

// GetProduct looks up a product by barcode. It returns domain.ErrProductNotFound
// when the database has no record and wraps domain.ErrUpstreamFailure when
// the API keeps failing.
func (c *Client) GetProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, exponentialBackoff(c.backoff, attempt-1)); err != nil {
				return nil, err
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		product, retry, err := c.fetch(ctx, reqURL)
		if err == nil {
			c.logger.Debug("product fetched",
				zap.String("barcode", barcode),
				zap.Int("attempt", attempt),
			)
			return product, nil
		}
		if !retry {
			return nil, err
		}

		c.logger.Warn("product request failed",
			zap.String("barcode", barcode),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		lastErr = err
	}

	return nil, lastErr
}

// fetch performs one request. retry reports whether the failure is transient.
func (c *Client) fetch(ctx context.Context, reqURL string) (product *domain.Product, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, domain.ErrProductNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		body, _ := readLimitedBody(resp.Body, maxErrorBodyLen)
		return nil, true, fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, body)
	case resp.StatusCode != http.StatusOK:
		body, _ := readLimitedBody(resp.Body, maxErrorBodyLen)
		return nil, false, fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, body)
	}

	body, err := readLimitedBody(resp.Body, maxBodyLen)
	if err != nil {
		return nil, true, fmt.Errorf("%w: read body: %v", domain.ErrUpstreamFailure, err)
	}

	var envelope productResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false, fmt.Errorf("%w: failed to decode response: %v", domain.ErrUpstreamFailure, err)
	}
	if envelope.Status != 1 {
		return nil, false, domain.ErrProductNotFound
	}

	if envelope.Product.Code == "" {
		envelope.Product.Code = envelope.Code
	}
	return mapProduct(&envelope.Product), false, nil
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// exponentialBackoff returns base, 2*base, 4*base... for retry 1, 2, 3...
func exponentialBackoff(base time.Duration, retry int) time.Duration {
	if retry < 1 {
		return 0
	}
	return base * time.Duration(1<<(retry-1))
}

func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil && !errors.Is(err, io.EOF) {
		return body, err
	}
	return body, nil
}
