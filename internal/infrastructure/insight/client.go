package insight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/foodlens/backend/internal/domain"
)

// Config configures the chat completion backend.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client analyzes free-text health issues and goals with a chat model.
type Client struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	logger     *zap.Logger
	maxRetries int
	baseDelay  time.Duration
}

// NewClient creates a client. APIKey and Model are required.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" || cfg.Model == "" {
		return nil, fmt.Errorf("insights api key and model are required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	client := openai.NewClient(opts...)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:     &client,
		model:      cfg.Model,
		timeout:    timeout,
		logger:     logger,
		maxRetries: 3,
		baseDelay:  time.Second,
	}, nil
}

// AnalyzeCustom asks the model how the product relates to each free-text
// entry. Failures wrap domain.ErrInsightsUnavailable.
func (c *Client) AnalyzeCustom(
	ctx context.Context,
	product *domain.Product,
	customIssues, customGoals []string,
) (*domain.CustomInsights, error) {
	if len(customIssues) == 0 && len(customGoals) == 0 {
		return &domain.CustomInsights{Concerns: []domain.Finding{}, Benefits: []domain.Finding{}}, nil
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(buildUserPrompt(product, customIssues, customGoals)),
	}

	response, err := c.complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInsightsUnavailable, err)
	}

	insights, err := parseInsights(response)
	if err != nil {
		c.logger.Error("failed to parse insights response",
			zap.Error(err),
			zap.String("response", response),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrInsightsUnavailable, err)
	}

	c.logger.Info("custom insights generated",
		zap.String("barcode", product.Code),
		zap.Int("concerns", len(insights.Concerns)),
		zap.Int("benefits", len(insights.Benefits)),
	)
	return insights, nil
}

// complete sends the chat request with retry and exponential backoff.
func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay * time.Duration(1<<uint(attempt-1))
			c.logger.Info("retrying insights request",
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		content, err := c.completeOnce(ctx, messages)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if !isRetryable(ctx, err) {
			c.logger.Error("non-retryable insights error", zap.Error(err), zap.Int("attempt", attempt+1))
			break
		}
		c.logger.Warn("insights request failed, will retry", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return "", lastErr
}

func (c *Client) completeOnce(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("empty content in response")
	}

	c.logger.Debug("insights token usage",
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("request_time", time.Since(start)),
	)
	return content, nil
}

// isRetryable rejects cancellation and client errors other than 408 and 429.
func isRetryable(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return true
		}
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
