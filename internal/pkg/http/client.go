package http

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/requestcontext"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
	// RequestIDHeader carries the caller's request id downstream
	RequestIDHeader = "X-Request-ID"
)

// APIKeyClient is a resty client that authenticates with an API key
type APIKeyClient struct {
	client      *resty.Client
	apiKey      string
	serviceName string
}

// NewAPIKeyClient creates a client for baseURL. Retries are left to the
// caller's circuit breaker.
func NewAPIKeyClient(apiKey, serviceName, baseURL string, timeout time.Duration) *APIKeyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader(APIKeyHeader, apiKey)
	}

	return &APIKeyClient{
		client:      client,
		apiKey:      apiKey,
		serviceName: serviceName,
	}
}

// PostJSON posts body as JSON and decodes a successful response into result
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		req.SetHeader(RequestIDHeader, requestID)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", "POST"),
		logger.String("endpoint", endpoint),
		logger.String("service", c.serviceName),
		logger.Bool("has_api_key", c.apiKey != ""))

	resp, err := req.Post(endpoint)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("endpoint", endpoint),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return &HTTPError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	logger.Debug("HTTP request completed",
		logger.String("endpoint", endpoint),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode()),
		logger.Duration("latency", resp.Time()))
	return nil
}

// HTTPError is a non-2xx response from a downstream service
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP error: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Message)
}
