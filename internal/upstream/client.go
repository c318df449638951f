package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/config"
	"github.com/spec-kit/warrior-admin-console/internal/observability"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

// Client talks to the platform REST API the console fronts. All authorization
// decisions live upstream; the client only forwards the stored access token.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *observability.Metrics
}

// New builds a client against the configured base URL.
func New(cfg config.UpstreamConfig, logger *zap.Logger, metrics *observability.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
		metrics: metrics,
	}
}

// envelope is the upstream response wrapper: { status: "success", data: ... }.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// errorBody is the upstream error wrapper.
type errorBody struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return util.NewInternalError(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return util.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(path, true)
		c.logger.Warn("upstream request failed", zap.String("path", path), zap.Error(err))
		return util.NewDomainError("UPSTREAM_UNREACHABLE", "upstream request failed", http.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstream(path, true)
		return util.NewInternalError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.RecordUpstream(path, true)
		var failure errorBody
		_ = json.Unmarshal(raw, &failure)
		c.logger.Warn("upstream rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", failure.Message))
		return util.NewUpstreamError(resp.StatusCode, failure.Message)
	}

	c.metrics.RecordUpstream(path, false)
	if out == nil {
		return nil
	}

	var wrapped envelope
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return util.NewInternalError(fmt.Errorf("decode upstream envelope: %w", err))
	}
	if len(wrapped.Data) == 0 {
		return util.NewInternalError(fmt.Errorf("upstream envelope missing data for %s", path))
	}
	if err := json.Unmarshal(wrapped.Data, out); err != nil {
		return util.NewInternalError(fmt.Errorf("decode upstream data: %w", err))
	}
	return nil
}
