package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/soda-apiserver/internal/cli/types"
)

// APIClient wraps Hertz Client for HTTP communication with the API server
type APIClient struct {
	client *client.Client
	server string
}

// APIError is a non-2xx response decoded from the server envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with HTTP status %d", e.StatusCode)
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	// Scans can legitimately run for minutes, so the per-request bound
	// comes from the caller's context, not the client
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Validate submits a validation scan and waits for its report
func (c *APIClient) Validate(ctx context.Context, request *types.ValidationRequest) (*types.ValidationReport, error) {
	bodyBytes, err := sonic.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.server + endpointValidate)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, decodeAPIError(resp.StatusCode(), resp.Body())
	}

	var envelope types.APIResponse[types.ValidationReport]
	if err := sonic.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &envelope.Data, nil
}

// RuleExamples fetches the example SodaCL rule snippets
func (c *APIClient) RuleExamples(ctx context.Context) (map[string]string, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointRuleExamples)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, decodeAPIError(resp.StatusCode(), resp.Body())
	}

	var envelope types.APIResponse[map[string]string]
	if err := sonic.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return envelope.Data, nil
}

// Ping checks the API server itself
func (c *APIClient) Ping(ctx context.Context) (*types.HealthStatus, error) {
	return c.getHealth(ctx, endpointPing)
}

// Readiness checks whether the server can reach its scan runner
func (c *APIClient) Readiness(ctx context.Context) (*types.HealthStatus, error) {
	return c.getHealth(ctx, endpointReady)
}

func (c *APIClient) getHealth(ctx context.Context, endpoint string) (*types.HealthStatus, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpoint)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	var status types.HealthStatus
	if err := sonic.Unmarshal(resp.Body(), &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.StatusCode() != 200 {
		if status.Error != "" {
			return &status, fmt.Errorf("server not ready: %s", status.Error)
		}
		return &status, fmt.Errorf("health check failed with HTTP status %d", resp.StatusCode())
	}

	return &status, nil
}

// decodeAPIError turns a non-2xx body into an APIError, falling back to the
// raw body when the envelope cannot be parsed
func decodeAPIError(statusCode int, body []byte) error {
	var envelope types.APIResponse[any]
	if err := sonic.Unmarshal(body, &envelope); err != nil || envelope.Code == "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    string(body),
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Code:       envelope.Code,
		Message:    envelope.Message,
	}
}
