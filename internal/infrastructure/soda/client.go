// Package soda talks to the external Soda scan runner and serializes access
// to it. The runner executes SodaCL checks against the warehouse; this
// package treats it as a black box reachable over HTTP.
package soda

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

// scanRequest is the wire request the runner accepts
type scanRequest struct {
	ScanID             string `json:"scan_id"`
	DataSourceName     string `json:"data_source_name"`
	ScanDefinitionName string `json:"scan_definition_name"`
	ConfigurationYAML  string `json:"configuration_yaml"`
	SodaCLYAML         string `json:"sodacl_yaml"`
}

// runnerError is the runner's error body on non-2xx responses
type runnerError struct {
	Error string `json:"error"`
}

// Client is the HTTP adapter to the Soda scan runner. It implements
// domain.ScanEngine. Each Evaluate call is a fresh request; no scan state is
// shared between calls.
type Client struct {
	client         *client.Client
	baseURL        string
	dataSourceName string
	logger         *slog.Logger
}

// NewClient creates a scan runner client
func NewClient(baseURL string, timeout time.Duration, dataSourceName string, logger *slog.Logger) (*Client, error) {
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithClientReadTimeout(timeout),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner client: %w", err)
	}

	logger.Info("scan runner client created", "base_url", baseURL, "timeout", timeout)

	return &Client{
		client:         c,
		baseURL:        baseURL,
		dataSourceName: dataSourceName,
		logger:         logger,
	}, nil
}

// Evaluate runs one scan on the runner and decodes its results. Transport
// and runner failures surface as engine errors with the runner's message
// preserved; an undecodable success body is a normalization error because it
// means the runner broke its result contract.
func (c *Client) Evaluate(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error) {
	body, err := sonic.Marshal(scanRequest{
		ScanID:             scanID,
		DataSourceName:     c.dataSourceName,
		ScanDefinitionName: scanID,
		ConfigurationYAML:  dataSourceYAML,
		SodaCLYAML:         checksYAML,
	})
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to marshal scan request: %w", err))
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.baseURL + "/scan")
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	c.logger.Debug("submitting scan to runner", "scan_id", scanID)

	if err := c.client.Do(ctx, req, resp); err != nil {
		// Deadline expiry belongs to the gate's timeout accounting,
		// not the engine error bucket
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewEngineError("scan runner unreachable", err)
	}

	if resp.StatusCode() != consts.StatusOK {
		msg := runnerMessage(resp.Body())
		return nil, domain.NewEngineError(
			fmt.Sprintf("scan runner returned HTTP %d: %s", resp.StatusCode(), msg), nil)
	}

	var results entity.ScanResults
	if err := sonic.Unmarshal(resp.Body(), &results); err != nil {
		return nil, domain.NewNormalizationError("scan runner returned an unparseable result", err)
	}

	return &results, nil
}

// HealthCheck pings the runner's health endpoint
func (c *Client) HealthCheck(ctx context.Context) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.baseURL + "/health")

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("scan runner unreachable: %w", err)
	}
	if resp.StatusCode() != consts.StatusOK {
		return fmt.Errorf("scan runner unhealthy (HTTP %d)", resp.StatusCode())
	}
	return nil
}

// runnerMessage extracts the runner's error message, falling back to the
// raw body
func runnerMessage(body []byte) string {
	var re runnerError
	if err := sonic.Unmarshal(body, &re); err == nil && re.Error != "" {
		return re.Error
	}
	return string(body)
}
