//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/lvyanru/soda-apiserver/internal/config"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
	"github.com/lvyanru/soda-apiserver/internal/domain/mocks"
	"github.com/lvyanru/soda-apiserver/internal/handler"
	"github.com/lvyanru/soda-apiserver/internal/handler/dto"
	"github.com/lvyanru/soda-apiserver/internal/infrastructure/soda"
	"github.com/lvyanru/soda-apiserver/internal/router"
	"github.com/lvyanru/soda-apiserver/internal/usecase"
)

// TestValidateHTTP exercises the full HTTP pipeline end to end: handler
// binding, gate serialization, normalization and the response envelope.
// The scan runner is replaced with a mock so no Snowflake account or
// runner sidecar is required.
// Run with: make test-integration
func TestValidateHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	validationCfg := config.ValidationConfig{
		DefaultConnectionTimeout: 240 * time.Second,
		ScanDeadline:             30 * time.Second,
		MaxFailedRows:            50,
		MaxWorkers:               4,
	}

	engine := &mocks.MockScanEngine{
		EvaluateFunc: func(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error) {
			return &entity.ScanResults{
				ExitCode: 2,
				Checks: []entity.RawCheck{
					{
						Name:    "row_count > 0",
						Table:   "ORDERS",
						Outcome: entity.OutcomePass,
					},
					{
						Name:    "missing_count(ORDER_ID) = 0",
						Table:   "ORDERS",
						Column:  "ORDER_ID",
						Outcome: entity.OutcomeFail,
						Diagnostics: &entity.Diagnostics{
							Blocks: []entity.DiagnosticBlock{
								{FailedRows: []map[string]any{{"ORDER_ID": nil, "AMOUNT": 12.5}}},
							},
						},
					},
				},
			}, nil
		},
		HealthCheckFunc: func(ctx context.Context) error { return nil },
	}

	gate := soda.NewExecutionGate(engine, validationCfg.ScanDeadline, logger)
	validationUC := usecase.NewValidationUsecase(gate, validationCfg, "snowflake_api", logger)
	validationHandler := handler.NewValidationHandler(validationUC, logger)
	healthHandler := handler.NewHealthHandler(engine, "test")

	h := server.New(
		server.WithHostPorts("127.0.0.1:18000"),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, validationHandler, healthHandler)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()

	// Wait for the server to come up
	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := "http://127.0.0.1:18000"

	t.Run("table validation", func(t *testing.T) {
		reqBody := dto.ValidationRequest{
			SnowflakeConfig: snowflakeConfig(),
			TableName:       "ORDERS",
			ValidationRules: "- row_count > 0\n- missing_count(ORDER_ID) = 0",
		}

		var envelope struct {
			Code string                 `json:"code"`
			Data dto.ValidationResponse `json:"data"`
		}
		status := postJSON(t, baseURL+"/api/v1/validate", reqBody, &envelope)

		if status != http.StatusOK {
			t.Fatalf("expected status 200, got %d", status)
		}
		if envelope.Code != "SUCCESS" {
			t.Errorf("expected code SUCCESS, got %s", envelope.Code)
		}
		if envelope.Data.Status != "failed" {
			t.Errorf("expected scan status failed, got %s", envelope.Data.Status)
		}
		if envelope.Data.TotalChecks != 2 || envelope.Data.PassedChecks != 1 || envelope.Data.FailedChecks != 1 {
			t.Errorf("unexpected counts: total=%d passed=%d failed=%d",
				envelope.Data.TotalChecks, envelope.Data.PassedChecks, envelope.Data.FailedChecks)
		}
		if envelope.Data.DataQualityScore != 0.5 {
			t.Errorf("expected score 0.5, got %v", envelope.Data.DataQualityScore)
		}
		if len(envelope.Data.FailedRowsSample) != 1 {
			t.Errorf("expected 1 failed row sample, got %d", len(envelope.Data.FailedRowsSample))
		}
		if envelope.Data.ScanID == "" {
			t.Error("expected a scan id")
		}
	})

	t.Run("rejects table and query together", func(t *testing.T) {
		reqBody := dto.ValidationRequest{
			SnowflakeConfig: snowflakeConfig(),
			TableName:       "ORDERS",
			CustomSQLQuery:  "SELECT * FROM ORDERS",
			ValidationRules: "- row_count > 0",
		}

		var envelope struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		status := postJSON(t, baseURL+"/api/v1/validate", reqBody, &envelope)

		if status != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}
		if envelope.Code != "INVALID_INPUT" {
			t.Errorf("expected code INVALID_INPUT, got %s", envelope.Code)
		}
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		reqBody := dto.ValidationRequest{
			TableName:       "ORDERS",
			ValidationRules: "- row_count > 0",
		}

		var envelope struct {
			Code string `json:"code"`
		}
		status := postJSON(t, baseURL+"/api/v1/validate", reqBody, &envelope)

		if status != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", status)
		}
	})

	t.Run("readiness", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/health/ready")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("rule examples", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/api/v1/validation-rules-examples")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var envelope struct {
			Data map[string]string `json:"data"`
		}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &envelope); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(envelope.Data) == 0 {
			t.Error("expected at least one rule example")
		}
	})
}

func snowflakeConfig() dto.SnowflakeConfigRequest {
	return dto.SnowflakeConfigRequest{
		Account:   "xy12345.eu-west-1",
		Username:  "VALIDATOR",
		Password:  "secret",
		Database:  "ANALYTICS",
		Warehouse: "COMPUTE_WH",
		Schema:    "PUBLIC",
	}
}

func postJSON(t *testing.T, url string, reqBody any, out any) int {
	t.Helper()

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("failed to decode response %s: %v", string(body), err)
	}

	return resp.StatusCode
}
