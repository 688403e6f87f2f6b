package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lvyanru/soda-apiserver/internal/config"
	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
	"github.com/lvyanru/soda-apiserver/internal/sodacl"
)

// defaultScanName is used when the request does not name the scan
const defaultScanName = "api_validation"

// ValidationUsecase defines the interface for validation scan orchestration
type ValidationUsecase interface {
	Validate(ctx context.Context, req *domain.ValidationRequest) (*entity.ValidationReport, error)
}

type validationUsecase struct {
	gate           domain.ScanGate
	cfg            config.ValidationConfig
	dataSourceName string
	// admit bounds validations in flight before they queue on the gate
	admit  chan struct{}
	logger *slog.Logger
}

// NewValidationUsecase creates a new validation usecase
func NewValidationUsecase(gate domain.ScanGate, cfg config.ValidationConfig, dataSourceName string, logger *slog.Logger) ValidationUsecase {
	return &validationUsecase{
		gate:           gate,
		cfg:            cfg,
		dataSourceName: dataSourceName,
		admit:          make(chan struct{}, cfg.MaxWorkers),
		logger:         logger,
	}
}

// Validate runs one validation scan end to end: assign a scan id, compose
// the engine specs, execute under the gate, normalize the results. Failures
// surface as tagged domain errors and are never retried here; a failed scan
// re-run without caller awareness could mask persistent quality problems.
func (u *validationUsecase) Validate(ctx context.Context, req *domain.ValidationRequest) (*entity.ValidationReport, error) {
	scanID := uuid.New().String()
	logger := u.logger.With("scan_id", scanID)

	if err := validateRequest(req); err != nil {
		logger.Warn("rejected validation request", "error", err)
		return nil, err
	}

	scanName := req.ScanName
	if scanName == "" {
		scanName = defaultScanName
	}

	connCfg := req.SnowflakeConfig
	if connCfg.ConnectionTimeout <= 0 {
		connCfg.ConnectionTimeout = u.cfg.DefaultConnectionTimeout
	}

	dataSourceYAML := sodacl.BuildDataSourceYAML(&connCfg, u.dataSourceName)
	checksYAML, err := sodacl.BuildChecksYAML(req.TableName, req.CustomSQLQuery, req.ValidationRules)
	if err != nil {
		logger.Warn("rejected validation request", "error", err)
		return nil, domain.NewInvalidInputError(err.Error())
	}

	logger.Info("starting validation scan",
		"scan_name", scanName,
		"table", req.TableName,
		"has_custom_query", req.CustomSQLQuery != "",
	)

	select {
	case u.admit <- struct{}{}:
		defer func() { <-u.admit }()
	case <-ctx.Done():
		return nil, domain.NewScanTimeoutError("request canceled before the scan was admitted")
	}

	// The timestamps bracket the gate call so queueing time counts toward
	// the reported execution time, request handling does not
	start := time.Now()
	raw, err := u.gate.RunExclusive(ctx, scanID, dataSourceYAML, checksYAML)
	end := time.Now()
	if err != nil {
		logger.Error("validation scan failed", "error", err, "elapsed", end.Sub(start).String())
		return nil, err
	}

	report, err := buildReport(scanID, raw, u.cfg.MaxFailedRows, start, end)
	if err != nil {
		logger.Error("failed to normalize scan results", "error", err)
		return nil, err
	}

	// Summary line is detached from the request path, matching the
	// response-first logging of the original service
	go logSummary(logger, report)

	return report, nil
}

// validateRequest checks the structural invariants that must hold before
// the engine is ever involved
func validateRequest(req *domain.ValidationRequest) error {
	if req == nil {
		return domain.NewInvalidInputError("request body is required")
	}

	if req.TableName == "" && req.CustomSQLQuery == "" {
		return domain.NewInvalidInputError("either custom_sql_query or table_name must be provided")
	}
	if req.TableName != "" && req.CustomSQLQuery != "" {
		return domain.NewInvalidInputError("custom_sql_query and table_name are mutually exclusive")
	}
	if req.ValidationRules == "" {
		return domain.NewInvalidInputError("validation_rules is required")
	}

	cfg := &req.SnowflakeConfig
	required := []struct {
		value string
		field string
	}{
		{cfg.Account, "snowflake_config.account"},
		{cfg.Username, "snowflake_config.username"},
		{cfg.Password, "snowflake_config.password"},
		{cfg.Database, "snowflake_config.database"},
		{cfg.Warehouse, "snowflake_config.warehouse"},
		{cfg.Schema, "snowflake_config.schema"},
	}
	for _, r := range required {
		if r.value == "" {
			return domain.NewInvalidInputError(fmt.Sprintf("%s is required", r.field))
		}
	}

	return nil
}

func logSummary(logger *slog.Logger, report *entity.ValidationReport) {
	logger.Info("validation scan completed",
		"status", string(report.Status),
		"quality_score", fmt.Sprintf("%.2f", report.DataQualityScore),
		"passed", report.PassedChecks,
		"failed", report.FailedChecks,
		"warnings", report.WarningChecks,
		"errored", report.ErroredChecks,
		"duration_seconds", fmt.Sprintf("%.2f", report.ExecutionTime),
	)
}
