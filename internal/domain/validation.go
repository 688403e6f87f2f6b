package domain

import (
	"context"

	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

// ValidationRequest is a request to run data quality checks against one
// Snowflake table or one free-form query. TableName and CustomSQLQuery are
// mutually exclusive and exactly one must be set.
type ValidationRequest struct {
	SnowflakeConfig entity.SnowflakeConfig
	TableName       string
	CustomSQLQuery  string
	ValidationRules string
	ScanName        string
}

// ScanEngine is the boundary to the external scan evaluation engine. An
// implementation executes the composed specs against the warehouse and
// returns per-check outcomes. Evaluate is synchronous and may block for the
// duration of warehouse I/O; it must honor context cancellation.
type ScanEngine interface {
	Evaluate(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error)
	HealthCheck(ctx context.Context) error
}

// ScanGate serializes engine invocations. RunExclusive admits exactly one
// caller at a time; everyone else queues until the holder's evaluation
// finishes or hits the scan deadline.
type ScanGate interface {
	RunExclusive(ctx context.Context, scanID, dataSourceYAML, checksYAML string) (*entity.ScanResults, error)
}
