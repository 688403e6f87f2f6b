package dto

import (
	"time"

	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

// SnowflakeConfigRequest is the connection descriptor part of a validation
// request
type SnowflakeConfigRequest struct {
	Account           string `json:"account" binding:"required"`
	Username          string `json:"username" binding:"required"`
	Password          string `json:"password" binding:"required"`
	Database          string `json:"database" binding:"required"`
	Warehouse         string `json:"warehouse" binding:"required"`
	Schema            string `json:"schema" binding:"required"`
	Role              string `json:"role,omitempty"`
	ConnectionTimeout int    `json:"connection_timeout,omitempty"`
}

// ValidationRequest is the HTTP request for running a validation scan.
// table_name and custom_sql_query are mutually exclusive and exactly one
// must be set.
type ValidationRequest struct {
	SnowflakeConfig SnowflakeConfigRequest `json:"snowflake_config" binding:"required"`
	CustomSQLQuery  string                 `json:"custom_sql_query,omitempty"`
	TableName       string                 `json:"table_name,omitempty"`
	ValidationRules string                 `json:"validation_rules" binding:"required"`
	ScanName        string                 `json:"scan_name,omitempty"`
}

// ValidationResponse is the HTTP response for a completed validation scan
type ValidationResponse struct {
	ScanID           string                    `json:"scan_id"`
	Status           string                    `json:"status"`
	ExitCode         int                       `json:"exit_code"`
	DataQualityScore float64                   `json:"data_quality_score"`
	PassedChecks     int                       `json:"passed_checks"`
	FailedChecks     int                       `json:"failed_checks"`
	WarningChecks    int                       `json:"warning_checks"`
	ErroredChecks    int                       `json:"errored_checks,omitempty"`
	TotalChecks      int                       `json:"total_checks"`
	CheckResults     []CheckResultResponse     `json:"check_results"`
	FailedRowsSample []FailedRowSampleResponse `json:"failed_rows_sample"`
	ExecutionTime    float64                   `json:"execution_time_seconds"`
	Logs             string                    `json:"logs,omitempty"`
}

// CheckResultResponse is one normalized check outcome
type CheckResultResponse struct {
	Name    string `json:"name"`
	Table   string `json:"table,omitempty"`
	Column  string `json:"column,omitempty"`
	Outcome string `json:"outcome"`
	Value   any    `json:"value"`
	Message string `json:"message,omitempty"`
}

// FailedRowSampleResponse is one offending row tagged with its check
type FailedRowSampleResponse struct {
	CheckName string         `json:"check_name"`
	Table     string         `json:"table,omitempty"`
	FailedRow map[string]any `json:"failed_row"`
}

// ToDomainRequest converts the HTTP request to the domain request
func (r *ValidationRequest) ToDomainRequest() *domain.ValidationRequest {
	return &domain.ValidationRequest{
		SnowflakeConfig: entity.SnowflakeConfig{
			Account:           r.SnowflakeConfig.Account,
			Username:          r.SnowflakeConfig.Username,
			Password:          r.SnowflakeConfig.Password,
			Database:          r.SnowflakeConfig.Database,
			Warehouse:         r.SnowflakeConfig.Warehouse,
			Schema:            r.SnowflakeConfig.Schema,
			Role:              r.SnowflakeConfig.Role,
			ConnectionTimeout: time.Duration(r.SnowflakeConfig.ConnectionTimeout) * time.Second,
		},
		CustomSQLQuery:  r.CustomSQLQuery,
		TableName:       r.TableName,
		ValidationRules: r.ValidationRules,
		ScanName:        r.ScanName,
	}
}

// ToValidationResponse converts a validation report to its HTTP response
func ToValidationResponse(report *entity.ValidationReport) *ValidationResponse {
	checkResults := make([]CheckResultResponse, 0, len(report.CheckResults))
	for _, cr := range report.CheckResults {
		checkResults = append(checkResults, CheckResultResponse{
			Name:    cr.Name,
			Table:   cr.Table,
			Column:  cr.Column,
			Outcome: string(cr.Outcome),
			Value:   cr.Value,
			Message: cr.Message,
		})
	}

	failedRows := make([]FailedRowSampleResponse, 0, len(report.FailedRowsSample))
	for _, fr := range report.FailedRowsSample {
		failedRows = append(failedRows, FailedRowSampleResponse{
			CheckName: fr.CheckName,
			Table:     fr.Table,
			FailedRow: fr.FailedRow,
		})
	}

	return &ValidationResponse{
		ScanID:           report.ScanID,
		Status:           string(report.Status),
		ExitCode:         report.ExitCode,
		DataQualityScore: report.DataQualityScore,
		PassedChecks:     report.PassedChecks,
		FailedChecks:     report.FailedChecks,
		WarningChecks:    report.WarningChecks,
		ErroredChecks:    report.ErroredChecks,
		TotalChecks:      report.TotalChecks,
		CheckResults:     checkResults,
		FailedRowsSample: failedRows,
		ExecutionTime:    report.ExecutionTime,
		Logs:             report.Logs,
	}
}
