package types

// SnowflakeConfig is the connection descriptor sent to the API server
type SnowflakeConfig struct {
	Account           string `json:"account"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	Database          string `json:"database"`
	Warehouse         string `json:"warehouse"`
	Schema            string `json:"schema"`
	Role              string `json:"role,omitempty"`
	ConnectionTimeout int    `json:"connection_timeout,omitempty"`
}

// ValidationRequest is the request body for POST /api/v1/validate.
// Exactly one of TableName and CustomSQLQuery must be set.
type ValidationRequest struct {
	SnowflakeConfig SnowflakeConfig `json:"snowflake_config"`
	TableName       string          `json:"table_name,omitempty"`
	CustomSQLQuery  string          `json:"custom_sql_query,omitempty"`
	ValidationRules string          `json:"validation_rules"`
	ScanName        string          `json:"scan_name,omitempty"`
}

// ValidationReport is the normalized scan result returned by the server
type ValidationReport struct {
	ScanID           string            `json:"scan_id"`
	Status           string            `json:"status"`
	ExitCode         int               `json:"exit_code"`
	DataQualityScore float64           `json:"data_quality_score"`
	PassedChecks     int               `json:"passed_checks"`
	FailedChecks     int               `json:"failed_checks"`
	WarningChecks    int               `json:"warning_checks"`
	ErroredChecks    int               `json:"errored_checks,omitempty"`
	TotalChecks      int               `json:"total_checks"`
	CheckResults     []CheckResult     `json:"check_results"`
	FailedRowsSample []FailedRowSample `json:"failed_rows_sample"`
	ExecutionTime    float64           `json:"execution_time_seconds"`
	Logs             string            `json:"logs,omitempty"`
}

// CheckResult is one normalized check outcome
type CheckResult struct {
	Name    string `json:"name"`
	Table   string `json:"table,omitempty"`
	Column  string `json:"column,omitempty"`
	Outcome string `json:"outcome"`
	Value   any    `json:"value"`
	Message string `json:"message,omitempty"`
}

// FailedRowSample is one offending row tagged with its check
type FailedRowSample struct {
	CheckName string         `json:"check_name"`
	Table     string         `json:"table,omitempty"`
	FailedRow map[string]any `json:"failed_row"`
}

// APIResponse represents a generic API response with typed data
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// HealthStatus is the response of GET /ping and GET /health/ready
type HealthStatus struct {
	Status     string `json:"status"`
	Service    string `json:"service,omitempty"`
	Version    string `json:"version,omitempty"`
	ScanRunner string `json:"scan_runner,omitempty"`
	Error      string `json:"error,omitempty"`
}
