package entity

// ScanStatus is the overall outcome of a validation scan
type ScanStatus string

const (
	StatusPassed             ScanStatus = "passed"
	StatusPassedWithWarnings ScanStatus = "passed_with_warnings"
	StatusFailed             ScanStatus = "failed"
)

// ValidationReport is the stable result of one validation scan. It is
// request-scoped, nothing is persisted.
type ValidationReport struct {
	ScanID           string
	Status           ScanStatus
	ExitCode         int
	DataQualityScore float64
	PassedChecks     int
	FailedChecks     int
	WarningChecks    int
	ErroredChecks    int
	TotalChecks      int
	CheckResults     []CheckResult
	FailedRowsSample []FailedRowSample
	ExecutionTime    float64
	Logs             string
}

// CheckResult is one normalized check outcome
type CheckResult struct {
	Name    string
	Table   string
	Column  string
	Outcome CheckOutcome
	Value   any
	Message string
}

// FailedRowSample is one offending row tagged with the check that flagged it
type FailedRowSample struct {
	CheckName string
	Table     string
	FailedRow map[string]any
}
