package entity

import "time"

// SnowflakeConfig is the warehouse connection descriptor supplied by the
// caller. Optional fields are defaulted by the sodacl builder, not here.
type SnowflakeConfig struct {
	Account           string
	Username          string
	Password          string
	Database          string
	Warehouse         string
	Schema            string
	Role              string
	ConnectionTimeout time.Duration
}

// CheckOutcome tags a single check result. The engine's output is loosely
// structured; anything outside the three known tags is kept verbatim and
// classified as errored during normalization.
type CheckOutcome string

const (
	OutcomePass CheckOutcome = "pass"
	OutcomeFail CheckOutcome = "fail"
	OutcomeWarn CheckOutcome = "warn"
)

// Known reports whether the outcome is one of pass/fail/warn
func (o CheckOutcome) Known() bool {
	switch o {
	case OutcomePass, OutcomeFail, OutcomeWarn:
		return true
	}
	return false
}

// ScanResults is the raw result shape returned by the scan engine, mirroring
// Soda's get_scan_results payload. It is treated as opaque input to the
// normalizer and never exposed upward.
type ScanResults struct {
	ExitCode int        `json:"exitCode"`
	Checks   []RawCheck `json:"checks"`
	LogsText string     `json:"logsText"`
}

// RawCheck is one check outcome as reported by the engine
type RawCheck struct {
	Name        string       `json:"name"`
	Definition  string       `json:"definition"`
	Table       string       `json:"table"`
	Column      string       `json:"column"`
	Outcome     CheckOutcome `json:"outcome"`
	CheckValue  any          `json:"checkValue"`
	Message     string       `json:"message"`
	Diagnostics *Diagnostics `json:"diagnostics"`
}

// Diagnostics holds supplementary blocks the engine attaches to failing or
// warning checks
type Diagnostics struct {
	Blocks []DiagnosticBlock `json:"blocks"`
}

// DiagnosticBlock may carry sample offending rows and the query that
// produced them
type DiagnosticBlock struct {
	FailedRows []map[string]any `json:"failedRows"`
	Query      string           `json:"query"`
}
