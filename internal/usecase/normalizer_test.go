package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

func rowBlock(n int) *entity.Diagnostics {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{"id": i}
	}
	return &entity.Diagnostics{Blocks: []entity.DiagnosticBlock{{FailedRows: rows}}}
}

func TestBuildReportCountsAndScore(t *testing.T) {
	tests := []struct {
		name        string
		outcomes    []entity.CheckOutcome
		wantStatus  entity.ScanStatus
		wantScore   float64
		wantErrored int
	}{
		{
			name:       "all passed",
			outcomes:   []entity.CheckOutcome{entity.OutcomePass, entity.OutcomePass},
			wantStatus: entity.StatusPassed,
			wantScore:  1.0,
		},
		{
			name:       "one failure",
			outcomes:   []entity.CheckOutcome{entity.OutcomePass, entity.OutcomeFail},
			wantStatus: entity.StatusFailed,
			wantScore:  0.5,
		},
		{
			name:       "warnings only",
			outcomes:   []entity.CheckOutcome{entity.OutcomePass, entity.OutcomeWarn},
			wantStatus: entity.StatusPassedWithWarnings,
			wantScore:  0.5,
		},
		{
			name:        "unknown outcome counted as errored",
			outcomes:    []entity.CheckOutcome{entity.OutcomePass, "exploded"},
			wantStatus:  entity.StatusPassed,
			wantScore:   0.5,
			wantErrored: 1,
		},
		{
			name:       "no checks",
			outcomes:   nil,
			wantStatus: entity.StatusPassed,
			wantScore:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &entity.ScanResults{}
			for i, o := range tt.outcomes {
				raw.Checks = append(raw.Checks, entity.RawCheck{
					Name:    fmt.Sprintf("check_%d", i),
					Outcome: o,
				})
			}

			start := time.Now()
			report, err := buildReport("scan-1", raw, 50, start, start.Add(time.Second))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if report.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", report.Status, tt.wantStatus)
			}
			if report.DataQualityScore != tt.wantScore {
				t.Errorf("score = %v, want %v", report.DataQualityScore, tt.wantScore)
			}
			if report.DataQualityScore < 0.0 || report.DataQualityScore > 1.0 {
				t.Errorf("score %v out of [0,1]", report.DataQualityScore)
			}
			if report.ErroredChecks != tt.wantErrored {
				t.Errorf("errored = %d, want %d", report.ErroredChecks, tt.wantErrored)
			}
			if report.TotalChecks != len(tt.outcomes) {
				t.Errorf("total = %d, want %d", report.TotalChecks, len(tt.outcomes))
			}
			sum := report.PassedChecks + report.FailedChecks + report.WarningChecks + report.ErroredChecks
			if sum != report.TotalChecks {
				t.Errorf("counts do not sum: %d != %d", sum, report.TotalChecks)
			}
		})
	}
}

func TestBuildReportFailedRowCaps(t *testing.T) {
	// 8 failing checks with 10 sample rows each exceed the global cap
	raw := &entity.ScanResults{}
	for i := 0; i < 8; i++ {
		raw.Checks = append(raw.Checks, entity.RawCheck{
			Name:        fmt.Sprintf("check_%d", i),
			Table:       "ORDERS",
			Outcome:     entity.OutcomeFail,
			Diagnostics: rowBlock(10),
		})
	}

	start := time.Now()
	report, err := buildReport("scan-1", raw, 50, start, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.FailedRowsSample) != 50 {
		t.Errorf("sample length = %d, want global cap 50", len(report.FailedRowsSample))
	}
	// First-seen order: the first five checks fill the cap completely
	if got := report.FailedRowsSample[0].CheckName; got != "check_0" {
		t.Errorf("first sample from %s, want check_0", got)
	}
	if got := report.FailedRowsSample[49].CheckName; got != "check_4" {
		t.Errorf("last sample from %s, want check_4", got)
	}
}

func TestBuildReportPerCheckRowCap(t *testing.T) {
	raw := &entity.ScanResults{
		Checks: []entity.RawCheck{{
			Name:        "dup_check",
			Outcome:     entity.OutcomeFail,
			Diagnostics: rowBlock(25),
		}},
	}

	start := time.Now()
	report, err := buildReport("scan-1", raw, 50, start, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.FailedRowsSample) != maxFailedRowsPerCheck {
		t.Errorf("sample length = %d, want per-check cap %d",
			len(report.FailedRowsSample), maxFailedRowsPerCheck)
	}
}

func TestBuildReportPassingChecksContributeNoRows(t *testing.T) {
	raw := &entity.ScanResults{
		Checks: []entity.RawCheck{{
			Name:        "row_count > 0",
			Outcome:     entity.OutcomePass,
			Diagnostics: rowBlock(3),
		}},
	}

	start := time.Now()
	report, err := buildReport("scan-1", raw, 50, start, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.FailedRowsSample) != 0 {
		t.Errorf("passing check contributed %d rows", len(report.FailedRowsSample))
	}
}

func TestBuildReportNilResults(t *testing.T) {
	_, err := buildReport("scan-1", nil, 50, time.Now(), time.Now())
	if !domain.IsNormalizationError(err) {
		t.Fatalf("expected normalization error, got %v", err)
	}
}

func TestBuildReportNameFallback(t *testing.T) {
	raw := &entity.ScanResults{
		Checks: []entity.RawCheck{
			{Definition: "row_count > 0", Outcome: entity.OutcomePass},
			{Outcome: entity.OutcomePass},
		},
	}

	start := time.Now()
	report, err := buildReport("scan-1", raw, 50, start, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := report.CheckResults[0].Name; got != "row_count > 0" {
		t.Errorf("name = %q, want definition fallback", got)
	}
	if got := report.CheckResults[1].Name; got != "unnamed" {
		t.Errorf("name = %q, want unnamed", got)
	}
}

func TestBuildReportExecutionTime(t *testing.T) {
	start := time.Now()
	report, err := buildReport("scan-1", &entity.ScanResults{}, 50, start, start.Add(1500*time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ExecutionTime != 1.5 {
		t.Errorf("execution time = %v, want 1.5", report.ExecutionTime)
	}
}
