package usecase

import (
	"time"

	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

// maxFailedRowsPerCheck bounds how many sample rows a single check may
// contribute before the global cap is applied
const maxFailedRowsPerCheck = 10

// buildReport normalizes the engine's raw results into the stable report
// shape. Outcomes outside pass/fail/warn are counted as errored and stay in
// the score denominator, so engine output drift can never inflate the score.
//
// Failed-row samples are collected in first-seen order (checks in engine
// order, blocks in order), at most maxFailedRowsPerCheck rows per check;
// maxFailedRows caps the combined list after aggregation. Truncation is
// silent.
func buildReport(scanID string, raw *entity.ScanResults, maxFailedRows int, start, end time.Time) (*entity.ValidationReport, error) {
	if raw == nil {
		return nil, domain.NewNormalizationError("engine returned no scan results", nil)
	}

	var passed, failed, warned, errored int
	checkResults := make([]entity.CheckResult, 0, len(raw.Checks))
	var failedRows []entity.FailedRowSample

	for _, check := range raw.Checks {
		switch check.Outcome {
		case entity.OutcomePass:
			passed++
		case entity.OutcomeFail:
			failed++
		case entity.OutcomeWarn:
			warned++
		default:
			errored++
		}

		result := entity.CheckResult{
			Name:    checkName(&check),
			Table:   check.Table,
			Column:  check.Column,
			Outcome: check.Outcome,
			Value:   check.CheckValue,
			Message: check.Message,
		}
		checkResults = append(checkResults, result)

		if check.Outcome == entity.OutcomeFail || check.Outcome == entity.OutcomeWarn {
			failedRows = appendFailedRows(failedRows, &check, result.Name)
		}
	}

	total := passed + failed + warned + errored

	score := 0.0
	if total > 0 {
		score = float64(passed) / float64(total)
	}

	status := entity.StatusPassed
	switch {
	case failed > 0:
		status = entity.StatusFailed
	case warned > 0:
		status = entity.StatusPassedWithWarnings
	}

	if maxFailedRows >= 0 && len(failedRows) > maxFailedRows {
		failedRows = failedRows[:maxFailedRows]
	}

	return &entity.ValidationReport{
		ScanID:           scanID,
		Status:           status,
		ExitCode:         raw.ExitCode,
		DataQualityScore: score,
		PassedChecks:     passed,
		FailedChecks:     failed,
		WarningChecks:    warned,
		ErroredChecks:    errored,
		TotalChecks:      total,
		CheckResults:     checkResults,
		FailedRowsSample: failedRows,
		ExecutionTime:    end.Sub(start).Seconds(),
		Logs:             raw.LogsText,
	}, nil
}

// checkName resolves a display name for a check, falling back to its
// definition
func checkName(check *entity.RawCheck) string {
	if check.Name != "" {
		return check.Name
	}
	if check.Definition != "" {
		return check.Definition
	}
	return "unnamed"
}

// appendFailedRows flattens a check's diagnostic blocks into tagged row
// samples, keeping at most maxFailedRowsPerCheck rows for this check
func appendFailedRows(samples []entity.FailedRowSample, check *entity.RawCheck, name string) []entity.FailedRowSample {
	if check.Diagnostics == nil {
		return samples
	}

	taken := 0
	for _, block := range check.Diagnostics.Blocks {
		for _, row := range block.FailedRows {
			if taken >= maxFailedRowsPerCheck {
				return samples
			}
			samples = append(samples, entity.FailedRowSample{
				CheckName: name,
				Table:     check.Table,
				FailedRow: row,
			})
			taken++
		}
	}
	return samples
}
