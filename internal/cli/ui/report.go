package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fatih/color"

	"github.com/lvyanru/soda-apiserver/internal/cli/types"
)

var (
	// Tree node styles
	scanStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)  // Cyan
	checkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))             // Blue
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // Gray
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true) // Pink

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// RenderReport renders a validation report as a tree of checks with a
// score summary
func RenderReport(report *types.ValidationReport) string {
	label := fmt.Sprintf("%s %s",
		scanStyle.Render("Scan"),
		keyStyle.Render(report.ScanID),
	)
	root := tree.Root(label)

	root.Child(formatKeyValue("Status:", coloredStatus(report.Status)))
	root.Child(formatKeyValue("Score:", highlightStyle.Render(fmt.Sprintf("%.2f", report.DataQualityScore))))
	root.Child(formatKeyValue("Duration:", fmt.Sprintf("%.1fs", report.ExecutionTime)))

	if len(report.CheckResults) > 0 {
		checksNode := tree.New().Root(keyStyle.Render("Checks"))
		for _, check := range report.CheckResults {
			checksNode.Child(renderCheck(check))
		}
		root.Child(checksNode)
	}

	output := root.String()

	if len(report.FailedRowsSample) > 0 {
		output += "\n\n" + renderFailedRows(report.FailedRowsSample)
	}

	return output
}

// renderCheck renders one check outcome line
func renderCheck(check types.CheckResult) string {
	target := check.Table
	if check.Column != "" {
		target = fmt.Sprintf("%s.%s", target, check.Column)
	}

	line := fmt.Sprintf("%s %s", coloredOutcome(check.Outcome), checkStyle.Render(check.Name))
	if target != "" {
		line += keyStyle.Render(fmt.Sprintf(" (%s)", target))
	}
	if check.Value != nil {
		line += keyStyle.Render(fmt.Sprintf(" value=%v", check.Value))
	}
	if check.Message != "" {
		line += " " + keyStyle.Render(check.Message)
	}

	return line
}

// renderFailedRows renders sampled failed rows grouped under their check
func renderFailedRows(samples []types.FailedRowSample) string {
	header := color.YellowString("Failed row samples (%d):", len(samples))
	output := header + "\n"

	for _, sample := range samples {
		output += fmt.Sprintf("  • %s: %v\n",
			checkStyle.Render(sample.CheckName),
			sample.FailedRow,
		)
	}

	return output
}

// RenderReportSummary renders the check count summary line
func RenderReportSummary(report *types.ValidationReport) string {
	summary := fmt.Sprintf("Total: %s checks, %s passed, %s failed, %s warnings",
		highlightStyle.Render(fmt.Sprintf("%d", report.TotalChecks)),
		color.GreenString("%d", report.PassedChecks),
		color.RedString("%d", report.FailedChecks),
		color.YellowString("%d", report.WarningChecks),
	)
	if report.ErroredChecks > 0 {
		summary += fmt.Sprintf(", %s errored", color.RedString("%d", report.ErroredChecks))
	}

	return summaryStyle.Render(summary)
}

// formatKeyValue formats a key-value pair
func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s", keyStyle.Render(key), value)
}

// coloredStatus returns a colored scan status string
func coloredStatus(status string) string {
	switch status {
	case "passed":
		return color.GreenString(status)
	case "passed_with_warnings":
		return color.YellowString(status)
	case "failed":
		return color.RedString(status)
	default:
		return status
	}
}

// coloredOutcome returns a colored marker for a check outcome
func coloredOutcome(outcome string) string {
	switch outcome {
	case "pass":
		return color.GreenString("✓")
	case "warn":
		return color.YellowString("⚠")
	case "fail":
		return color.RedString("✗")
	default:
		return color.RedString("!")
	}
}
