package goal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TableFormatter formats goal results as console text
type TableFormatter struct{}

// Format generates a report for a single goal search
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("REVENUE GOAL\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Platform:         %s\n", result.Request.Platform))
	sb.WriteString(fmt.Sprintf("Solve For:        %s\n", result.Request.SolveFor))
	sb.WriteString(fmt.Sprintf("Target:           $%s/month\n", result.Request.TargetMonthly.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Status:           %s\n", tf.formatStatus(result)))
	sb.WriteString(fmt.Sprintf("Iterations:       %d\n", result.Iterations))
	sb.WriteString("\n")

	sb.WriteString("PROGRESS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Current Value:    %s\n", formatValue(result.CurrentValue)))
	sb.WriteString(fmt.Sprintf("Current Monthly:  $%s\n", result.CurrentMonthly.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Progress:         %s%% %s\n", result.Progress.StringFixed(1), progressBar(result.Progress.InexactFloat64(), 30)))
	sb.WriteString("\n")

	if !result.AlreadyMet {
		sb.WriteString("REQUIRED\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Required Value:   %s\n", formatValue(result.RequiredValue)))
		sb.WriteString(fmt.Sprintf("Monthly at Value: $%s\n", result.MonthlyAtRequired.StringFixed(2)))
		if result.CurrentValue > 0 {
			sb.WriteString(fmt.Sprintf("Increase:         +%s (%s%%)\n", formatValue(result.Increase), result.IncreasePct.StringFixed(1)))
		}
		sb.WriteString("\n")
	}

	if result.Message != "" {
		sb.WriteString(result.Message + "\n")
	}

	return sb.String()
}

// FormatMulti formats a goal search across every input of a platform
func (tf *TableFormatter) FormatMulti(multi *MultiResult) string {
	var sb strings.Builder

	sb.WriteString("REVENUE GOAL BY INPUT\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s %10s %14s\n", "Input", "Current", "Required", "Change", "Monthly"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, r := range multi.Results {
		required := formatValue(r.RequiredValue)
		change := "-"
		if !r.Success {
			required = "unreachable"
		} else if r.CurrentValue > 0 && !r.AlreadyMet {
			change = "+" + r.IncreasePct.StringFixed(0) + "%"
		}
		sb.WriteString(fmt.Sprintf("%-20s %14s %14s %10s %14s\n",
			r.Request.SolveFor, formatValue(r.CurrentValue), required, change, "$"+r.MonthlyAtRequired.StringFixed(2)))
	}
	sb.WriteString("\n")

	if len(multi.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range multi.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
	}

	return sb.String()
}

// JSONFormatter formats goal results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for any goal result
func (jf *JSONFormatter) Format(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(result *Result) string {
	switch {
	case result.AlreadyMet:
		return "Target already reached"
	case result.Success:
		return "Reachable"
	default:
		return "Out of reach"
	}
}

// progressBar draws a fixed-width bar, capped at full
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
