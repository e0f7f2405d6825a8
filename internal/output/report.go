package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// Formatter renders scenario results in one output format
type Formatter interface {
	Name() string
	Format(results *domain.ScenarioResults) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(results *domain.ScenarioResults) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.ScenarioResults) ([]byte, error) {
	return f.F(results)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
	MarkdownFormatter{},
	HTMLFormatter{},
}

var formatAliases = map[string]string{
	"text":  "console",
	"table": "console",
	"md":    "markdown",
	"yml":   "yaml",
}

// AvailableFormatterNames lists the registered formats in display order
func AvailableFormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

// AvailableFormatAliases lists the alternate names accepted by GetFormatterByName
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// GetFormatterByName returns the formatter for a format name or alias, or nil
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[name]; ok {
		name = target
	}
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// GenerateReport writes results to w in the named format
func GenerateReport(w io.Writer, results *domain.ScenarioResults, format string) error {
	formatter := GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(AvailableFormatterNames(), ", "))
	}
	data, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format results as %s: %w", formatter.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted formats results and writes them to a timestamped file in the working
// directory, returning the file name.
func WriteFormatted(f Formatter, results *domain.ScenarioResults, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("creatorcalc_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// periodOf resolves the reporting window, defaulting results built without one to monthly.
func periodOf(results *domain.ScenarioResults) domain.TimePeriod {
	if results.TimePeriod.Multiplier.IsZero() {
		return registry.TimePeriod(results.TimePeriod.ID)
	}
	return results.TimePeriod
}

// bestScenario returns the scenario with the highest monthly total, or nil when there are none.
func bestScenario(results *domain.ScenarioResults) *domain.ScenarioSummary {
	var best *domain.ScenarioSummary
	for i := range results.Scenarios {
		s := &results.Scenarios[i]
		if best == nil || s.TotalMonthly.GreaterThan(best.TotalMonthly) {
			best = s
		}
	}
	return best
}

// platformName maps a platform id to its display name
func platformName(id string) string {
	if p, ok := registry.Platform(id); ok {
		return p.Name
	}
	return id
}
