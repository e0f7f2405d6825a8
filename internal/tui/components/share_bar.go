package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuistyles"
)

// ShareBar draws one revenue stream's share of a total as a horizontal bar
type ShareBar struct {
	Label   string
	Amount  string
	Percent float64 // 0-100
	Width   int
}

// NewShareBar creates a share bar; percent is clamped to 0-100
func NewShareBar(label, amount string, percent float64) *ShareBar {
	return &ShareBar{
		Label:   label,
		Amount:  amount,
		Percent: max(0, min(percent, 100)),
		Width:   20,
	}
}

func (b *ShareBar) WithWidth(width int) *ShareBar {
	b.Width = width
	return b
}

// Render returns "label [████░░░░] 40.0% $amount"
func (b *ShareBar) Render() string {
	filled := int(float64(b.Width) * b.Percent / 100)
	filled = min(filled, b.Width)
	empty := b.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%-22s ", truncateLabel(b.Label, 22)))
	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("] ")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Render(fmt.Sprintf("%5.1f%%", b.Percent)))
	if b.Amount != "" {
		content.WriteString(" ")
		content.WriteString(tuistyles.SubtitleStyle.Render(b.Amount))
	}
	return content.String()
}

func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
