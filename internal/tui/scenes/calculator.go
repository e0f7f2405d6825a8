package scenes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/rgehrsitz/creatorcalc/internal/tui/components"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// CalculatorModel edits one platform's inputs and shows the live revenue estimate
type CalculatorModel struct {
	calc     *calculation.CalculationEngine
	platform domain.Platform
	sliders  []*components.InputSlider
	focused  int

	regions []domain.Region
	niches  []domain.Niche
	periods []domain.TimePeriod
	region  int
	niche   int
	period  int

	result   domain.PlatformResult
	previous *decimal.Decimal

	editing bool
	input   textinput.Model
	status  string

	width  int
	height int
}

// NewCalculatorModel creates the calculator scene. Selections start at the given ids;
// unknown ids fall back to the registry defaults.
func NewCalculatorModel(calc *calculation.CalculationEngine, regionID, nicheID, periodID string) *CalculatorModel {
	if calc == nil {
		calc = calculation.NewCalculationEngine()
	}
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 16
	ti.Width = 16

	m := &CalculatorModel{
		calc:    calc,
		regions: registry.Regions(),
		niches:  registry.Niches(),
		periods: registry.TimePeriods(),
		input:   ti,
	}
	m.region = indexOf(len(m.regions), func(i int) bool { return m.regions[i].ID == registry.Region(regionID).ID })
	m.niche = indexOf(len(m.niches), func(i int) bool { return m.niches[i].ID == registry.Niche(nicheID).ID })
	m.period = indexOf(len(m.periods), func(i int) bool { return m.periods[i].ID == registry.TimePeriod(periodID).ID })
	return m
}

func indexOf(n int, match func(int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return i
		}
	}
	return 0
}

// SetPlatform loads a platform with its default inputs
func (m *CalculatorModel) SetPlatform(p domain.Platform) {
	m.platform = p
	m.sliders = make([]*components.InputSlider, len(p.Inputs))
	for i, in := range p.Inputs {
		m.sliders[i] = components.NewInputSlider(in, in.Default).WithWidth(28)
	}
	m.focused = 0
	if len(m.sliders) > 0 {
		m.sliders[0].SetFocused(true)
	}
	m.result = domain.PlatformResult{}
	m.previous = nil
	m.status = ""
	m.editing = false
	m.recalculate()
}

func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Platform returns the platform being edited
func (m *CalculatorModel) Platform() domain.Platform { return m.platform }

// Values returns the current slider values keyed by input id
func (m *CalculatorModel) Values() domain.InputValues {
	values := make(domain.InputValues, len(m.sliders))
	for _, s := range m.sliders {
		values[s.Input.ID] = s.Value
	}
	return values
}

func (m *CalculatorModel) Result() domain.PlatformResult { return m.result }
func (m *CalculatorModel) Region() domain.Region         { return m.regions[m.region] }
func (m *CalculatorModel) Niche() domain.Niche           { return m.niches[m.niche] }
func (m *CalculatorModel) Period() domain.TimePeriod     { return m.periods[m.period] }

// Editing reports whether exact entry is active, so global shortcuts stay out of the way
func (m *CalculatorModel) Editing() bool { return m.editing }

// SetStatus shows a one-line message under the results
func (m *CalculatorModel) SetStatus(status string) { m.status = status }

// PeriodRevenue is the adjusted revenue over the selected time period
func (m *CalculatorModel) PeriodRevenue() decimal.Decimal {
	return calculation.ForPeriod(m.result.Adjusted, m.Period())
}

func (m *CalculatorModel) recalculate() {
	if m.result.Platform == m.platform.ID && m.platform.ID != "" {
		monthly := m.result.Adjusted.MonthlyRevenue
		m.previous = &monthly
	}
	m.result = m.calc.Calculate(calculation.Request{
		Platform: m.platform.ID,
		Inputs:   m.Values(),
		Region:   m.Region().ID,
		Niche:    m.Niche().ID,
	})
}

// Update handles messages for the calculator scene
func (m *CalculatorModel) Update(msg tea.Msg) (*CalculatorModel, tea.Cmd) {
	if m.editing {
		return m.updateEntry(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.moveFocus(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h"))):
		m.sliders[m.focused].Decrement()
		m.recalculate()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l"))):
		m.sliders[m.focused].Increment()
		m.recalculate()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("e", "enter"))):
		m.editing = true
		m.status = ""
		m.input.SetValue(strconv.FormatFloat(m.sliders[m.focused].Value, 'f', -1, 64))
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("r"))):
		m.region = (m.region + 1) % len(m.regions)
		m.recalculate()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("n"))):
		m.niche = (m.niche + 1) % len(m.niches)
		m.recalculate()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("t"))):
		m.period = (m.period + 1) % len(m.periods)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("d"))):
		for _, s := range m.sliders {
			s.SetValue(s.Input.Default)
		}
		m.recalculate()
		m.status = "Reset to defaults"
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("s"))):
		return m, m.saveSnapshot()
	}
	return m, nil
}

func (m *CalculatorModel) updateEntry(msg tea.Msg) (*CalculatorModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			raw := strings.ReplaceAll(strings.TrimSpace(m.input.Value()), ",", "")
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				m.status = fmt.Sprintf("%q is not a number", m.input.Value())
				return m, nil
			}
			slider := m.sliders[m.focused]
			slider.SetValue(value)
			if slider.Value != value {
				m.status = fmt.Sprintf("%s limited to %s", slider.Input.Label, tuistyles.FormatNumber(slider.Value))
			} else {
				m.status = ""
			}
			m.stopEditing()
			m.recalculate()
			return m, nil
		case tea.KeyEsc:
			m.stopEditing()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *CalculatorModel) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *CalculatorModel) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next >= len(m.sliders) {
		return
	}
	m.sliders[m.focused].SetFocused(false)
	m.focused = next
	m.sliders[m.focused].SetFocused(true)
}

func (m *CalculatorModel) saveSnapshot() tea.Cmd {
	msg := tuimsg.SaveSnapshotMsg{
		Entry:  domain.PlatformEntry{Platform: m.platform.ID, Inputs: m.Values()},
		Region: m.Region().ID,
		Niche:  m.Niche().ID,
		Period: m.Period().ID,
	}
	return func() tea.Msg { return msg }
}

// View renders sliders on the left and results on the right
func (m *CalculatorModel) View() string {
	if m.platform.ID == "" {
		return tuistyles.InfoStyle.Render("Select a platform first.")
	}

	header := tuistyles.TitleStyle.Render(m.platform.Name) + "  " + tuistyles.SubtitleStyle.Render(
		fmt.Sprintf("Region: %s • Niche: %s • Period: %s", m.Region().Name, m.Niche().Name, m.Period().Name))

	var inputs strings.Builder
	for i, s := range m.sliders {
		inputs.WriteString(s.Render())
		if i == m.focused && m.editing {
			inputs.WriteString("\n")
			inputs.WriteString(tuistyles.HelpKeyStyle.Render("Exact value: "))
			inputs.WriteString(m.input.View())
		}
		inputs.WriteString("\n\n")
	}

	left := tuistyles.BorderStyle.Width(48).Render(strings.TrimRight(inputs.String(), "\n"))
	right := m.renderResults()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var footer strings.Builder
	if m.status != "" {
		footer.WriteString(tuistyles.InfoStyle.Render(m.status))
		footer.WriteString("\n")
	}
	footer.WriteString(tuistyles.HelpDescStyle.Render(
		"↑/↓ select • ←/→ adjust • e exact value • r region • n niche • t period • d defaults • s save • esc back"))

	return header + "\n\n" + body + "\n\n" + footer.String()
}

func (m *CalculatorModel) renderResults() string {
	adjusted := m.result.Adjusted

	monthly := components.NewMetricCard("Monthly", tuistyles.FormatCurrency(adjusted.MonthlyRevenue))
	if m.previous != nil && !m.previous.Equal(adjusted.MonthlyRevenue) {
		diff := adjusted.MonthlyRevenue.Sub(*m.previous)
		change := tuistyles.FormatCurrency(diff.Abs())
		if diff.IsPositive() {
			change = "+" + change
		} else {
			change = "-" + change
		}
		monthly.WithTrend(diff.IsPositive(), change)
	}
	cards := []*components.MetricCard{
		monthly,
		components.NewMetricCard("Yearly", tuistyles.FormatCurrency(adjusted.YearlyRevenue)),
	}
	if period := m.Period(); period.ID != "monthly" && period.ID != "yearly" {
		cards = append(cards, components.NewMetricCard(period.Name, tuistyles.FormatCurrency(m.PeriodRevenue())))
	}
	if adjusted.EngagementRate != nil {
		cards = append(cards, components.NewMetricCard("Engagement", adjusted.EngagementRate.StringFixed(2)+"%"))
	}

	var content strings.Builder
	content.WriteString(components.MetricGrid(cards, 2))

	if len(adjusted.Breakdown) > 0 {
		content.WriteString("\n\n")
		content.WriteString(tuistyles.MetricLabelStyle.Bold(true).Render("Breakdown"))
		for _, item := range adjusted.Breakdown {
			share := 0.0
			if adjusted.MonthlyRevenue.IsPositive() {
				share = item.Amount.Div(adjusted.MonthlyRevenue).Mul(decimal.NewFromInt(100)).InexactFloat64()
			}
			content.WriteString("\n")
			content.WriteString(components.NewShareBar(item.Label, tuistyles.FormatCurrency(item.Amount), share).WithWidth(16).Render())
		}
	}
	return content.String()
}
