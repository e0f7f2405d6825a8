package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuistyles"
)

// InputSlider displays one platform input as an adjustable slider
type InputSlider struct {
	Input     domain.PlatformInput
	Value     float64
	Width     int // total width of the slider bar
	IsFocused bool
}

// NewInputSlider creates a slider for input, clamping value into the input's range
func NewInputSlider(input domain.PlatformInput, value float64) *InputSlider {
	return &InputSlider{
		Input: input,
		Value: input.Clamp(value),
		Width: 30,
	}
}

// WithWidth sets the slider width
func (p *InputSlider) WithWidth(width int) *InputSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *InputSlider) SetFocused(focused bool) *InputSlider {
	p.IsFocused = focused
	return p
}

func (p *InputSlider) step() float64 {
	if p.Input.Step > 0 {
		return p.Input.Step
	}
	return 1
}

// Increment raises the value by one step, stopping at Max
func (p *InputSlider) Increment() {
	p.SetValue(p.Value + p.step())
}

// Decrement lowers the value by one step, stopping at Min
func (p *InputSlider) Decrement() {
	p.SetValue(p.Value - p.step())
}

// SetValue sets the value directly, clamping to min/max
func (p *InputSlider) SetValue(value float64) {
	if math.IsNaN(value) {
		return
	}
	p.Value = p.Input.Clamp(value)
}

// Percentage returns the value as a fraction of the range
func (p *InputSlider) Percentage() float64 {
	if p.Input.Max == p.Input.Min {
		return 0
	}
	return (p.Value - p.Input.Min) / (p.Input.Max - p.Input.Min)
}

func (p *InputSlider) formatValue(v float64) string {
	s := tuistyles.FormatNumber(v)
	switch p.Input.Kind {
	case domain.KindPercent:
		return s + "%"
	case domain.KindPrice, domain.KindRate:
		return "$" + s
	}
	return s
}

// Render returns the styled slider with its label, value, range and tooltip
func (p *InputSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(labelStyle.Render(p.Input.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.formatValue(p.Value)))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s ─ %s", p.formatValue(p.Input.Min), p.formatValue(p.Input.Max))))

	if p.IsFocused && p.Input.Tooltip != "" {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Input.Tooltip))
	}

	return content.String()
}

func (p *InputSlider) renderSliderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	filled = max(0, min(filled, p.Width))
	empty := p.Width - filled

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
