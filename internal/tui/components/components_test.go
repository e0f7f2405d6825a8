package components

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func patronsInput() domain.PlatformInput {
	return domain.PlatformInput{
		ID: "patrons", Label: "Patrons", Type: domain.InputSlider, Kind: domain.KindAudience,
		Min: 0, Max: 100, Step: 10, Default: 50, Tooltip: "Paying members",
	}
}

func TestInputSlider_StepsAndClamps(t *testing.T) {
	s := NewInputSlider(patronsInput(), 95)
	assert.Equal(t, 95.0, s.Value)

	s.Increment()
	assert.Equal(t, 100.0, s.Value, "increment stops at max")

	s.SetValue(5)
	s.Decrement()
	assert.Equal(t, 0.0, s.Value, "decrement stops at min")

	s.SetValue(250)
	assert.Equal(t, 100.0, s.Value)
	assert.Equal(t, 1.0, s.Percentage())

	clamped := NewInputSlider(patronsInput(), -20)
	assert.Equal(t, 0.0, clamped.Value)
}

func TestInputSlider_ZeroStepUsesOne(t *testing.T) {
	in := patronsInput()
	in.Step = 0
	s := NewInputSlider(in, 10)
	s.Increment()
	assert.Equal(t, 11.0, s.Value)
}

func TestInputSlider_Render(t *testing.T) {
	s := NewInputSlider(patronsInput(), 50).WithWidth(10)
	out := s.Render()
	assert.Contains(t, out, "Patrons")
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "0 ─ 100")
	assert.NotContains(t, out, "Paying members", "tooltip only shows when focused")

	s.SetFocused(true)
	assert.Contains(t, s.Render(), "Paying members")

	price := domain.PlatformInput{ID: "avgPledge", Label: "Avg pledge", Kind: domain.KindPrice, Max: 100, Step: 1}
	assert.Contains(t, NewInputSlider(price, 5).Render(), "$5")

	pct := domain.PlatformInput{ID: "tips", Label: "Tips", Kind: domain.KindPercent, Max: 50, Step: 1}
	assert.Contains(t, NewInputSlider(pct, 10).Render(), "10%")
}

func TestMetricCard_Render(t *testing.T) {
	card := NewMetricCard("Monthly", "$450.00").WithTrend(true, "+$50.00").WithDescription("after fees")
	out := card.Render()
	assert.Contains(t, out, "Monthly")
	assert.Contains(t, out, "$450.00")
	assert.Contains(t, out, "▲ +$50.00")
	assert.Contains(t, out, "after fees")

	assert.Equal(t, "Yearly: $5,400.00", NewMetricCard("Yearly", "$5,400.00").RenderCompact())
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	cards := []*MetricCard{NewMetricCard("A", "1"), NewMetricCard("B", "2"), NewMetricCard("C", "3")}
	grid := MetricGrid(cards, 2)
	for _, label := range []string{"A", "B", "C"} {
		assert.Contains(t, grid, label)
	}
}

func TestShareBar_Render(t *testing.T) {
	out := NewShareBar("Ad revenue", "$300.00", 50).WithWidth(10).Render()
	assert.Contains(t, out, "Ad revenue")
	assert.Contains(t, out, strings.Repeat("█", 5)+strings.Repeat("░", 5))
	assert.Contains(t, out, " 50.0%")
	assert.Contains(t, out, "$300.00")

	assert.Equal(t, 100.0, NewShareBar("x", "", 140).Percent)
	assert.Equal(t, 0.0, NewShareBar("x", "", -3).Percent)
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 10))
	assert.Equal(t, "abcd…", truncateLabel("abcdefgh", 5))
}
