package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuimsg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func patreon(t *testing.T) domain.Platform {
	t.Helper()
	p, ok := registry.Platform("patreon")
	require.True(t, ok)
	return p
}

func newPatreonCalculator(t *testing.T) *CalculatorModel {
	t.Helper()
	m := NewCalculatorModel(calculation.NewCalculationEngine(), "us", "general", "monthly")
	m.SetPlatform(patreon(t))
	return m
}

func TestPlatformsModel_Navigation(t *testing.T) {
	platforms := registry.Platforms()
	m := NewPlatformsModel(platforms)

	m, _ = m.Update(keyType(tea.KeyUp))
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, platforms[0].ID, selected.ID, "up at top stays put")

	m, _ = m.Update(keyRunes("j"))
	selected, _ = m.Selected()
	assert.Equal(t, platforms[1].ID, selected.ID)

	m, _ = m.Update(keyRunes("G"))
	selected, _ = m.Selected()
	assert.Equal(t, platforms[len(platforms)-1].ID, selected.ID)

	m, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, tuimsg.PlatformSelectedMsg{PlatformID: platforms[len(platforms)-1].ID}, cmd())

	m, _ = m.Update(keyRunes("g"))
	selected, _ = m.Selected()
	assert.Equal(t, platforms[0].ID, selected.ID)
}

func TestPlatformsModel_View(t *testing.T) {
	m := NewPlatformsModel(registry.Platforms())
	m.SetSize(120, 60)
	out := m.View()
	assert.Contains(t, out, "Platforms")
	assert.Contains(t, out, "▸ "+registry.Platforms()[0].Name)
	assert.Contains(t, out, "Press Enter to estimate revenue")

	assert.Contains(t, NewPlatformsModel(nil).View(), "No platforms available")
}

func TestPlatformsModel_VisibleWindowFollowsSelection(t *testing.T) {
	platforms := registry.Platforms()
	m := NewPlatformsModel(platforms)
	m.SetSize(100, 17) // five rows

	for range platforms {
		m.Update(keyType(tea.KeyDown))
	}
	window := m.visible()
	require.Len(t, window, 5)
	assert.Equal(t, len(platforms)-1, window[len(window)-1].index)
}

func TestCalculatorModel_DefaultsAndAdjust(t *testing.T) {
	m := newPatreonCalculator(t)

	assert.Equal(t, domain.InputValues{"patrons": 100, "avgPledge": 5}, m.Values())
	base := m.Result().Adjusted.MonthlyRevenue
	assert.True(t, base.IsPositive())

	m.Update(keyType(tea.KeyRight))
	assert.Equal(t, 110.0, m.Values()["patrons"])
	raised := m.Result().Adjusted.MonthlyRevenue
	assert.True(t, raised.GreaterThan(base))
	assert.Contains(t, m.View(), "▲")

	m.Update(keyRunes("j"))
	m.Update(keyRunes("h"))
	assert.Equal(t, 4.0, m.Values()["avgPledge"])

	m.Update(keyRunes("d"))
	assert.Equal(t, domain.InputValues{"patrons": 100, "avgPledge": 5}, m.Values())
	assert.True(t, base.Equal(m.Result().Adjusted.MonthlyRevenue))
}

func TestCalculatorModel_MatchesEngine(t *testing.T) {
	m := newPatreonCalculator(t)
	want := calculation.NewCalculationEngine().Calculate(calculation.Request{
		Platform: "patreon",
		Inputs:   domain.InputValues{"patrons": 100, "avgPledge": 5},
		Region:   "us",
		Niche:    "general",
	})
	assert.True(t, want.Adjusted.MonthlyRevenue.Equal(m.Result().Adjusted.MonthlyRevenue))
	assert.Contains(t, m.View(), "Patreon")
}

func TestCalculatorModel_CycleSelections(t *testing.T) {
	m := newPatreonCalculator(t)
	regions := registry.Regions()

	m.Update(keyRunes("r"))
	assert.Equal(t, regions[1].ID, m.Region().ID)
	us := registry.Region("us")
	assert.True(t, m.Result().Adjusted.MonthlyRevenue.LessThanOrEqual(
		calculation.NewCalculationEngine().Calculate(calculation.Request{
			Platform: "patreon", Inputs: m.Values(), Region: us.ID, Niche: "general",
		}).Adjusted.MonthlyRevenue))

	m.Update(keyRunes("n"))
	assert.Equal(t, registry.Niches()[1].ID, m.Niche().ID)

	m.Update(keyRunes("t"))
	assert.Equal(t, "yearly", m.Period().ID)
	assert.True(t, m.Result().Adjusted.YearlyRevenue.Equal(m.PeriodRevenue()))

	m.Update(keyRunes("t"))
	assert.Equal(t, "daily", m.Period().ID)
	assert.Contains(t, m.View(), "Daily")
}

func TestCalculatorModel_ExactEntry(t *testing.T) {
	m := newPatreonCalculator(t)

	m.Update(keyRunes("e"))
	require.True(t, m.Editing())
	m.input.SetValue("2,500")
	m.Update(keyType(tea.KeyEnter))
	assert.False(t, m.Editing())
	assert.Equal(t, 2500.0, m.Values()["patrons"])

	m.Update(keyRunes("e"))
	m.input.SetValue("abc")
	m.Update(keyType(tea.KeyEnter))
	assert.True(t, m.Editing(), "invalid entry keeps the editor open")
	assert.Contains(t, m.View(), `"abc" is not a number`)
	m.Update(keyType(tea.KeyEsc))
	assert.False(t, m.Editing())
	assert.Equal(t, 2500.0, m.Values()["patrons"])

	m.Update(keyRunes("e"))
	m.input.SetValue("999999999")
	m.Update(keyType(tea.KeyEnter))
	assert.Equal(t, 100000.0, m.Values()["patrons"])
	assert.Contains(t, m.View(), "Patrons limited to 100,000")
}

func TestCalculatorModel_SaveSnapshot(t *testing.T) {
	m := NewCalculatorModel(nil, "ca", "finance", "weekly")
	m.SetPlatform(patreon(t))

	_, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(tuimsg.SaveSnapshotMsg)
	require.True(t, ok)
	assert.Equal(t, "patreon", msg.Entry.Platform)
	assert.Equal(t, domain.InputValues{"patrons": 100, "avgPledge": 5}, msg.Entry.Inputs)
	assert.Equal(t, "ca", msg.Region)
	assert.Equal(t, "finance", msg.Niche)
	assert.Equal(t, "weekly", msg.Period)
}

func TestCalculatorModel_UnknownSelectionsFallBack(t *testing.T) {
	m := NewCalculatorModel(nil, "atlantis", "", "hourly")
	assert.Equal(t, registry.Regions()[0].ID, m.Region().ID)
	assert.Equal(t, "general", m.Niche().ID)
	assert.Equal(t, "monthly", m.Period().ID)
	assert.Contains(t, m.View(), "Select a platform first")
	assert.True(t, decimal.Zero.Equal(m.PeriodRevenue()))
}
