package tui

import (
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuimsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = config.DefaultsConfig{Region: "us", Niche: "general", TimePeriod: "monthly"}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and then every message its command chain produces synchronously.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for i := 0; cmd != nil && i < 5; i++ {
		out := cmd()
		if out == nil {
			break
		}
		if _, quit := out.(tea.QuitMsg); quit {
			break
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel(Options{Defaults: testDefaults})
	assert.Equal(t, ScenePlatforms, m.CurrentScene())
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Creator Revenue Calculator")

	opened := NewModel(Options{Defaults: testDefaults, Platform: "patreon"})
	assert.Equal(t, SceneCalculator, opened.CurrentScene())
	assert.Contains(t, opened.View(), "Calculator / Patreon")
}

func TestModel_Navigation(t *testing.T) {
	m := NewModel(Options{Defaults: testDefaults})

	m = send(t, m, runes("c"))
	assert.Equal(t, ScenePlatforms, m.CurrentScene(), "no platform chosen yet")

	m = send(t, m, tuimsg.PlatformSelectedMsg{PlatformID: "patreon"})
	assert.Equal(t, SceneCalculator, m.CurrentScene())

	m = send(t, m, runes("?"))
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneCalculator, m.CurrentScene())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScenePlatforms, m.CurrentScene())

	m = send(t, m, runes("c"))
	assert.Equal(t, SceneCalculator, m.CurrentScene())

	m = send(t, m, tuimsg.PlatformSelectedMsg{PlatformID: "myspace"})
	assert.Equal(t, SceneCalculator, m.CurrentScene())
	assert.Equal(t, "patreon", m.calculator.Platform().ID)
}

func TestModel_QuitKeys(t *testing.T) {
	m := NewModel(Options{Defaults: testDefaults})
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_EditingSwallowsGlobalKeys(t *testing.T) {
	m := NewModel(Options{Defaults: testDefaults, Platform: "patreon"})
	next, _ := m.Update(runes("e"))
	m = next.(Model)
	require.True(t, m.calculator.Editing())

	for _, k := range []string{"q", "?", "p"} {
		next, _ = m.Update(runes(k))
		m = next.(Model)
	}
	assert.True(t, m.calculator.Editing(), "keys while typing go to the input")
	assert.Equal(t, SceneCalculator, m.CurrentScene())
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(Options{Defaults: testDefaults})
	m = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 50, m.height)
}

func TestModel_ErrorDismissedByAnyKey(t *testing.T) {
	m := NewModel(Options{Defaults: testDefaults})
	m = send(t, m, tuimsg.ErrorMsg{Err: errors.New("disk full")})
	assert.Contains(t, m.View(), "Error: disk full")

	m = send(t, m, runes("x"))
	assert.NotContains(t, m.View(), "disk full")
}

func TestModel_SaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{
		Defaults:    config.DefaultsConfig{Region: "uk", Niche: "tech", TimePeriod: "yearly"},
		SnapshotDir: dir,
		Platform:    "patreon",
		CreatorName: "Ava",
	})
	m.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }

	m = send(t, m, runes("s"))
	require.NoError(t, m.err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^snapshot_patreon_[0-9a-f]{8}\.yaml$`, entries[0].Name())
	assert.Contains(t, m.View(), "Saved ")

	cfg, err := config.NewInputParser().LoadFromFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Equal(t, "Ava", cfg.CreatorName)
	assert.Equal(t, "uk", cfg.Region)
	assert.Equal(t, "tech", cfg.Niche)
	assert.Equal(t, "yearly", cfg.TimePeriod)
	require.Len(t, cfg.Scenarios, 1)
	scenario := cfg.Scenarios[0]
	assert.Len(t, scenario.ID, 36)
	assert.Equal(t, "Patreon snapshot", scenario.Name)
	assert.Equal(t, "Saved 2026-03-01 09:30", scenario.Description)
	assert.Equal(t, []domain.PlatformEntry{{Platform: "patreon", Inputs: domain.InputValues{"patrons": 100, "avgPledge": 5}}}, scenario.Platforms)
}

func TestModel_SaveSnapshotError(t *testing.T) {
	file := t.TempDir() + "/not-a-dir"
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	m := NewModel(Options{Defaults: testDefaults, SnapshotDir: file, Platform: "patreon"})
	m = send(t, m, runes("s"))
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}
