// Package tui is the interactive revenue calculator.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/rgehrsitz/creatorcalc/internal/tui/scenes"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuimsg"
)

// Options configures a new Model
type Options struct {
	Engine      *calculation.CalculationEngine
	Defaults    config.DefaultsConfig
	SnapshotDir string // where "s" writes snapshots; "." when empty
	Platform    string // open the calculator on this platform
	CreatorName string
}

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	platforms  *scenes.PlatformsModel
	calculator *scenes.CalculatorModel

	snapshotDir string
	creatorName string
	now         func() time.Time

	err error
}

// NewModel creates the application model
func NewModel(opts Options) Model {
	dir := opts.SnapshotDir
	if dir == "" {
		dir = "."
	}
	m := Model{
		currentScene: ScenePlatforms,
		platforms:    scenes.NewPlatformsModel(registry.Platforms()),
		calculator:   scenes.NewCalculatorModel(opts.Engine, opts.Defaults.Region, opts.Defaults.Niche, opts.Defaults.TimePeriod),
		snapshotDir:  dir,
		creatorName:  opts.CreatorName,
		now:          time.Now,
		width:        100,
		height:       30,
	}
	if p, ok := registry.Platform(opts.Platform); ok {
		m.calculator.SetPlatform(p)
		m.currentScene = SceneCalculator
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// saveSnapshotCmd writes the calculator state as a one-scenario configuration file
func saveSnapshotCmd(dir, creator string, now time.Time, msg tuimsg.SaveSnapshotMsg) tea.Cmd {
	return func() tea.Msg {
		id := uuid.NewString()
		name := msg.Entry.Platform
		if p, ok := registry.Platform(name); ok {
			name = p.Name
		}
		cfg := &domain.Configuration{
			CreatorName: creator,
			Region:      msg.Region,
			Niche:       msg.Niche,
			TimePeriod:  msg.Period,
			Scenarios: []domain.Scenario{{
				ID:          id,
				Name:        fmt.Sprintf("%s snapshot", name),
				Description: fmt.Sprintf("Saved %s", now.Format("2006-01-02 15:04")),
				Platforms:   []domain.PlatformEntry{msg.Entry},
			}},
		}
		path := filepath.Join(dir, fmt.Sprintf("snapshot_%s_%s.yaml", msg.Entry.Platform, id[:8]))
		return tuimsg.SaveCompleteMsg{Path: path, Err: config.SaveScenario(path, cfg)}
	}
}
