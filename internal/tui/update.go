package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.platforms.SetSize(msg.Width, msg.Height)
		m.calculator.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.PlatformSelectedMsg:
		p, ok := registry.Platform(msg.PlatformID)
		if !ok {
			return m, nil
		}
		m.calculator.SetPlatform(p)
		m.previousScene = m.currentScene
		m.currentScene = SceneCalculator
		return m, nil

	case tuimsg.SaveSnapshotMsg:
		return m, saveSnapshotCmd(m.snapshotDir, m.creatorName, m.now(), msg)

	case tuimsg.SaveCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.calculator.SetStatus("Saved " + msg.Path)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.err != nil {
		// any key dismisses the error
		m.err = nil
		return m, nil
	}
	if m.currentScene == SceneCalculator && m.calculator.Editing() {
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		return m, navigate(SceneHelp)

	case "esc":
		switch m.currentScene {
		case SceneHelp:
			return m, navigate(m.previousScene)
		case SceneCalculator:
			return m, navigate(ScenePlatforms)
		}
		return m, nil

	case "p":
		if m.currentScene != ScenePlatforms {
			return m, navigate(ScenePlatforms)
		}

	case "c":
		if m.currentScene != SceneCalculator && m.calculator.Platform().ID != "" {
			return m, navigate(SceneCalculator)
		}
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case ScenePlatforms:
		m.platforms, cmd = m.platforms.Update(msg)
	case SceneCalculator:
		m.calculator, cmd = m.calculator.Update(msg)
	}
	return m, cmd
}
