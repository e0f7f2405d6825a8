package tui

// Scene represents different screens in the TUI
type Scene int

const (
	ScenePlatforms Scene = iota
	SceneCalculator
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case ScenePlatforms:
		return "Platforms"
	case SceneCalculator:
		return "Calculator"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}
