package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case ScenePlatforms:
		content = m.platforms.View()
	case SceneCalculator:
		content = m.calculator.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := max(0, m.height-5)
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Creator Revenue Calculator")
	breadcrumb := m.currentScene.String()
	if m.currentScene == SceneCalculator {
		breadcrumb += " / " + m.calculator.Platform().Name
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(breadcrumb))
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("p", "platforms"),
		formatShortcut("c", "calculator"),
		formatShortcut("?", "help"),
		formatShortcut("esc", "back"),
		formatShortcut("q", "quit"),
	}
	return StatusBarStyle.Width(max(0, m.width-2)).Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func renderHelp() string {
	rows := [][2]string{
		{"p", "Platform list"},
		{"c", "Back to the calculator"},
		{"↑/↓ j/k", "Move between platforms or inputs"},
		{"Enter", "Open the highlighted platform"},
		{"←/→ h/l", "Adjust the focused input by one step"},
		{"e", "Type an exact value (Enter applies, Esc cancels)"},
		{"r / n / t", "Cycle region, niche and time period"},
		{"d", "Reset inputs to platform defaults"},
		{"s", "Save the current inputs as a scenario file"},
		{"?", "Show this help"},
		{"Esc", "Go back"},
		{"q / Ctrl+C", "Quit"},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(HelpKeyStyle.Render(fmt.Sprintf("  %-12s", row[0])))
		b.WriteString(HelpDescStyle.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Saved files load with: creatorcalc calculate <file>"))
	return BorderStyle.Render(b.String())
}
