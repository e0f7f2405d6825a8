package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/creatorcalc/internal/tui/tuistyles"
)

// PlatformsModel is the platform picker scene
type PlatformsModel struct {
	platforms     []domain.Platform
	selectedIndex int
	width         int
	height        int
}

// NewPlatformsModel creates the picker over platforms, in the order given
func NewPlatformsModel(platforms []domain.Platform) *PlatformsModel {
	return &PlatformsModel{platforms: platforms}
}

func (m *PlatformsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted platform
func (m *PlatformsModel) Selected() (domain.Platform, bool) {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.platforms) {
		return m.platforms[m.selectedIndex], true
	}
	return domain.Platform{}, false
}

// Update handles messages for the platform picker
func (m *PlatformsModel) Update(msg tea.Msg) (*PlatformsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.platforms)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g", "home"))):
		m.selectedIndex = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G", "end"))):
		m.selectedIndex = max(0, len(m.platforms)-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.selectPlatform()
	}
	return m, nil
}

func (m *PlatformsModel) selectPlatform() tea.Cmd {
	platform, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return tuimsg.PlatformSelectedMsg{PlatformID: platform.ID}
	}
}

// View renders the list on the left and the highlighted platform's inputs on the right
func (m *PlatformsModel) View() string {
	if len(m.platforms) == 0 {
		return tuistyles.InfoStyle.Render("No platforms available.")
	}

	listStyle := tuistyles.BorderStyle.Width(36)
	var list strings.Builder
	list.WriteString(tuistyles.TitleStyle.Render("Platforms"))
	list.WriteString("\n\n")

	var lastCategory domain.Category
	for _, p := range m.visible() {
		if p.platform.Category != lastCategory {
			if lastCategory != "" {
				list.WriteString("\n")
			}
			list.WriteString(tuistyles.SubtitleStyle.Render(strings.ToUpper(string(p.platform.Category))))
			list.WriteString("\n")
			lastCategory = p.platform.Category
		}
		prefix, style := "  ", tuistyles.UnselectedItemStyle
		if p.index == m.selectedIndex {
			prefix, style = "▸ ", tuistyles.SelectedItemStyle
		}
		list.WriteString(style.Render(prefix + p.platform.Name))
		list.WriteString("\n")
	}

	selected, _ := m.Selected()
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(strings.TrimRight(list.String(), "\n")),
		"  ",
		renderPlatformDetails(selected),
	)
	return content + "\n\n" + tuistyles.HelpDescStyle.Render("↑/k up • ↓/j down • Enter open calculator • g top • G bottom")
}

type indexedPlatform struct {
	index    int
	platform domain.Platform
}

// visible returns the window of platforms that fits the terminal, keeping the selection in view.
func (m *PlatformsModel) visible() []indexedPlatform {
	rows := m.height - 12
	start, end := 0, len(m.platforms)
	if rows > 0 && rows < len(m.platforms) {
		start = max(0, m.selectedIndex-rows/2)
		end = min(len(m.platforms), start+rows)
		start = max(0, end-rows)
	}
	out := make([]indexedPlatform, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, indexedPlatform{index: i, platform: m.platforms[i]})
	}
	return out
}

func renderPlatformDetails(p domain.Platform) string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render(p.Name))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(string(p.Category)))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.MetricLabelStyle.Bold(true).Render("Inputs:"))
	content.WriteString("\n")
	for _, in := range p.Inputs {
		content.WriteString(fmt.Sprintf("  • %s (default %s)\n", in.Label, tuistyles.FormatNumber(in.Default)))
	}
	content.WriteString("\n")
	content.WriteString(tuistyles.InfoStyle.Italic(true).Render("Press Enter to estimate revenue"))
	return tuistyles.ActiveBorderStyle.Width(52).Render(content.String())
}
