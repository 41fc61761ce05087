package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneVendors:
		content = m.vendorsModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, tuistyles.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := max(0, m.height-4)

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("NACTCO - NAC Total Cost of Ownership")
	breadcrumb := fmt.Sprintf("%s / %s vs %s", m.currentScene, m.scenario.Incumbent, m.scenario.Reference)
	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(breadcrumb))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("p", "parameters"),
		formatShortcut("r", "results"),
		formatShortcut("v", "vendors"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}
	statusText := strings.Join(shortcuts, " • ")

	var right string
	switch {
	case m.loading:
		right = "calculating…"
	case m.report != nil:
		right = "savings " + output.FormatCurrency(m.report.Result.TCO.TotalSavings)
	}
	if right != "" {
		right = tuistyles.SubtitleStyle.Render(right)
		spacer := strings.Repeat(" ", max(1, m.width-lipgloss.Width(statusText)-lipgloss.Width(right)-4))
		statusText += spacer + right
	}

	return tuistyles.StatusBarStyle.Width(m.width).Render(statusText)
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

func renderHelp() string {
	helpText := `
NACTCO - NAC Total Cost of Ownership Calculator

KEYBOARD SHORTCUTS:
  h        Home: choose incumbent, size and industry
  p        Parameters: financial and complexity inputs
  r        Results: TCO, savings, payback and cost projection
  v        Vendors: every incumbent ranked against the reference
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

NAVIGATION:
  ↑/↓ or j/k   Move through lists and controls
  ←/→          Adjust sliders, switch toggles, change size
  space/enter  Toggle or select
  i            Next industry (home)

Results recalculate after every change.
`
	return tuistyles.BorderStyle.Render(helpText)
}
