package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.parametersModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.vendorsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.ScenarioChangedMsg:
		return m.applyScenario(msg.Scenario)

	case tuimsg.IncumbentSelectedMsg:
		s := m.scenario.Clone()
		s.Incumbent = msg.VendorID
		next, cmd := m.applyScenario(s)
		return next, tea.Batch(cmd, navigate(SceneResults))

	case tuimsg.CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.report = msg.Report
		m.resultsModel.SetReport(msg.Report)
		return m, nil

	case tuimsg.VendorComparisonCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.comparison = msg.Comparison
		m.vendorsModel.SetComparison(msg.Comparison, m.scenario.Incumbent)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// applyScenario makes s the active scenario everywhere and recalculates
func (m Model) applyScenario(s config.Scenario) (Model, tea.Cmd) {
	m.scenario = s.Clone()
	m.generation++
	m.loading = true
	m.homeModel.SetScenario(m.scenario)
	m.parametersModel.SetScenario(m.scenario)
	return m, m.recalculate()
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m, navigate(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			back := SceneHome
			if m.previousScene != m.currentScene {
				back = m.previousScene
			}
			return m, navigate(back)
		}
		return m, nil

	case "h":
		return m, navigate(SceneHome)
	case "p":
		return m, navigate(SceneParameters)
	case "r":
		return m, navigate(SceneResults)
	case "v":
		return m, navigate(SceneVendors)
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
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneVendors:
		m.vendorsModel, cmd = m.vendorsModel.Update(msg)
	}
	return m, cmd
}
