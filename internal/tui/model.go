package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/tui/scenes"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	catalog    *reference.Catalog
	calcEngine *calculation.CalculationEngine
	compare    *compare.CompareEngine

	scenario   config.Scenario
	generation int
	report     *output.Report
	comparison *compare.VendorComparison

	homeModel       *scenes.HomeModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	vendorsModel    *scenes.VendorsModel

	// Error state; cleared by the next successful calculation
	err error

	loading bool
}

// NewModel creates the application model for a catalog and starting scenario
func NewModel(cat *reference.Catalog, scenario config.Scenario, logger calculation.Logger) Model {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)

	s := scenario.Clone().WithDefaults()
	m := Model{
		currentScene:    SceneHome,
		catalog:         cat,
		calcEngine:      engine,
		compare:         compare.NewCompareEngine(engine, cat),
		scenario:        s,
		homeModel:       scenes.NewHomeModel(cat),
		parametersModel: scenes.NewParametersModel(),
		resultsModel:    scenes.NewResultsModel(),
		vendorsModel:    scenes.NewVendorsModel(cat),
		width:           80,
		height:          24,
	}
	m.homeModel.SetScenario(s)
	m.parametersModel.SetScenario(s)
	return m
}

// Init runs the first calculation (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return m.recalculate()
}

// Scenario returns the active scenario
func (m Model) Scenario() config.Scenario {
	return m.scenario
}

// CurrentScene returns the scene on display
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// recalculate refreshes both the single comparison and the vendor ranking
func (m Model) recalculate() tea.Cmd {
	return tea.Batch(
		calculateCmd(m.catalog, m.calcEngine, m.scenario, m.generation),
		compareVendorsCmd(m.compare, m.scenario, m.generation),
	)
}

// calculateCmd returns a command that resolves and calculates a scenario
func calculateCmd(cat *reference.Catalog, engine *calculation.CalculationEngine, s config.Scenario, gen int) tea.Cmd {
	s = s.Clone()
	return func() tea.Msg {
		resolved, err := config.Resolve(cat, s)
		if err != nil {
			return tuimsg.CalculationCompleteMsg{Generation: gen, Err: err}
		}
		result, err := engine.Calculate(context.Background(), resolved.Inputs)
		if err != nil {
			return tuimsg.CalculationCompleteMsg{Generation: gen, Err: err}
		}
		report, err := output.NewReport(cat, resolved, result)
		if err != nil {
			return tuimsg.CalculationCompleteMsg{Generation: gen, Err: fmt.Errorf("failed to build report: %w", err)}
		}
		return tuimsg.CalculationCompleteMsg{Generation: gen, Report: report}
	}
}

// compareVendorsCmd ranks every incumbent under the scenario
func compareVendorsCmd(ce *compare.CompareEngine, s config.Scenario, gen int) tea.Cmd {
	s = s.Clone()
	return func() tea.Msg {
		vc, err := ce.CompareVendors(context.Background(), s, nil)
		return tuimsg.VendorComparisonCompleteMsg{Generation: gen, Comparison: vc, Err: err}
	}
}
