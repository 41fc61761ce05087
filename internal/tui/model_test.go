package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cat, err := reference.Default()
	require.NoError(t, err)
	return NewModel(cat, config.Scenario{
		Incumbent: "cisco",
		Size:      domain.SizeSmall,
	}, calculation.NopLogger{})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// calculate runs the pending calculation for m synchronously
func calculate(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, calculateCmd(m.catalog, m.calcEngine, m.scenario, m.generation)())
	m, _ = update(t, m, compareVendorsCmd(m.compare, m.scenario, m.generation)())
	return m
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Equal(t, "portnox", m.Scenario().Reference, "defaults are applied")
	assert.NotNil(t, m.Init())
}

func TestModel_CalculationPopulatesScenes(t *testing.T) {
	m := calculate(t, newTestModel(t))
	require.NoError(t, m.err)
	require.NotNil(t, m.report)
	assert.Equal(t, 990000.0, m.report.Result.TCO.IncumbentTCO)
	assert.Same(t, m.report, m.resultsModel.Report())
	require.NotNil(t, m.comparison)
	assert.NotEmpty(t, m.comparison.Entries)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 50})
	assert.Contains(t, m.View(), "savings $756,000")
}

func TestModel_ScenarioChangeRecalculates(t *testing.T) {
	m := calculate(t, newTestModel(t))
	gen := m.generation

	s := m.Scenario()
	s.Years = 5
	m, cmd := update(t, m, tuimsg.ScenarioChangedMsg{Scenario: s})
	assert.NotNil(t, cmd)
	assert.Equal(t, gen+1, m.generation)
	assert.True(t, m.loading)
	assert.Equal(t, 5, m.parametersModel.Scenario().Years)

	m = calculate(t, m)
	assert.False(t, m.loading)
	assert.Len(t, m.report.Result.YearByYear, 6)
}

func TestModel_DropsStaleResults(t *testing.T) {
	m := calculate(t, newTestModel(t))
	stale := calculateCmd(m.catalog, m.calcEngine, m.scenario, m.generation)()
	before := m.report

	s := m.Scenario()
	s.Years = 7
	m, _ = update(t, m, tuimsg.ScenarioChangedMsg{Scenario: s})
	m, _ = update(t, m, stale)
	assert.Same(t, before, m.report, "result for an older edit is ignored")
	assert.True(t, m.loading)
}

func TestModel_CalculationError(t *testing.T) {
	m := newTestModel(t)
	s := m.Scenario()
	s.Incumbent = "portnox"
	m, _ = update(t, m, tuimsg.ScenarioChangedMsg{Scenario: s})
	m = calculate(t, m)

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")

	s.Incumbent = "cisco"
	m, _ = update(t, m, tuimsg.ScenarioChangedMsg{Scenario: s})
	m = calculate(t, m)
	assert.NoError(t, m.err, "a successful calculation clears the error")
}

func TestModel_IncumbentSelected(t *testing.T) {
	m := calculate(t, newTestModel(t))
	m, cmd := update(t, m, tuimsg.IncumbentSelectedMsg{VendorID: "aruba"})
	require.NotNil(t, cmd)
	assert.Equal(t, "aruba", m.Scenario().Incumbent)
	assert.Equal(t, "aruba", m.homeModel.Scenario().Incumbent)
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Scene: SceneVendors}, cmd())

	m, _ = update(t, m, NavigateMsg{Scene: SceneParameters})
	m, _ = update(t, m, NavigateMsg{Scene: SceneHelp})
	assert.Contains(t, m.View(), "KEYBOARD SHORTCUTS")

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Scene: SceneParameters}, cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowSizeAndErrors(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)

	m, _ = update(t, m, tuimsg.ErrorMsg{Err: errors.New("boom")})
	assert.Contains(t, m.View(), "boom")
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "Vendors", SceneVendors.String())
	assert.Equal(t, "Unknown", Scene(99).String())
}
