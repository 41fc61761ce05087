package scenes

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
)

func testCatalog(t *testing.T) *reference.Catalog {
	t.Helper()
	cat, err := reference.Default()
	require.NoError(t, err)
	return cat
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// scenarioFrom runs cmd and returns the scenario it announces
func scenarioFrom(t *testing.T, cmd tea.Cmd) config.Scenario {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(tuimsg.ScenarioChangedMsg)
	require.True(t, ok, "expected ScenarioChangedMsg")
	return msg.Scenario
}

func TestHomeModel_SelectIncumbent(t *testing.T) {
	cat := testCatalog(t)
	m := NewHomeModel(cat)
	require.NotEmpty(t, m.incumbents)
	for _, v := range m.incumbents {
		assert.NotEqual(t, cat.ReferenceVendorID(), v.ID, "reference vendor is not an incumbent choice")
	}

	m, cmd := m.Update(keyPress("up"))
	assert.Nil(t, cmd)
	m, _ = m.Update(keyPress("down"))
	want := m.incumbents[m.cursor].ID

	_, cmd = m.Update(keyPress("enter"))
	assert.Equal(t, want, scenarioFrom(t, cmd).Incumbent)
}

func TestHomeModel_CycleSize(t *testing.T) {
	m := NewHomeModel(testCatalog(t))
	m.SetScenario(config.Scenario{Size: domain.SizeSmall, Employees: 200}.WithDefaults())

	_, cmd := m.Update(keyPress("left"))
	assert.Nil(t, cmd, "small is the smallest band")

	_, cmd = m.Update(keyPress("right"))
	s := scenarioFrom(t, cmd)
	assert.Equal(t, domain.SizeMedium, s.Size)
	assert.Zero(t, s.Employees, "explicit band clears derived sizing")

	m.SetScenario(config.Scenario{Size: domain.SizeEnterprise}.WithDefaults())
	_, cmd = m.Update(keyPress("right"))
	assert.Nil(t, cmd)
}

func TestHomeModel_CycleIndustry(t *testing.T) {
	cat := testCatalog(t)
	m := NewHomeModel(cat)
	start := m.Scenario().Industry

	seen := map[string]bool{start: true}
	for range cat.Industries() {
		var cmd tea.Cmd
		m, cmd = m.Update(keyPress("i"))
		seen[scenarioFrom(t, cmd).Industry] = true
	}
	assert.Len(t, seen, len(cat.Industries()))
	assert.Equal(t, start, m.Scenario().Industry, "cycling wraps back to the start")
}

func TestHomeModel_View(t *testing.T) {
	out := NewHomeModel(testCatalog(t)).View()
	assert.Contains(t, out, "NAC Total Cost of Ownership Calculator")
	assert.Contains(t, out, "Incumbent vendor")
	assert.Contains(t, out, "3 years")

	empty := NewHomeModel(nil).View()
	assert.Contains(t, empty, "No incumbent vendors in catalog")
}

func focusOn(t *testing.T, m *ParametersModel, key string) {
	t.Helper()
	for i := 0; i < len(m.sliders); i++ {
		if m.sliders[m.focused].Key == key {
			return
		}
		m.Update(keyPress("down"))
	}
	t.Fatalf("control %s not found", key)
}

func TestParametersModel_AdjustYears(t *testing.T) {
	m := NewParametersModel()
	focusOn(t, m, paramYears)

	_, cmd := m.Update(keyPress("right"))
	assert.Equal(t, config.DefaultYears+1, scenarioFrom(t, cmd).Years)

	_, cmd = m.Update(keyPress("left"))
	assert.Equal(t, config.DefaultYears, scenarioFrom(t, cmd).Years)
}

func TestParametersModel_FinancialInputs(t *testing.T) {
	m := NewParametersModel()
	focusOn(t, m, paramFTECost)
	_, cmd := m.Update(keyPress("right"))
	s := scenarioFrom(t, cmd)
	require.NotNil(t, s.FTECost)
	assert.Equal(t, config.DefaultFTECost+5000, *s.FTECost)

	focusOn(t, m, paramDowntime)
	_, cmd = m.Update(keyPress("left"))
	s = scenarioFrom(t, cmd)
	require.NotNil(t, s.DowntimeCostPerHour)
	assert.Equal(t, config.DefaultDowntimeCostPerHour-500, *s.DowntimeCostPerHour)
}

func TestParametersModel_DependentControls(t *testing.T) {
	m := NewParametersModel()

	focusOn(t, m, paramLocations)
	_, cmd := m.Update(keyPress("right"))
	assert.Nil(t, cmd, "location count is disabled for a single site")

	focusOn(t, m, paramMultiLocation)
	_, cmd = m.Update(keyPress(" "))
	s := scenarioFrom(t, cmd)
	assert.True(t, s.Complexity.HasMultipleLocations)

	focusOn(t, m, paramLocations)
	_, cmd = m.Update(keyPress("right"))
	s = scenarioFrom(t, cmd)
	assert.Equal(t, 2, s.Complexity.LocationCount)

	focusOn(t, m, paramMultiLocation)
	_, cmd = m.Update(keyPress(" "))
	s = scenarioFrom(t, cmd)
	assert.False(t, s.Complexity.HasMultipleLocations)
	assert.Equal(t, 1, s.Complexity.LocationCount, "single site resets the count")
}

func TestParametersModel_Choices(t *testing.T) {
	m := NewParametersModel()
	focusOn(t, m, paramNetwork)
	_, cmd := m.Update(keyPress("right"))
	assert.Equal(t, domain.LevelHigh, scenarioFrom(t, cmd).Complexity.NetworkComplexity)

	focusOn(t, m, paramPolicy)
	_, cmd = m.Update(keyPress("left"))
	assert.Equal(t, domain.LevelLow, scenarioFrom(t, cmd).Complexity.PolicyComplexity)
}

func TestParametersModel_KeepsFocusAcrossRebuild(t *testing.T) {
	m := NewParametersModel()
	focusOn(t, m, paramCloud)
	_, cmd := m.Update(keyPress("enter"))
	s := scenarioFrom(t, cmd)
	assert.True(t, s.Complexity.HasCloudIntegration)

	m.SetScenario(s)
	assert.Equal(t, paramCloud, m.sliders[m.focused].Key)
	assert.True(t, m.sliders[m.focused].IsFocused)
	assert.Contains(t, m.View(), "Environment complexity")
}

func baselineReport(t *testing.T, cat *reference.Catalog) *output.Report {
	t.Helper()
	resolved, err := config.Resolve(cat, config.Scenario{
		Incumbent:           "cisco",
		Reference:           "portnox",
		Size:                domain.SizeSmall,
		Industry:            "technology",
		Years:               3,
		FTECost:             config.Float(100000),
		DowntimeCostPerHour: config.Float(5000),
	})
	require.NoError(t, err)
	result, err := calculation.NewCalculationEngine().Calculate(context.Background(), resolved.Inputs)
	require.NoError(t, err)
	report, err := output.NewReport(cat, resolved, result)
	require.NoError(t, err)
	return report
}

func TestResultsModel_View(t *testing.T) {
	m := NewResultsModel()
	assert.Contains(t, m.View(), "No results yet")

	cat := testCatalog(t)
	m.SetReport(baselineReport(t, cat))
	m.SetSize(120, 40)
	out := m.View()

	assert.Contains(t, out, "Total Savings")
	assert.Contains(t, out, "$756,000")
	assert.Contains(t, out, "break-even: Initial")
	assert.Contains(t, out, "Cost category")
	assert.Contains(t, out, domain.CategoryLicensing)
	assert.Contains(t, out, "$990,000")
	assert.Contains(t, out, "$234,000")
}

func TestVendorsModel(t *testing.T) {
	cat := testCatalog(t)
	m := NewVendorsModel(cat)
	assert.Contains(t, m.View(), "No vendors compared yet")

	ce := compare.NewCompareEngine(calculation.NewCalculationEngine(), cat)
	vc, err := ce.CompareVendors(context.Background(), config.DefaultScenario(), nil)
	require.NoError(t, err)

	m.SetComparison(vc, "cisco")
	out := m.View()
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "ranked by savings")

	m, _ = m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	sel, ok := cmd().(tuimsg.IncumbentSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, vc.Ranked()[m.cursor].Incumbent, sel.VendorID)

	m.SetComparison(nil, "")
	_, cmd = m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
}
