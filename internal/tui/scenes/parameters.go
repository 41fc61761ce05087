package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/tui/components"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

// Control keys
const (
	paramYears          = "years"
	paramFTECost        = "fte_cost"
	paramDowntime       = "downtime_cost"
	paramNetwork        = "network_complexity"
	paramMultiLocation  = "multiple_locations"
	paramLocations      = "location_count"
	paramComplexAuth    = "complex_authentication"
	paramLegacy         = "legacy_devices"
	paramLegacyPct      = "legacy_percentage"
	paramCloud          = "cloud_integration"
	paramCustomPolicies = "custom_policies"
	paramPolicy         = "policy_complexity"
)

var levelChoices = []string{string(domain.LevelLow), string(domain.LevelMedium), string(domain.LevelHigh)}

// ParametersModel edits the financial and complexity inputs of the scenario
type ParametersModel struct {
	scenario config.Scenario
	sliders  []*components.ParameterSlider
	focused  int
	width    int
	height   int
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	m := &ParametersModel{}
	m.SetScenario(config.DefaultScenario())
	return m
}

// SetScenario rebuilds the controls from a scenario, keeping focus
func (m *ParametersModel) SetScenario(s config.Scenario) {
	m.scenario = s.Clone()
	m.buildSliders()
}

// Scenario returns the scenario as currently edited
func (m *ParametersModel) Scenario() config.Scenario {
	return m.scenario.Clone()
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ParametersModel) buildSliders() {
	s := m.scenario
	cx := s.Complexity

	fte := config.DefaultFTECost
	if s.FTECost != nil {
		fte = *s.FTECost
	}
	downtime := config.DefaultDowntimeCostPerHour
	if s.DowntimeCostPerHour != nil {
		downtime = *s.DowntimeCostPerHour
	}
	money := func(v float64) string { return output.FormatCurrency(v) }

	years := components.NewParameterSlider(paramYears, "Analysis period", float64(s.Years), 1, config.MaxYears, 1).
		WithFormat(func(v float64) string { return fmt.Sprintf("%.0f years", v) }).
		WithDescription("Years of operating cost to project")
	fteSlider := components.NewParameterSlider(paramFTECost, "FTE cost per year", fte, 0, 300000, 5000).
		WithFormat(money).
		WithDescription("Fully loaded annual cost of one IT staff member")
	downtimeSlider := components.NewParameterSlider(paramDowntime, "Downtime cost per hour", downtime, 0, 100000, 500).
		WithFormat(money).
		WithDescription("Business cost of one hour of NAC-related outage")

	network := components.NewChoice(paramNetwork, "Network complexity", levelChoices, string(cx.NetworkComplexity))
	multi := components.NewToggle(paramMultiLocation, "Multiple locations", cx.HasMultipleLocations)
	locations := components.NewParameterSlider(paramLocations, "Location count", float64(cx.LocationCount), 1, 200, 1).
		WithDescription("Sites beyond the first add deployment effort")
	locations.Disabled = !cx.HasMultipleLocations
	auth := components.NewToggle(paramComplexAuth, "Complex authentication", cx.HasComplexAuthentication)
	legacy := components.NewToggle(paramLegacy, "Legacy devices", cx.HasLegacyDevices)
	legacyPct := components.NewParameterSlider(paramLegacyPct, "Legacy device share", cx.LegacyDevicePercentage, 0, 100, 5).
		WithFormat(func(v float64) string { return fmt.Sprintf("%.0f%%", v) })
	legacyPct.Disabled = !cx.HasLegacyDevices
	cloud := components.NewToggle(paramCloud, "Cloud integration", cx.HasCloudIntegration)
	custom := components.NewToggle(paramCustomPolicies, "Custom policies", cx.HasCustomPolicies)
	policy := components.NewChoice(paramPolicy, "Policy complexity", levelChoices, string(cx.PolicyComplexity))

	m.sliders = []*components.ParameterSlider{
		years, fteSlider, downtimeSlider,
		network, multi, locations, auth, legacy, legacyPct, cloud, custom, policy,
	}
	if m.focused >= len(m.sliders) {
		m.focused = 0
	}
	m.sliders[m.focused].IsFocused = true
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.sliders) == 0 {
		return m, nil
	}

	var changed bool
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.moveFocus(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left"))):
		changed = m.sliders[m.focused].Decrement()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right"))):
		changed = m.sliders[m.focused].Increment()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "enter"))):
		changed = m.sliders[m.focused].Toggle()
	}

	if !changed {
		return m, nil
	}
	m.apply()
	s := m.scenario.Clone()
	return m, func() tea.Msg {
		return tuimsg.ScenarioChangedMsg{Scenario: s}
	}
}

func (m *ParametersModel) moveFocus(dir int) {
	m.sliders[m.focused].IsFocused = false
	m.focused = (m.focused + dir + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focused].IsFocused = true
}

// apply writes every control back into the scenario
func (m *ParametersModel) apply() {
	cx := &m.scenario.Complexity
	for _, p := range m.sliders {
		switch p.Key {
		case paramYears:
			m.scenario.Years = int(p.Value)
		case paramFTECost:
			m.scenario.FTECost = config.Float(p.Value)
		case paramDowntime:
			m.scenario.DowntimeCostPerHour = config.Float(p.Value)
		case paramNetwork:
			cx.NetworkComplexity = domain.Level(p.Selected())
		case paramMultiLocation:
			cx.HasMultipleLocations = p.On
		case paramLocations:
			cx.LocationCount = int(p.Value)
			p.Disabled = !cx.HasMultipleLocations
		case paramComplexAuth:
			cx.HasComplexAuthentication = p.On
		case paramLegacy:
			cx.HasLegacyDevices = p.On
		case paramLegacyPct:
			cx.LegacyDevicePercentage = p.Value
			p.Disabled = !cx.HasLegacyDevices
		case paramCloud:
			cx.HasCloudIntegration = p.On
		case paramCustomPolicies:
			cx.HasCustomPolicies = p.On
		case paramPolicy:
			cx.PolicyComplexity = domain.Level(p.Selected())
		}
	}
	if !cx.HasMultipleLocations {
		cx.LocationCount = 1
	}
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Scenario Parameters"))
	content.WriteString("\n\n")

	content.WriteString(tuistyles.TableHeaderStyle.Render("Financial"))
	content.WriteString("\n")
	for i, p := range m.sliders {
		if p.Key == paramNetwork {
			content.WriteString("\n")
			content.WriteString(tuistyles.TableHeaderStyle.Render("Environment complexity"))
			content.WriteString("\n")
		}
		content.WriteString(m.sliders[i].Render())
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("↑/↓ select • ←/→ adjust • space toggle • results update live"))
	return tuistyles.BorderStyle.Render(content.String())
}
