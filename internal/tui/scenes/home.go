package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

var sizeOrder = []domain.SizeBandID{
	domain.SizeSmall,
	domain.SizeMedium,
	domain.SizeLarge,
	domain.SizeEnterprise,
}

// HomeModel picks the incumbent, organization size and industry
type HomeModel struct {
	catalog    *reference.Catalog
	scenario   config.Scenario
	incumbents []domain.VendorDetails
	industries []domain.IndustryProfile
	cursor     int
	width      int
	height     int
}

// NewHomeModel creates a new home scene model
func NewHomeModel(cat *reference.Catalog) *HomeModel {
	m := &HomeModel{catalog: cat, scenario: config.DefaultScenario()}
	if cat != nil {
		for _, id := range cat.IncumbentIDs() {
			if v, err := cat.Vendor(id); err == nil {
				m.incumbents = append(m.incumbents, v)
			}
		}
		m.industries = cat.Industries()
	}
	m.syncCursor()
	return m
}

// SetScenario updates the scenario shown on the dashboard
func (m *HomeModel) SetScenario(s config.Scenario) {
	m.scenario = s
	m.syncCursor()
}

// Scenario returns the scenario as currently edited
func (m *HomeModel) Scenario() config.Scenario {
	return m.scenario
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *HomeModel) syncCursor() {
	for i, v := range m.incumbents {
		if v.ID == m.scenario.Incumbent {
			m.cursor = i
			return
		}
	}
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.incumbents) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < len(m.incumbents)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left"))):
		return m, m.cycleSize(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right"))):
		return m, m.cycleSize(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("i"))):
		return m, m.cycleIndustry()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", " "))):
		m.scenario.Incumbent = m.incumbents[m.cursor].ID
		return m, m.changed()
	}
	return m, nil
}

func (m *HomeModel) cycleSize(dir int) tea.Cmd {
	idx := 0
	for i, s := range sizeOrder {
		if s == m.scenario.Size {
			idx = i
		}
	}
	next := idx + dir
	if next < 0 || next >= len(sizeOrder) {
		return nil
	}
	m.scenario.Size = sizeOrder[next]
	// an explicit band replaces any derived one
	m.scenario.DeviceCount = 0
	m.scenario.Employees = 0
	return m.changed()
}

func (m *HomeModel) cycleIndustry() tea.Cmd {
	if len(m.industries) == 0 {
		return nil
	}
	idx := -1
	for i, ind := range m.industries {
		if ind.ID == m.scenario.Industry {
			idx = i
		}
	}
	m.scenario.Industry = m.industries[(idx+1)%len(m.industries)].ID
	return m.changed()
}

func (m *HomeModel) changed() tea.Cmd {
	s := m.scenario.Clone()
	return func() tea.Msg {
		return tuimsg.ScenarioChangedMsg{Scenario: s}
	}
}

// View renders the home dashboard
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render("NAC Total Cost of Ownership Calculator"))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(
		fmt.Sprintf("Compare an incumbent NAC vendor against %s", m.referenceName())))
	content.WriteString("\n\n")

	content.WriteString(m.renderScenario())
	content.WriteString("\n\n")

	if len(m.incumbents) == 0 {
		content.WriteString(tuistyles.InfoStyle.Render("No incumbent vendors in catalog"))
	} else {
		content.WriteString(tuistyles.TableHeaderStyle.Render("Incumbent vendor"))
		content.WriteString("\n")
		for i, v := range m.incumbents {
			line := fmt.Sprintf("%-22s %s", v.Name, v.ProductName)
			if v.ID == m.scenario.Incumbent {
				line += " *"
			}
			if i == m.cursor {
				content.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + line))
			} else {
				content.WriteString(tuistyles.UnselectedItemStyle.Render("  " + line))
			}
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("↑/↓ select • enter use vendor • ←/→ size • i industry"))

	return tuistyles.BorderStyle.Render(content.String())
}

func (m *HomeModel) referenceName() string {
	if m.catalog == nil {
		return m.scenario.Reference
	}
	if v, err := m.catalog.Vendor(m.scenario.Reference); err == nil {
		return v.Name
	}
	return m.scenario.Reference
}

func (m *HomeModel) renderScenario() string {
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)

	size := string(m.scenario.Size)
	switch {
	case m.scenario.DeviceCount > 0:
		size = fmt.Sprintf("%d devices", m.scenario.DeviceCount)
	case m.scenario.Employees > 0:
		size = fmt.Sprintf("%d employees", m.scenario.Employees)
	}
	industry := m.scenario.Industry
	for _, ind := range m.industries {
		if ind.ID == industry {
			industry = ind.Name
		}
	}

	rows := []string{
		labelStyle.Render("Scenario") + valueStyle.Render(m.scenario.Name),
		labelStyle.Render("Size") + valueStyle.Render(size),
		labelStyle.Render("Industry") + valueStyle.Render(industry),
		labelStyle.Render("Horizon") + valueStyle.Render(fmt.Sprintf("%d years", m.scenario.Years)),
	}
	return strings.Join(rows, "\n")
}
