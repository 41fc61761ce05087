package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/reference"
	"github.com/rgehrsitz/nactco/internal/tui/components"
	"github.com/rgehrsitz/nactco/internal/tui/tuimsg"
	"github.com/rgehrsitz/nactco/internal/tui/tuistyles"
)

// VendorsModel ranks every incumbent against the reference vendor
type VendorsModel struct {
	catalog    *reference.Catalog
	comparison *compare.VendorComparison
	ranked     []compare.ComparisonResult
	current    string
	cursor     int
	width      int
	height     int
}

// NewVendorsModel creates a new vendor ranking scene
func NewVendorsModel(cat *reference.Catalog) *VendorsModel {
	return &VendorsModel{catalog: cat}
}

// SetComparison replaces the ranking; current marks the active incumbent
func (m *VendorsModel) SetComparison(vc *compare.VendorComparison, current string) {
	m.comparison = vc
	m.current = current
	m.ranked = nil
	if vc != nil {
		m.ranked = vc.Ranked()
	}
	if m.cursor >= len(m.ranked) {
		m.cursor = 0
	}
}

// SetSize updates the scene dimensions
func (m *VendorsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the vendors scene
func (m *VendorsModel) Update(msg tea.Msg) (*VendorsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.ranked) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < len(m.ranked)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", " "))):
		id := m.ranked[m.cursor].Incumbent
		return m, func() tea.Msg {
			return tuimsg.IncumbentSelectedMsg{VendorID: id}
		}
	}
	return m, nil
}

// View renders the vendor ranking
func (m *VendorsModel) View() string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Vendor Comparison"))
	content.WriteString("\n")
	if m.comparison != nil {
		content.WriteString(tuistyles.SubtitleStyle.Render(
			"Every incumbent vs " + m.vendorName(m.comparison.Reference) + ", ranked by savings"))
	}
	content.WriteString("\n\n")

	cards := make([]*components.VendorCard, 0, len(m.ranked))
	for i, entry := range m.ranked {
		cards = append(cards, &components.VendorCard{
			Name:       m.vendorName(entry.Incumbent),
			Entry:      entry,
			IsSelected: i == m.cursor,
			IsCurrent:  entry.Incumbent == m.current,
		})
	}
	content.WriteString(components.VendorTable(cards))

	if m.comparison != nil && len(m.comparison.Recommendations) > 0 {
		content.WriteString("\n\n")
		content.WriteString(tuistyles.TableHeaderStyle.Render("Recommendations"))
		for _, rec := range m.comparison.Recommendations {
			content.WriteString("\n  • " + rec)
		}
	}

	content.WriteString("\n\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("↑/↓ select • enter analyze vendor • * active incumbent"))
	return tuistyles.BorderStyle.Render(content.String())
}

func (m *VendorsModel) vendorName(id string) string {
	if m.catalog != nil {
		if v, err := m.catalog.Vendor(id); err == nil && v.Name != "" {
			return v.Name
		}
	}
	return id
}
