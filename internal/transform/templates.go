package transform

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/nactco/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common NAC deployment what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Footprint
	registry.Register(Template{
		Name:        "multi_site_5",
		Description: "Spread the deployment across 5 locations",
		Transforms:  []ScenarioTransform{&SetLocations{Count: 5}},
	})

	registry.Register(Template{
		Name:        "multi_site_10",
		Description: "Spread the deployment across 10 locations",
		Transforms:  []ScenarioTransform{&SetLocations{Count: 10}},
	})

	registry.Register(Template{
		Name:        "legacy_heavy",
		Description: "40% of devices are legacy and need special handling",
		Transforms:  []ScenarioTransform{&SetLegacy{Percentage: 40}},
	})

	registry.Register(Template{
		Name:        "cloud_first",
		Description: "Integrate with cloud identity and SaaS services",
		Transforms:  []ScenarioTransform{&ToggleCloud{Enabled: true}},
	})

	registry.Register(Template{
		Name:        "zero_trust",
		Description: "Complex authentication with high-complexity custom policies",
		Transforms: []ScenarioTransform{
			&ToggleAuth{Enabled: true},
			&SetPolicies{Level: domain.LevelHigh},
		},
	})

	registry.Register(Template{
		Name:        "simplified",
		Description: "Low-complexity single-site network with every optional flag off",
		Transforms: []ScenarioTransform{
			&SetNetworkComplexity{Level: domain.LevelLow},
			&SetLocations{Count: 1},
			&SetLegacy{Percentage: 0},
			&ToggleAuth{Enabled: false},
			&ToggleCloud{Enabled: false},
			&ClearPolicies{},
		},
	})

	// Horizon and scale
	registry.Register(Template{
		Name:        "five_year",
		Description: "Project costs over 5 years",
		Transforms:  []ScenarioTransform{&SetYears{Years: 5}},
	})

	registry.Register(Template{
		Name:        "enterprise_scale",
		Description: "Enterprise size band on a high-complexity, 10-site network",
		Transforms: []ScenarioTransform{
			&SetSize{Size: domain.SizeEnterprise},
			&SetNetworkComplexity{Level: domain.LevelHigh},
			&SetLocations{Count: 10},
		},
	})

	return registry
}
