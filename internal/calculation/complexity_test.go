package calculation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nactco/internal/domain"
)

func TestComplexityMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		factors  domain.ComplexityFactors
		expected float64
	}{
		{
			name:     "defaults",
			factors:  domain.DefaultComplexityFactors(),
			expected: 1.0,
		},
		{
			name:     "low network",
			factors:  domain.ComplexityFactors{NetworkComplexity: domain.LevelLow, LocationCount: 1},
			expected: 0.9,
		},
		{
			name:     "high network",
			factors:  domain.ComplexityFactors{NetworkComplexity: domain.LevelHigh, LocationCount: 1},
			expected: 1.3,
		},
		{
			name: "locations ignored without flag",
			factors: domain.ComplexityFactors{
				NetworkComplexity: domain.LevelMedium,
				LocationCount:     8,
			},
			expected: 1.0,
		},
		{
			name: "five locations",
			factors: domain.ComplexityFactors{
				NetworkComplexity:    domain.LevelMedium,
				HasMultipleLocations: true,
				LocationCount:        5,
			},
			expected: 1.4,
		},
		{
			name: "location loading capped",
			factors: domain.ComplexityFactors{
				NetworkComplexity:    domain.LevelMedium,
				HasMultipleLocations: true,
				LocationCount:        40,
			},
			expected: 2.0,
		},
		{
			name: "legacy devices scale with share",
			factors: domain.ComplexityFactors{
				NetworkComplexity:      domain.LevelMedium,
				LocationCount:          1,
				HasLegacyDevices:       true,
				LegacyDevicePercentage: 50,
			},
			expected: 1.15,
		},
		{
			name: "policy level ignored without flag",
			factors: domain.ComplexityFactors{
				NetworkComplexity: domain.LevelMedium,
				LocationCount:     1,
				PolicyComplexity:  domain.LevelHigh,
			},
			expected: 1.0,
		},
		{
			name: "everything on",
			factors: domain.ComplexityFactors{
				NetworkComplexity:        domain.LevelHigh,
				HasMultipleLocations:     true,
				LocationCount:            5,
				HasComplexAuthentication: true,
				HasLegacyDevices:         true,
				LegacyDevicePercentage:   20,
				HasCloudIntegration:      true,
				HasCustomPolicies:        true,
				PolicyComplexity:         domain.LevelMedium,
			},
			// 1.3 + 0.4 + 0.15 + 0.06 + 0.10 + 0.15
			expected: 2.16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ComplexityMultiplier(tt.factors), 1e-9)
		})
	}
}

func TestComplexityMultiplier_PolicyLevels(t *testing.T) {
	base := domain.ComplexityFactors{NetworkComplexity: domain.LevelMedium, LocationCount: 1, HasCustomPolicies: true}

	for level, loading := range map[domain.Level]float64{
		domain.LevelLow:    0.05,
		domain.LevelMedium: 0.15,
		domain.LevelHigh:   0.25,
		domain.Level(""):   0,
	} {
		cf := base
		cf.PolicyComplexity = level
		assert.InDelta(t, 1+loading, ComplexityMultiplier(cf), 1e-9, "policy level %q", level)
	}
}

func TestComplexityMultiplier_MonotonicInPolicyLevel(t *testing.T) {
	levels := []domain.Level{domain.LevelHigh, domain.Level(""), domain.LevelLow, domain.LevelMedium}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Rank() < levels[j].Rank() })
	require.Equal(t, []domain.Level{"", domain.LevelLow, domain.LevelMedium, domain.LevelHigh}, levels)

	cf := domain.DefaultComplexityFactors()
	cf.HasCustomPolicies = true

	prev := 0.0
	for _, level := range levels {
		cf.PolicyComplexity = level
		m := ComplexityMultiplier(cf)
		assert.GreaterOrEqual(t, m, prev, "policy level %q", level)
		prev = m
	}
}

func TestComplexityMultiplier_MonotonicInLocationCount(t *testing.T) {
	cf := domain.DefaultComplexityFactors()
	cf.HasMultipleLocations = true

	prev := 0.0
	for count := 1; count <= 15; count++ {
		cf.LocationCount = count
		m := ComplexityMultiplier(cf)
		assert.GreaterOrEqual(t, m, prev, "location count %d", count)
		prev = m
	}
	// the location loading caps at 1.0 from eleven sites on
	cf.LocationCount = 11
	assert.InDelta(t, prev, ComplexityMultiplier(cf), 1e-9)
}

func TestComplexityMultiplier_MonotonicInLegacyShare(t *testing.T) {
	cf := domain.DefaultComplexityFactors()
	cf.HasLegacyDevices = true

	prev := 0.0
	for pct := 0.0; pct <= 100; pct += 10 {
		cf.LegacyDevicePercentage = pct
		m := ComplexityMultiplier(cf)
		assert.GreaterOrEqual(t, m, prev)
		prev = m
	}
	assert.InDelta(t, 1.3, prev, 1e-9)
}

func TestDampenedMultiplier(t *testing.T) {
	assert.InDelta(t, 1.0, DampenedMultiplier(1.0), 1e-12)
	assert.InDelta(t, 1.464, DampenedMultiplier(2.16), 1e-9)
	assert.InDelta(t, 0.96, DampenedMultiplier(0.9), 1e-9)

	// the reference party never absorbs more overhead than the incumbent
	for _, raw := range []float64{1.0, 1.2, 1.5, 2.0, 3.5} {
		assert.LessOrEqual(t, DampenedMultiplier(raw), raw)
	}
}
