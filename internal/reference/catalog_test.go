package reference

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c := mustDefault(t)

	assert.Equal(t, "1.2", c.SchemaVersion())
	assert.Equal(t, "portnox", c.ReferenceVendorID())
	assert.Equal(t, []string{"portnox", "cisco", "aruba", "forescout", "fortinet", "securew2", "ivanti", "microsoft"}, c.VendorIDs())
	assert.Len(t, c.IncumbentIDs(), 7)
	assert.NotContains(t, c.IncumbentIDs(), "portnox")
	assert.Len(t, c.Industries(), 8)
	assert.Len(t, c.SizeBands(), 4)
	assert.Len(t, c.Metrics(), 20)
}

func TestDefault_IsShared(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := Default()
			if err == nil {
				results[i] = c
			}
		}(i)
	}
	wg.Wait()

	for _, c := range results {
		assert.Same(t, results[0], c)
	}
}

func TestCostFactors(t *testing.T) {
	c := mustDefault(t)

	cisco, err := c.CostFactors("cisco", domain.SizeSmall)
	require.NoError(t, err)
	assert.Equal(t, domain.CostFactors{
		InitialHardwareCost:          75000,
		AnnualMaintenanceCost:        25000,
		AnnualLicensingCost:          40000,
		ImplementationServicesCost:   35000,
		TrainingCost:                 10000,
		NetworkRedesignCost:          15000,
		FTECount:                     1,
		EstimatedAnnualDowntimeHours: 24,
	}, cisco)

	portnox, err := c.CostFactors("portnox", domain.SizeSmall)
	require.NoError(t, err)
	assert.Equal(t, 0.0, portnox.InitialHardwareCost)
	assert.Equal(t, 25000.0, portnox.AnnualLicensingCost)
	assert.Equal(t, 0.25, portnox.FTECount)
	assert.Equal(t, 4.0, portnox.EstimatedAnnualDowntimeHours)

	ms, err := c.CostFactors("microsoft", domain.SizeEnterprise)
	require.NoError(t, err)
	assert.Equal(t, 2.5, ms.FTECount)
}

func TestLookups_NotFound(t *testing.T) {
	c := mustDefault(t)

	_, err := c.CostFactors("nosuch", domain.SizeSmall)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "vendor not found: nosuch")

	_, err = c.CostFactors("cisco", domain.SizeBandID("huge"))
	assert.True(t, IsNotFound(err))

	_, err = c.Timeline("cisco", domain.SizeBandID("huge"))
	assert.True(t, IsNotFound(err))

	_, err = c.Industry("aerospace")
	assert.True(t, IsNotFound(err))

	_, err = c.Metric("nosuch")
	assert.True(t, IsNotFound(err))

	wrapped := fmt.Errorf("resolve: %w", &NotFoundError{Kind: "vendor", Key: "x"})
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(fmt.Errorf("other")))
}

func TestTimeline(t *testing.T) {
	c := mustDefault(t)

	tl, err := c.Timeline("cisco", domain.SizeSmall)
	require.NoError(t, err)
	assert.Equal(t, 100, tl.TotalDays())

	tl, err = c.Timeline("portnox", domain.SizeSmall)
	require.NoError(t, err)
	assert.Equal(t, 10, tl.TotalDays())
}

func TestSizeBandForDevices(t *testing.T) {
	c := mustDefault(t)

	tests := []struct {
		devices int
		want    domain.SizeBandID
	}{
		{1, domain.SizeSmall},
		{500, domain.SizeSmall},
		{501, domain.SizeMedium},
		{2500, domain.SizeMedium},
		{10000, domain.SizeLarge},
		{10001, domain.SizeEnterprise},
		{250000, domain.SizeEnterprise},
	}
	for _, tt := range tests {
		band, err := c.SizeBandForDevices(tt.devices)
		require.NoError(t, err)
		assert.Equal(t, tt.want, band.ID, "devices=%d", tt.devices)
	}

	_, err := c.SizeBandForDevices(0)
	assert.Error(t, err)
}

func TestIndustryDefaults(t *testing.T) {
	c := mustDefault(t)

	d, err := c.IndustryDefaults("healthcare", 1000)
	require.NoError(t, err)
	assert.Equal(t, 5200, d.DeviceCount)
	assert.Equal(t, 85000.0, d.DowntimeCostPerHour)
	assert.Equal(t, 70.0, d.WirelessPercentage)
	assert.Contains(t, d.ComplianceNeeds, "HIPAA")
	assert.Equal(t, []string{"portnox", "forescout", "cisco", "aruba"}, d.RecommendedVendors)

	// ceil on fractional results
	d, err = c.IndustryDefaults("financial", 33)
	require.NoError(t, err)
	assert.Equal(t, 126, d.DeviceCount)           // 33 * 3.8 = 125.4
	assert.Equal(t, 3696.0, d.DowntimeCostPerHour) // 11200 * 33 / 100

	_, err = c.IndustryDefaults("retail", 0)
	assert.Error(t, err)
}

func TestFeatureScores(t *testing.T) {
	c := mustDefault(t)

	features, err := c.FeatureScores("portnox")
	require.NoError(t, err)
	require.Len(t, features, 15)
	assert.Equal(t, "deployment_model", features[0].Feature)
	assert.Equal(t, "Cloud-native SaaS", features[0].Rating.Value)

	total, err := c.FeatureScoreTotal("microsoft")
	require.NoError(t, err)
	assert.Equal(t, 27, total)
}

func TestVendorColor(t *testing.T) {
	c := mustDefault(t)
	assert.Equal(t, "#049fd9", c.VendorColor("cisco", true))
	assert.Equal(t, "#005073", c.VendorColor("cisco", false))
	assert.Equal(t, "#6b7280", c.VendorColor("unknown", true))
	assert.Equal(t, "#374151", c.VendorColor("unknown", false))
}

func TestMetricsByCategory(t *testing.T) {
	c := mustDefault(t)
	security := c.MetricsByCategory(domain.MetricSecurity)
	require.Len(t, security, 3)
	for _, m := range security {
		assert.Equal(t, domain.MetricSecurity, m.Category)
	}

	m, err := c.Metric("downtimeReduction")
	require.NoError(t, err)
	assert.Equal(t, 24.0, m.BenchmarkData["medium"])
}

func TestBenchmarks(t *testing.T) {
	b := mustDefault(t).Benchmarks()
	assert.Equal(t, 4350000.0, b.AverageDataBreachCost["overall"])
	assert.Equal(t, 2.5, b.IncidentResponseHours.WithNAC)
	assert.Equal(t, 450.0, b.CompliancePerDevice.Automated)
}

func TestParse_SchemaVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr string
	}{
		{"missing", "", "schema_version is required"},
		{"garbage", "abc", "invalid catalog schema_version"},
		{"too new", "2.0", "unsupported catalog schema_version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(string(embeddedCatalog), `schema_version: "1.2"`, fmt.Sprintf("schema_version: %q", tt.version), 1)
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_RejectsInvalidData(t *testing.T) {
	t.Run("unknown reference vendor", func(t *testing.T) {
		data := strings.Replace(string(embeddedCatalog), "reference_vendor: portnox", "reference_vendor: nobody", 1)
		_, err := Parse([]byte(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reference vendor")
	})

	t.Run("negative cost", func(t *testing.T) {
		data := strings.Replace(string(embeddedCatalog), "annual_maintenance_cost: 5000", "annual_maintenance_cost: -5000", 1)
		_, err := Parse([]byte(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "annual_maintenance_cost is negative")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("vendors: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	override := strings.Replace(string(embeddedCatalog), "annual_licensing_cost: 40000", "annual_licensing_cost: 42000", 1)
	require.NoError(t, os.WriteFile(path, []byte(override), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	cisco, err := c.CostFactors("cisco", domain.SizeSmall)
	require.NoError(t, err)
	assert.Equal(t, 42000.0, cisco.AnnualLicensingCost)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	def, err := Load("")
	require.NoError(t, err)
	assert.Same(t, mustDefault(t), def)
}
