package reference

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/nactco/internal/domain"
)

const (
	defaultPrimaryColor   = "#6b7280"
	defaultSecondaryColor = "#374151"
)

// VendorIDs returns vendor ids in catalog order
func (c *Catalog) VendorIDs() []string {
	return append([]string(nil), c.vendorOrder...)
}

// IncumbentIDs returns every vendor id except the reference vendor, in catalog order
func (c *Catalog) IncumbentIDs() []string {
	ids := make([]string, 0, len(c.vendorOrder))
	for _, id := range c.vendorOrder {
		if id != c.referenceVendor {
			ids = append(ids, id)
		}
	}
	return ids
}

// Vendors returns vendor details in catalog order
func (c *Catalog) Vendors() []domain.VendorDetails {
	out := make([]domain.VendorDetails, 0, len(c.vendorOrder))
	for _, id := range c.vendorOrder {
		out = append(out, c.vendors[id].VendorDetails)
	}
	return out
}

// Vendor looks up vendor details by id
func (c *Catalog) Vendor(id string) (domain.VendorDetails, error) {
	v, ok := c.vendors[id]
	if !ok {
		return domain.VendorDetails{}, &NotFoundError{Kind: "vendor", Key: id}
	}
	return v.VendorDetails, nil
}

// CostFactors looks up the cost factors for a vendor and size band
func (c *Catalog) CostFactors(vendorID string, size domain.SizeBandID) (domain.CostFactors, error) {
	v, ok := c.vendors[vendorID]
	if !ok {
		return domain.CostFactors{}, &NotFoundError{Kind: "vendor", Key: vendorID}
	}
	costs, ok := v.Costs[size]
	if !ok {
		return domain.CostFactors{}, &NotFoundError{Kind: "cost factors", Key: fmt.Sprintf("%s/%s", vendorID, size)}
	}
	return costs, nil
}

// Timeline looks up the implementation timeline for a vendor and size band
func (c *Catalog) Timeline(vendorID string, size domain.SizeBandID) (domain.ImplementationTimeline, error) {
	v, ok := c.vendors[vendorID]
	if !ok {
		return domain.ImplementationTimeline{}, &NotFoundError{Kind: "vendor", Key: vendorID}
	}
	tl, ok := v.Timelines[size]
	if !ok {
		return domain.ImplementationTimeline{}, &NotFoundError{Kind: "timeline", Key: fmt.Sprintf("%s/%s", vendorID, size)}
	}
	return tl, nil
}

// FeatureScores returns a vendor's feature ratings in catalog feature order
func (c *Catalog) FeatureScores(vendorID string) ([]domain.VendorFeature, error) {
	v, ok := c.vendors[vendorID]
	if !ok {
		return nil, &NotFoundError{Kind: "vendor", Key: vendorID}
	}
	out := make([]domain.VendorFeature, 0, len(v.Features))
	for _, name := range c.featureOrder {
		if rating, ok := v.Features[name]; ok {
			out = append(out, domain.VendorFeature{Feature: name, Rating: rating})
		}
	}
	return out, nil
}

// FeatureScoreTotal sums a vendor's feature scores
func (c *Catalog) FeatureScoreTotal(vendorID string) (int, error) {
	features, err := c.FeatureScores(vendorID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, f := range features {
		total += f.Rating.Score
	}
	return total, nil
}

// VendorColor returns the vendor's brand color, or a neutral gray for unknown vendors
func (c *Catalog) VendorColor(vendorID string, primary bool) string {
	v, ok := c.vendors[vendorID]
	switch {
	case ok && primary && v.PrimaryColor != "":
		return v.PrimaryColor
	case ok && !primary && v.SecondaryColor != "":
		return v.SecondaryColor
	case primary:
		return defaultPrimaryColor
	default:
		return defaultSecondaryColor
	}
}

// SizeBands returns the size bands in ascending order
func (c *Catalog) SizeBands() []domain.SizeBand {
	return append([]domain.SizeBand(nil), c.sizeBands...)
}

// SizeBand looks up a size band by id
func (c *Catalog) SizeBand(id domain.SizeBandID) (domain.SizeBand, error) {
	for _, b := range c.sizeBands {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.SizeBand{}, &NotFoundError{Kind: "size band", Key: string(id)}
}

// SizeBandForDevices picks the band whose range covers the device count.
// Counts above the largest band map to that band.
func (c *Catalog) SizeBandForDevices(devices int) (domain.SizeBand, error) {
	if devices < 1 {
		return domain.SizeBand{}, fmt.Errorf("device count must be at least 1, got %d", devices)
	}
	var largest domain.SizeBand
	for _, b := range c.sizeBands {
		if b.Contains(devices) {
			return b, nil
		}
		if b.MaxDevices > largest.MaxDevices {
			largest = b
		}
	}
	return largest, nil
}

// Industries returns industry profiles in catalog order
func (c *Catalog) Industries() []domain.IndustryProfile {
	out := make([]domain.IndustryProfile, 0, len(c.industryOrder))
	for _, id := range c.industryOrder {
		out = append(out, c.industries[id])
	}
	return out
}

// Industry looks up an industry profile by id
func (c *Catalog) Industry(id string) (domain.IndustryProfile, error) {
	p, ok := c.industries[id]
	if !ok {
		return domain.IndustryProfile{}, &NotFoundError{Kind: "industry", Key: id}
	}
	return p, nil
}

// IndustryDefaults derives device count and downtime cost for a headcount in an industry
func (c *Catalog) IndustryDefaults(industryID string, employees int) (domain.IndustryDefaults, error) {
	p, err := c.Industry(industryID)
	if err != nil {
		return domain.IndustryDefaults{}, err
	}
	if employees < 1 {
		return domain.IndustryDefaults{}, fmt.Errorf("employee count must be at least 1, got %d", employees)
	}

	return domain.IndustryDefaults{
		Industry:            p.ID,
		Employees:           employees,
		DeviceCount:         int(math.Ceil(float64(employees) * p.DeviceDensity)),
		WirelessPercentage:  p.WirelessPercentage,
		BYODPercentage:      p.BYODPercentage,
		IoTPercentage:       p.IoTPercentage,
		DowntimeCostPerHour: math.Ceil(p.DowntimeCostHourly * float64(employees) / 100),
		ComplianceNeeds:     append([]string(nil), p.ComplianceNeeds...),
		RecommendedVendors:  append([]string(nil), p.RecommendedVendors...),
	}, nil
}

// Metrics returns every ROI metric definition
func (c *Catalog) Metrics() []domain.ROIMetric {
	return append([]domain.ROIMetric(nil), c.metrics...)
}

// MetricsByCategory returns the metrics of one category
func (c *Catalog) MetricsByCategory(category domain.MetricCategory) []domain.ROIMetric {
	var out []domain.ROIMetric
	for _, m := range c.metrics {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Metric looks up an ROI metric by id
func (c *Catalog) Metric(id string) (domain.ROIMetric, error) {
	for _, m := range c.metrics {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.ROIMetric{}, &NotFoundError{Kind: "metric", Key: id}
}

// Benchmarks returns the published industry benchmarks
func (c *Catalog) Benchmarks() domain.IndustryBenchmarks {
	return c.benchmarks
}
