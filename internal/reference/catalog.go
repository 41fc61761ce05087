// Package reference holds the read-only NAC reference catalog: vendors, per-size
// cost factors and implementation timelines, industry profiles and ROI metrics.
// A Catalog is immutable after load and safe for concurrent use.
package reference

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-version"
	"github.com/rgehrsitz/nactco/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// SupportedSchema is the catalog schema range this build understands
const SupportedSchema = ">= 1.0, < 2.0"

type vendorRecord struct {
	domain.VendorDetails `yaml:",inline"`
	Costs                map[domain.SizeBandID]domain.CostFactors            `yaml:"costs"`
	Timelines            map[domain.SizeBandID]domain.ImplementationTimeline `yaml:"timelines"`
	Features             map[string]domain.FeatureRating                     `yaml:"features"`
}

type catalogFile struct {
	SchemaVersion   string                    `yaml:"schema_version"`
	ReferenceVendor string                    `yaml:"reference_vendor"`
	SizeBands       []domain.SizeBand         `yaml:"size_bands"`
	Vendors         []vendorRecord            `yaml:"vendors"`
	FeatureOrder    []string                  `yaml:"feature_order"`
	Industries      []domain.IndustryProfile  `yaml:"industries"`
	Metrics         []domain.ROIMetric        `yaml:"metrics"`
	Benchmarks      domain.IndustryBenchmarks `yaml:"benchmarks"`
}

// Catalog is the loaded reference data set
type Catalog struct {
	schemaVersion   string
	referenceVendor string
	sizeBands       []domain.SizeBand
	vendorOrder     []string
	vendors         map[string]vendorRecord
	featureOrder    []string
	industryOrder   []string
	industries      map[string]domain.IndustryProfile
	metrics         []domain.ROIMetric
	benchmarks      domain.IndustryBenchmarks
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog compiled into the binary. It is parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// Load returns the catalog at path, or the embedded catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and validates a catalog file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML, checks its schema version and validates its contents
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := checkSchema(file.SchemaVersion); err != nil {
		return nil, err
	}

	c := &Catalog{
		schemaVersion:   file.SchemaVersion,
		referenceVendor: file.ReferenceVendor,
		sizeBands:       file.SizeBands,
		vendors:         make(map[string]vendorRecord, len(file.Vendors)),
		featureOrder:    file.FeatureOrder,
		industries:      make(map[string]domain.IndustryProfile, len(file.Industries)),
		metrics:         file.Metrics,
		benchmarks:      file.Benchmarks,
	}

	for _, v := range file.Vendors {
		if _, dup := c.vendors[v.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate vendor %q", v.ID)
		}
		c.vendors[v.ID] = v
		c.vendorOrder = append(c.vendorOrder, v.ID)
	}
	for _, ind := range file.Industries {
		if _, dup := c.industries[ind.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate industry %q", ind.ID)
		}
		c.industries[ind.ID] = ind
		c.industryOrder = append(c.industryOrder, ind.ID)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func checkSchema(raw string) error {
	if raw == "" {
		return fmt.Errorf("invalid catalog: schema_version is required")
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("invalid catalog schema_version %q: %w", raw, err)
	}
	constraint, err := version.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("invalid schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported catalog schema_version %s (supported %s)", v, SupportedSchema)
	}
	return nil
}

func (c *Catalog) validate() error {
	if len(c.vendors) == 0 {
		return fmt.Errorf("invalid catalog: no vendors")
	}
	if _, ok := c.vendors[c.referenceVendor]; !ok {
		return fmt.Errorf("invalid catalog: reference vendor %q is not defined", c.referenceVendor)
	}

	seen := map[domain.SizeBandID]bool{}
	for _, b := range c.sizeBands {
		if !b.ID.Valid() {
			return fmt.Errorf("invalid catalog: unknown size band %q", b.ID)
		}
		if b.MinDevices < 1 || b.MaxDevices < b.MinDevices || !b.Contains(b.DefaultDevices) {
			return fmt.Errorf("invalid catalog: size band %s has an inconsistent range", b.ID)
		}
		seen[b.ID] = true
	}
	for _, id := range domain.AllSizeBands {
		if !seen[id] {
			return fmt.Errorf("invalid catalog: size band %s is missing", id)
		}
	}

	for _, id := range c.vendorOrder {
		v := c.vendors[id]
		for _, size := range domain.AllSizeBands {
			costs, ok := v.Costs[size]
			if !ok {
				return fmt.Errorf("invalid catalog: vendor %s has no %s cost factors", id, size)
			}
			if field := costs.Negative(); field != "" {
				return fmt.Errorf("invalid catalog: vendor %s %s %s is negative", id, size, field)
			}
			timeline, ok := v.Timelines[size]
			if !ok {
				return fmt.Errorf("invalid catalog: vendor %s has no %s timeline", id, size)
			}
			if timeline.HasNegative() {
				return fmt.Errorf("invalid catalog: vendor %s %s timeline has negative days", id, size)
			}
		}
	}

	for _, id := range c.industryOrder {
		ind := c.industries[id]
		if ind.DeviceDensity < 0 || ind.DowntimeCostHourly < 0 {
			return fmt.Errorf("invalid catalog: industry %s has negative benchmarks", id)
		}
		for _, vid := range ind.RecommendedVendors {
			if _, ok := c.vendors[vid]; !ok {
				return fmt.Errorf("invalid catalog: industry %s recommends unknown vendor %q", id, vid)
			}
		}
	}
	return nil
}

// SchemaVersion returns the schema version declared by the catalog file
func (c *Catalog) SchemaVersion() string { return c.schemaVersion }

// ReferenceVendorID returns the id of the cloud-native reference vendor
func (c *Catalog) ReferenceVendorID() string { return c.referenceVendor }
