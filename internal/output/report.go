package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/reference"
)

// Undefined is rendered in place of NaN and infinite values
const Undefined = "undefined"

// Report is everything a formatter needs to render one comparison
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Scenario         config.Scenario          `json:"scenario"`
	Result           *domain.ComparisonResult `json:"result"`
	Incumbent        domain.VendorDetails     `json:"incumbent"`
	Reference        domain.VendorDetails     `json:"reference"`
	Industry         *domain.IndustryProfile  `json:"industry,omitempty"`
	IndustryDefaults *domain.IndustryDefaults `json:"industry_defaults,omitempty"`
	Assumptions      []string                 `json:"assumptions"`
}

// NewReport assembles a report for a resolved scenario and its engine result
func NewReport(cat *reference.Catalog, resolved *config.ResolvedScenario, result *domain.ComparisonResult) (*Report, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if resolved == nil || result == nil {
		return nil, fmt.Errorf("scenario and result are required")
	}

	s := resolved.Scenario
	incumbent, err := cat.Vendor(s.Incumbent)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor %s: %w", s.Incumbent, err)
	}
	ref, err := cat.Vendor(s.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor %s: %w", s.Reference, err)
	}

	report := &Report{
		ID:               uuid.New().String(),
		GeneratedAt:      time.Now().UTC(),
		Scenario:         s,
		Result:           result,
		Incumbent:        incumbent,
		Reference:        ref,
		IndustryDefaults: resolved.IndustryDefaults,
		Assumptions:      DefaultAssumptions,
	}
	if industry, err := cat.Industry(s.Industry); err == nil {
		report.Industry = &industry
	}

	return report, nil
}

// Title is the headline used by document formatters
func (r *Report) Title() string {
	return fmt.Sprintf("NAC TCO Analysis: %s vs %s", vendorName(r.Incumbent), vendorName(r.Reference))
}

func vendorName(v domain.VendorDetails) string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency renders whole dollars with thousands separators, e.g. $1,234,567
func FormatCurrency(v float64) string {
	if !finite(v) {
		return Undefined
	}

	d := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + groupThousands(d.String())
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatPercentage renders a percentage with one decimal place
func FormatPercentage(v float64) string {
	if !finite(v) {
		return Undefined
	}
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

// FormatTimePeriod renders a duration in days as days, months or years
func FormatTimePeriod(days float64) string {
	if !finite(days) {
		return Undefined
	}
	switch {
	case days < 30:
		return strconv.FormatFloat(days, 'f', -1, 64) + " days"
	case days < 365:
		months := int(math.Round(days / 30))
		if months == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", months)
	default:
		years := decimal.NewFromFloat(days / 365).StringFixed(1)
		if years == "1.0" {
			return "1.0 year"
		}
		return years + " years"
	}
}

// FormatPayback renders a payback period in years, spelling out the no-payback sentinel
func FormatPayback(years float64) string {
	if !finite(years) {
		return Undefined
	}
	if calculation.IsNoPayback(years) {
		return "No payback within horizon"
	}
	return decimal.NewFromFloat(years).StringFixed(1) + " years"
}

// FormatMultiplier renders a complexity multiplier, e.g. 1.35x
func FormatMultiplier(m float64) string {
	if !finite(m) {
		return Undefined
	}
	return decimal.NewFromFloat(m).StringFixed(2) + "x"
}
