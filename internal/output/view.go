package output

import (
	"time"

	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
)

// Number is a JSON-safe float: NaN and infinities encode as null
type Number *float64

func num(v float64) Number {
	if !finite(v) {
		return nil
	}
	return &v
}

// ReportView is the JSON shape of a report
type ReportView struct {
	ID               string                   `json:"id"`
	GeneratedAt      time.Time                `json:"generated_at"`
	Scenario         config.Scenario          `json:"scenario"`
	Incumbent        domain.VendorDetails     `json:"incumbent"`
	Reference        domain.VendorDetails     `json:"reference"`
	Industry         *domain.IndustryProfile  `json:"industry,omitempty"`
	IndustryDefaults *domain.IndustryDefaults `json:"industry_defaults,omitempty"`
	Result           ResultView               `json:"result"`
	Assumptions      []string                 `json:"assumptions"`
}

// ResultView is the JSON shape of an engine result
type ResultView struct {
	IncumbentMultiplier Number              `json:"incumbent_multiplier"`
	ReferenceMultiplier Number              `json:"reference_multiplier"`
	TCO                 TCOView             `json:"tco"`
	Implementation      ImplementationView  `json:"implementation"`
	YearByYear          []YearView          `json:"year_by_year"`
	IncumbentBreakdown  []BreakdownItemView `json:"incumbent_breakdown"`
	ReferenceBreakdown  []BreakdownItemView `json:"reference_breakdown"`
	BreakEvenYear       int                 `json:"break_even_year"`
}

type TCOView struct {
	IncumbentTCO          Number `json:"incumbent_tco"`
	ReferenceTCO          Number `json:"reference_tco"`
	TotalSavings          Number `json:"total_savings"`
	SavingsPercentage     Number `json:"savings_percentage"`
	AnnualSavings         Number `json:"annual_savings"`
	InitialCostSavings    Number `json:"initial_cost_savings"`
	IncumbentInitialCosts Number `json:"incumbent_initial_costs"`
	IncumbentAnnualCosts  Number `json:"incumbent_annual_costs"`
	ReferenceInitialCosts Number `json:"reference_initial_costs"`
	ReferenceAnnualCosts  Number `json:"reference_annual_costs"`
	ROI                   Number `json:"roi"`
	PaybackPeriod         Number `json:"payback_period_years"`
	NoPayback             bool   `json:"no_payback"`
}

type ImplementationView struct {
	IncumbentDays       Number `json:"incumbent_days"`
	ReferenceDays       Number `json:"reference_days"`
	DaysSaved           Number `json:"days_saved"`
	DaysSavedPercentage Number `json:"days_saved_percentage"`
}

type YearView struct {
	Year              string `json:"year"`
	Incumbent         Number `json:"incumbent"`
	Reference         Number `json:"reference"`
	Savings           Number `json:"savings"`
	CumulativeSavings Number `json:"cumulative_savings"`
}

type BreakdownItemView struct {
	Name  string `json:"name"`
	Value Number `json:"value"`
}

// NewReportView converts a report into its JSON-safe form
func NewReportView(r *Report) ReportView {
	return ReportView{
		ID:               r.ID,
		GeneratedAt:      r.GeneratedAt,
		Scenario:         r.Scenario,
		Incumbent:        r.Incumbent,
		Reference:        r.Reference,
		Industry:         r.Industry,
		IndustryDefaults: r.IndustryDefaults,
		Result:           NewResultView(r.Result),
		Assumptions:      r.Assumptions,
	}
}

// NewResultView converts an engine result into its JSON-safe form
func NewResultView(r *domain.ComparisonResult) ResultView {
	if r == nil {
		return ResultView{BreakEvenYear: -1}
	}
	tco := r.TCO
	impl := r.Implementation

	view := ResultView{
		IncumbentMultiplier: num(r.IncumbentMultiplier),
		ReferenceMultiplier: num(r.ReferenceMultiplier),
		TCO: TCOView{
			IncumbentTCO:          num(tco.IncumbentTCO),
			ReferenceTCO:          num(tco.ReferenceTCO),
			TotalSavings:          num(tco.TotalSavings),
			SavingsPercentage:     num(tco.SavingsPercentage),
			AnnualSavings:         num(tco.AnnualSavings),
			InitialCostSavings:    num(tco.InitialCostSavings),
			IncumbentInitialCosts: num(tco.IncumbentInitialCosts),
			IncumbentAnnualCosts:  num(tco.IncumbentAnnualCosts),
			ReferenceInitialCosts: num(tco.ReferenceInitialCosts),
			ReferenceAnnualCosts:  num(tco.ReferenceAnnualCosts),
			ROI:                   num(tco.ROI),
			PaybackPeriod:         num(tco.PaybackPeriod),
			NoPayback:             calculation.IsNoPayback(tco.PaybackPeriod),
		},
		Implementation: ImplementationView{
			IncumbentDays:       num(impl.IncumbentDays),
			ReferenceDays:       num(impl.ReferenceDays),
			DaysSaved:           num(impl.DaysSaved),
			DaysSavedPercentage: num(impl.DaysSavedPercentage),
		},
		YearByYear:         make([]YearView, 0, len(r.YearByYear)),
		IncumbentBreakdown: breakdownView(r.IncumbentBreakdown),
		ReferenceBreakdown: breakdownView(r.ReferenceBreakdown),
		BreakEvenYear:      calculation.BreakEvenYear(r.YearByYear),
	}
	for _, y := range r.YearByYear {
		view.YearByYear = append(view.YearByYear, YearView{
			Year:              y.Year,
			Incumbent:         num(y.Incumbent),
			Reference:         num(y.Reference),
			Savings:           num(y.Savings),
			CumulativeSavings: num(y.CumulativeSavings),
		})
	}
	return view
}

func breakdownView(items []domain.CostBreakdownItem) []BreakdownItemView {
	out := make([]BreakdownItemView, 0, len(items))
	for _, item := range items {
		out = append(out, BreakdownItemView{Name: item.Name, Value: num(item.Value)})
	}
	return out
}
