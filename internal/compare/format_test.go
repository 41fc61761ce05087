package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Base Scenario",
		ConfigPath:       "/path/to/scenario.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName: "Base Scenario",
			Incumbent:    "cisco",
			Reference:    "portnox",
			Size:         "medium",
			Years:        3,
			IncumbentTCO: decimal.NewFromInt(1500000),
			ReferenceTCO: decimal.NewFromInt(450000),
			TotalSavings: decimal.NewFromInt(1050000),
			PaybackYears: decimal.NewFromFloat(0.12),
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:             "Base Scenario_multi_site_5",
				Description:              "Spread the deployment across 5 locations",
				Incumbent:                "cisco",
				Reference:                "portnox",
				Size:                     "medium",
				Years:                    3,
				IncumbentTCO:             decimal.NewFromInt(2100000),
				ReferenceTCO:             decimal.NewFromInt(522000),
				TotalSavings:             decimal.NewFromInt(1578000),
				SavingsDiffFromBase:      decimal.NewFromInt(528000),
				IncumbentTCODiffFromBase: decimal.NewFromInt(600000),
				NoPayback:                true,
			},
		},
		Recommendations: []string{"Largest Savings: Base Scenario_multi_site_5 adds $528000 of savings over the base scenario"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	result := (&TableFormatter{}).Format(sampleComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	for _, want := range []string{
		"NAC SCENARIO COMPARISON",
		"Base Scenario: Base Scenario",
		"Configuration: /path/to/scenario.yaml",
		"$1.50M",
		"$450.0K",
		"none",
		"COMPARISON TO BASE",
		"Savings:          +$528.0K",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected output to contain %q\n%s", want, result)
		}
	}
}

func TestTableFormatter_FormatVendors(t *testing.T) {
	vc := &VendorComparison{
		Reference: "portnox",
		Industry:  "Retail",
		Entries: []ComparisonResult{
			{Incumbent: "aruba", Rank: 2, TotalSavings: decimal.NewFromInt(400000)},
			{Incumbent: "cisco", Rank: 1, TotalSavings: decimal.NewFromInt(900000),
				SavingsPercentage: decimal.NewNullDecimal(decimal.NewFromFloat(70.25))},
		},
	}

	result := (&TableFormatter{}).FormatVendors(vc)

	if strings.Index(result, "cisco") > strings.Index(result, "aruba") {
		t.Error("Expected rank order in table")
	}
	if !strings.Contains(result, "70.3%") && !strings.Contains(result, "70.2%") {
		t.Errorf("Expected savings percentage in output\n%s", result)
	}
	if !strings.Contains(result, "undefined") {
		t.Error("Expected undefined marker for a missing percentage")
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	result := (&TableFormatter{}).FormatCompact(sampleComparisonSet())

	if !strings.HasPrefix(result, "Base: Base Scenario | ") {
		t.Errorf("Unexpected prefix: %s", result)
	}
	if !strings.Contains(result, "+$528.0K") {
		t.Errorf("Expected delta in compact output: %s", result)
	}
}

func TestTableFormatter_FormatDecimal(t *testing.T) {
	tf := &TableFormatter{}
	tests := map[string]decimal.Decimal{
		"999":   decimal.NewFromInt(999),
		"1.5K":  decimal.NewFromInt(1500),
		"2.50M": decimal.NewFromInt(2500000),
	}
	for want, d := range tests {
		if got := tf.formatDecimal(d); got != want {
			t.Errorf("formatDecimal(%s) = %s, want %s", d, got, want)
		}
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	output, err := (&CSVFormatter{}).Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(records))
	}
	if len(records[0]) != len(csvHeader) {
		t.Errorf("Expected %d columns, got %d", len(csvHeader), len(records[0]))
	}
	if records[1][1] != "base" || records[2][1] != "alternative" {
		t.Errorf("Unexpected row types: %s, %s", records[1][1], records[2][1])
	}
	if records[1][11] != "undefined" {
		t.Errorf("Expected undefined savings percentage, got %s", records[1][11])
	}
	if records[2][13] != "none" {
		t.Errorf("Expected no payback marker, got %s", records[2][13])
	}
	if records[1][10] != "1050000.00" {
		t.Errorf("Expected savings 1050000.00, got %s", records[1][10])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		output, err := (&JSONFormatter{Pretty: pretty}).Format(sampleComparisonSet())
		if err != nil {
			t.Fatalf("Format error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal([]byte(output), &decoded); err != nil {
			t.Fatalf("Invalid JSON: %v", err)
		}
		if decoded["base_scenario_name"] != "Base Scenario" {
			t.Errorf("Unexpected base name: %v", decoded["base_scenario_name"])
		}
		base := decoded["base_result"].(map[string]any)
		if base["savings_percentage"] != nil {
			t.Errorf("Expected null savings percentage, got %v", base["savings_percentage"])
		}
		if pretty != strings.Contains(output, "\n  ") {
			t.Errorf("Pretty=%v produced unexpected layout", pretty)
		}
	}
}
