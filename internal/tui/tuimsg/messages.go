// Package tuimsg holds the messages scenes send to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/output"
)

// ScenarioChangedMsg carries an edited scenario; the root model recalculates on receipt
type ScenarioChangedMsg struct {
	Scenario config.Scenario
}

// IncumbentSelectedMsg switches the active incumbent, e.g. from the vendor ranking
type IncumbentSelectedMsg struct {
	VendorID string
}

// CalculationCompleteMsg returns a finished single comparison. Generation
// identifies the scenario edit it was computed for; stale results are dropped.
type CalculationCompleteMsg struct {
	Generation int
	Report     *output.Report
	Err        error
}

// VendorComparisonCompleteMsg returns a finished multi-vendor ranking
type VendorComparisonCompleteMsg struct {
	Generation int
	Comparison *compare.VendorComparison
	Err        error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
