package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rgehrsitz/nactco/internal/breakeven"
	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/domain"
	"github.com/rgehrsitz/nactco/internal/output"
	"github.com/rgehrsitz/nactco/internal/reference"
)

// errMissingScenario answers a wrapped endpoint posted without a "scenario" key
const errMissingScenario = `request body must wrap the scenario as {"scenario": {...}}`

// errorResponse is the body of every non-2xx reply
type errorResponse struct {
	Error string `json:"error"`
}

// VendorResponse is a vendor with its feature scorecard
type VendorResponse struct {
	Vendor        domain.VendorDetails   `json:"vendor"`
	FeatureScores []domain.VendorFeature `json:"feature_scores"`
	FeatureTotal  int                    `json:"feature_total"`
}

// VendorComparisonRequest compares the scenario against several incumbents
type VendorComparisonRequest struct {
	Scenario *config.Scenario `json:"scenario"`
	Vendors  []string         `json:"vendors,omitempty"`
}

// SensitivityRequest sweeps the named parameters; empty means all of them
type SensitivityRequest struct {
	Scenario   *config.Scenario `json:"scenario"`
	Parameters []string         `json:"parameters,omitempty"`
}

// BreakEvenRequest solves one target, or every target when Target is empty
type BreakEvenRequest struct {
	Scenario *config.Scenario `json:"scenario"`
	Target   string           `json:"target,omitempty"`
	Bounds   breakeven.Bounds `json:"bounds"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":         "ok",
		"catalog_schema": s.catalog.SchemaVersion(),
	})
}

func (s *Server) listVendors(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Vendors())
}

func (s *Server) getVendor(c echo.Context) error {
	id := c.Param("id")
	vendor, err := s.catalog.Vendor(id)
	if err != nil {
		return s.fail(c, err)
	}
	scores, err := s.catalog.FeatureScores(id)
	if err != nil {
		return s.fail(c, err)
	}
	total, err := s.catalog.FeatureScoreTotal(id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, VendorResponse{Vendor: vendor, FeatureScores: scores, FeatureTotal: total})
}

func (s *Server) listIndustries(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.Industries())
}

func (s *Server) industryDefaults(c echo.Context) error {
	id := c.Param("id")
	if _, err := s.catalog.Industry(id); err != nil {
		return s.fail(c, err)
	}

	raw := c.QueryParam("employees")
	if raw == "" {
		return badRequest(c, "employees parameter required")
	}
	employees, err := strconv.Atoi(raw)
	if err != nil || employees < 1 {
		return badRequest(c, "invalid employees value")
	}

	defaults, err := s.catalog.IndustryDefaults(id, employees)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, defaults)
}

func (s *Server) listMetrics(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return c.JSON(http.StatusOK, s.catalog.MetricsByCategory(domain.MetricCategory(category)))
	}
	return c.JSON(http.StatusOK, s.catalog.Metrics())
}

// calculate runs one scenario. JSON by default; ?format= selects any report formatter.
func (s *Server) calculate(c echo.Context) error {
	var scenario config.Scenario
	if err := c.Bind(&scenario); err != nil {
		return badRequest(c, "invalid request body")
	}

	ctx := c.Request().Context()
	resolved, err := config.Resolve(s.catalog, scenario)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.engine.Calculate(ctx, resolved.Inputs)
	if err != nil {
		return s.fail(c, err)
	}
	report, err := output.NewReport(s.catalog, resolved, result)
	if err != nil {
		return s.fail(c, err)
	}

	format := c.QueryParam("format")
	if format == "" || format == "json" {
		return c.JSON(http.StatusOK, output.NewReportView(report))
	}

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return badRequest(c, fmt.Sprintf("unknown format: %s", format))
	}
	data, err := formatter.Format(report)
	if err != nil {
		return s.fail(c, err)
	}
	return c.Blob(http.StatusOK, contentType(formatter.Name()), data)
}

func (s *Server) compareVendors(c echo.Context) error {
	var req VendorComparisonRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Scenario == nil {
		return badRequest(c, errMissingScenario)
	}

	vc, err := s.compare.CompareVendors(c.Request().Context(), *req.Scenario, req.Vendors)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, vc)
}

func (s *Server) analyzeSensitivity(c echo.Context) error {
	var req SensitivityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Scenario == nil {
		return badRequest(c, errMissingScenario)
	}

	resolved, err := config.Resolve(s.catalog, *req.Scenario)
	if err != nil {
		return s.fail(c, err)
	}

	params, err := selectParameters(resolved.Inputs, req.Parameters)
	if err != nil {
		return badRequest(c, err.Error())
	}

	analysis, err := s.sensitivity.Analyze(c.Request().Context(), resolved.Scenario.Name, resolved.Inputs, params)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, output.NewSensitivityView(analysis))
}

func (s *Server) solveBreakEven(c echo.Context) error {
	var req BreakEvenRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Scenario == nil {
		return badRequest(c, errMissingScenario)
	}

	resolved, err := config.Resolve(s.catalog, *req.Scenario)
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	if req.Target == "" {
		multi, err := s.solver.SolveAll(ctx, resolved.Inputs, nil)
		if err != nil {
			return s.fail(c, err)
		}
		return c.JSON(http.StatusOK, multi)
	}

	target, err := breakeven.ParseTarget(req.Target)
	if err != nil {
		return badRequest(c, err.Error())
	}
	result, err := s.solver.Solve(ctx, breakeven.Request{
		Inputs: resolved.Inputs,
		Target: target,
		Bounds: req.Bounds,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// selectParameters picks default sweep ranges by name, keeping request order
func selectParameters(inputs domain.CalculationInputs, names []string) ([]domain.SensitivityParameter, error) {
	defaults := calculation.DefaultParameters(inputs)
	if len(names) == 0 {
		return defaults, nil
	}

	byName := make(map[string]domain.SensitivityParameter, len(defaults))
	for _, p := range defaults {
		byName[p.Name] = p
	}
	params := make([]domain.SensitivityParameter, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown sensitivity parameter: %s", name)
		}
		params = append(params, p)
	}
	return params, nil
}

// fail maps domain errors onto HTTP status codes
func (s *Server) fail(c echo.Context, err error) error {
	var be *breakeven.BreakEvenError

	switch {
	case config.IsValidationError(err), errors.Is(err, compare.ErrNoVendors):
		return badRequest(c, err.Error())
	case reference.IsNotFound(err):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, breakeven.ErrNoBreakEven):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.As(err, &be) && be.Operation == "validate_request":
		return badRequest(c, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "request cancelled"})
	}

	s.logger.Error("request failed",
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func contentType(format string) string {
	switch format {
	case "html":
		return echo.MIMETextHTMLCharsetUTF8
	case "csv":
		return "text/csv; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return echo.MIMETextPlainCharsetUTF8
	}
}
