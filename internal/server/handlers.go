package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rgehrsitz/creatorcalc/internal/calculation"
	"github.com/rgehrsitz/creatorcalc/internal/config"
	"github.com/rgehrsitz/creatorcalc/internal/domain"
	"github.com/rgehrsitz/creatorcalc/internal/goal"
	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/shopspring/decimal"
)

// Calculator is the part of the calculation engine the API calls
type Calculator interface {
	Calculate(req calculation.Request) domain.PlatformResult
	RunScenarios(config *domain.Configuration) (*domain.ScenarioResults, error)
	SimulateMix(in domain.MixInput) *domain.MixResult
}

// GoalSolver answers goal tracker requests
type GoalSolver interface {
	Solve(ctx context.Context, req goal.Request) (*goal.Result, error)
}

type Handler struct {
	calc     Calculator
	goals    GoalSolver
	defaults config.DefaultsConfig
	parser   *config.InputParser
}

// NewHandler wires the API handlers. A nil calculator or solver gets the default engine.
func NewHandler(calc Calculator, goals GoalSolver, defaults config.DefaultsConfig) *Handler {
	engine := calculation.NewCalculationEngine()
	if calc == nil {
		calc = engine
	}
	if goals == nil {
		goals = goal.NewDefaultSolver(engine)
	}
	return &Handler{calc: calc, goals: goals, defaults: defaults, parser: config.NewInputParser()}
}

// CalculateRequest is the body of POST /api/v1/calculate
type CalculateRequest struct {
	Platform   string             `json:"platform"`
	Inputs     domain.InputValues `json:"inputs"`
	Region     string             `json:"region,omitempty"`
	Niche      string             `json:"niche,omitempty"`
	TimePeriod string             `json:"timePeriod,omitempty"`
}

// CalculateResponse is the result of one platform calculation
type CalculateResponse struct {
	Result        domain.PlatformResult `json:"result"`
	Region        domain.Region         `json:"region"`
	Niche         domain.Niche          `json:"niche"`
	TimePeriod    domain.TimePeriod     `json:"timePeriod"`
	PeriodRevenue decimal.Decimal       `json:"periodRevenue"`
}

// SponsorshipRequest is the body of POST /api/v1/sponsorship
type SponsorshipRequest struct {
	domain.SponsorshipInput
	Region string `json:"region,omitempty"`
	Niche  string `json:"niche,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, registry.PlatformsByCategory(domain.Category(category)))
		return
	}
	writeJSON(w, http.StatusOK, registry.Platforms())
}

func (h *Handler) GetPlatform(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	platform, ok := registry.Platform(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown platform " + id, RequestID: RequestIDFromContext(r.Context())})
		return
	}
	writeJSON(w, http.StatusOK, platform)
}

func (h *Handler) ListRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, registry.Regions())
}

func (h *Handler) ListNiches(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, registry.Niches())
}

func (h *Handler) ListTimePeriods(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, registry.TimePeriods())
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Platform) == "" {
		writeError(w, r, badRequest("platform is required"))
		return
	}
	if err := h.validateSelections(req.Region, req.Niche, req.TimePeriod); err != nil {
		writeError(w, r, err)
		return
	}
	for id, value := range req.Inputs {
		if value < 0 {
			writeError(w, r, badRequest("input %s cannot be negative", id))
			return
		}
	}

	region := registry.Region(firstNonEmpty(req.Region, h.defaults.Region))
	niche := registry.Niche(firstNonEmpty(req.Niche, h.defaults.Niche))
	period := registry.TimePeriod(firstNonEmpty(req.TimePeriod, h.defaults.TimePeriod))

	result := h.calc.Calculate(calculation.Request{
		Platform: req.Platform,
		Inputs:   req.Inputs,
		Region:   region.ID,
		Niche:    niche.ID,
	})
	writeJSON(w, http.StatusOK, CalculateResponse{
		Result:        result,
		Region:        region,
		Niche:         niche,
		TimePeriod:    period,
		PeriodRevenue: calculation.ForPeriod(result.Adjusted, period),
	})
}

func (h *Handler) RunScenarios(w http.ResponseWriter, r *http.Request) {
	var cfg domain.Configuration
	if err := decodeJSON(w, r, &cfg); err != nil {
		writeError(w, r, err)
		return
	}
	if cfg.Region == "" {
		cfg.Region = h.defaults.Region
	}
	if cfg.Niche == "" {
		cfg.Niche = h.defaults.Niche
	}
	if cfg.TimePeriod == "" {
		cfg.TimePeriod = h.defaults.TimePeriod
	}
	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		writeError(w, r, err)
		return
	}

	results, err := h.calc.RunScenarios(&cfg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) PriceSponsorship(w http.ResponseWriter, r *http.Request) {
	var req SponsorshipRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validateSelections(req.Region, req.Niche, ""); err != nil {
		writeError(w, r, err)
		return
	}
	in := req.SponsorshipInput
	if in.Followers < 0 || in.AvgViews < 0 || in.EngagementRate < 0 || in.CPM < 0 {
		writeError(w, r, badRequest("audience metrics and cpm cannot be negative"))
		return
	}

	quote := calculation.PriceSponsorship(in,
		registry.Region(firstNonEmpty(req.Region, h.defaults.Region)),
		registry.Niche(firstNonEmpty(req.Niche, h.defaults.Niche)))
	writeJSON(w, http.StatusOK, quote)
}

func (h *Handler) SolveGoal(w http.ResponseWriter, r *http.Request) {
	var req goal.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validateSelections(req.Region, req.Niche, ""); err != nil {
		writeError(w, r, err)
		return
	}
	req.Region = firstNonEmpty(req.Region, h.defaults.Region)
	req.Niche = firstNonEmpty(req.Niche, h.defaults.Niche)

	result, err := h.goals.Solve(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ProjectPlan(w http.ResponseWriter, r *http.Request) {
	var in domain.PlanInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, calculation.ProjectPlan(in))
}

func (h *Handler) SimulateMix(w http.ResponseWriter, r *http.Request) {
	var in domain.MixInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if len(in.Entries) == 0 {
		writeError(w, r, badRequest("at least one mix entry is required"))
		return
	}
	if err := h.validateSelections(in.Region, in.Niche, ""); err != nil {
		writeError(w, r, err)
		return
	}
	for i, e := range in.Entries {
		if e.AllocationPercent < 0 {
			writeError(w, r, badRequest("entries[%d]: allocation cannot be negative", i))
			return
		}
	}
	in.Region = firstNonEmpty(in.Region, h.defaults.Region)
	in.Niche = firstNonEmpty(in.Niche, h.defaults.Niche)

	writeJSON(w, http.StatusOK, h.calc.SimulateMix(in))
}

func (h *Handler) validateSelections(region, niche, period string) error {
	if region != "" {
		if _, ok := registry.LookupRegion(region); !ok {
			return badRequest("unknown region %q", region)
		}
	}
	if niche != "" {
		if _, ok := registry.LookupNiche(niche); !ok {
			return badRequest("unknown niche %q", niche)
		}
	}
	if period != "" {
		if _, ok := registry.LookupTimePeriod(period); !ok {
			return badRequest("unknown time period %q", period)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
