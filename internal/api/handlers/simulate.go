package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/engine"
	"github.com/wonny/hedgesim/internal/simconfig"
	"github.com/wonny/hedgesim/internal/strategy"
	"github.com/wonny/hedgesim/pkg/logger"
)

// SimulationHandler handles simulation API endpoints
// ⭐ SSOT: 시뮬레이션 API 핸들러는 이 구조체에서만
type SimulationHandler struct {
	engine   *engine.Engine
	defaults simconfig.Defaults
	logger   *logger.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(eng *engine.Engine, defaults simconfig.Defaults, log *logger.Logger) *SimulationHandler {
	return &SimulationHandler{
		engine:   eng,
		defaults: defaults,
		logger:   log,
	}
}

// SimulateRequest is the JSON payload for POST /api/simulate
type SimulateRequest struct {
	Commodity      string                   `json:"commodity"`
	Volume         float64                  `json:"volume"`
	SpotPrice      float64                  `json:"spot_price"`   // 0 = current market price
	HorizonDays    int                      `json:"horizon_days"` // 0 = config default
	Strategy       string                   `json:"strategy"`
	Simulations    int                      `json:"simulations"` // 0 = config default
	FuturesPrice   float64                  `json:"futures_price,omitempty"`
	Seed           int64                    `json:"seed,omitempty"`
	StrategyParams contracts.StrategyParams `json:"strategy_params,omitempty"`

	// Strategies is used by /api/compare only (empty = all known)
	Strategies []string `json:"strategies,omitempty"`
}

// toConfig maps the request to a SimulationConfig, applying defaults
func (req *SimulateRequest) toConfig(defaults simconfig.Defaults) contracts.SimulationConfig {
	cfg := contracts.SimulationConfig{
		Commodity:        req.Commodity,
		SpotPrice:        req.SpotPrice,
		ProductionVolume: req.Volume,
		HorizonDays:      req.HorizonDays,
		NumPaths:         req.Simulations,
		Strategy:         req.Strategy,
		StrategyParams:   req.StrategyParams,
		FuturesPrice:     req.FuturesPrice,
		Seed:             req.Seed,
	}

	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = defaults.HorizonDays
	}
	if cfg.NumPaths == 0 {
		cfg.NumPaths = defaults.NumPaths
	}
	return cfg
}

// Simulate runs a single-strategy Monte Carlo simulation
// POST /api/simulate
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.engine.Run(r.Context(), req.toConfig(h.defaults))
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"commodity": req.Commodity,
			"strategy":  req.Strategy,
		}).Warn("Simulation failed")
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Compare runs several strategies over the same simulated paths
// POST /api/compare
func (h *SimulationHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.engine.Compare(r.Context(), req.toConfig(h.defaults), req.Strategies)
	if err != nil {
		h.logger.WithError(err).WithField("commodity", req.Commodity).Warn("Comparison failed")
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Strategies lists the known strategy identifiers
// GET /api/strategies
func (h *SimulationHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"strategies": strategy.IDs(),
	})
}
