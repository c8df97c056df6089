package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/pkg/logger"
	"github.com/wonny/hedgesim/pkg/redis"
)

// commoditiesCacheTTL bounds staleness of the commodity snapshot list
const commoditiesCacheTTL = 1 * time.Minute

// DataHandler handles market-data API endpoints
// ⭐ SSOT: 데이터 API 핸들러는 이 구조체에서만
type DataHandler struct {
	provider contracts.PriceProvider
	cache    *redis.Cache
	logger   *logger.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(provider contracts.PriceProvider, cache *redis.Cache, log *logger.Logger) *DataHandler {
	return &DataHandler{
		provider: provider,
		cache:    cache,
		logger:   log,
	}
}

// GetCommodities returns the commodity catalog with current snapshots
// GET /api/commodities
func (h *DataHandler) GetCommodities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Try cache first (no-op when redis is disabled)
	var cached []contracts.CommoditySnapshot
	if hit, err := h.cache.Get(ctx, "commodities", &cached); err == nil && hit {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	snapshots, err := h.provider.Commodities(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get commodity snapshots")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve commodities")
		return
	}

	if err := h.cache.Set(ctx, "commodities", snapshots, commoditiesCacheTTL); err != nil {
		h.logger.WithError(err).Warn("Failed to cache commodity snapshots")
	}

	respondJSON(w, http.StatusOK, snapshots)
}

// HistoricalResponse is the display-oriented shape of a price series
type HistoricalResponse struct {
	Commodity string    `json:"commodity"`
	Dates     []string  `json:"dates"`
	Prices    []float64 `json:"prices"`
}

// GetHistorical returns the historical price series for a commodity
// GET /api/historical/{code}
func (h *DataHandler) GetHistorical(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	code := vars["code"]

	series, err := h.provider.Series(ctx, code)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	resp := HistoricalResponse{
		Commodity: code,
		Dates:     make([]string, series.Len()),
		Prices:    make([]float64, series.Len()),
	}
	for i, p := range series.Points {
		resp.Dates[i] = p.Date.Format("2006-01-02")
		resp.Prices[i] = p.Price
	}

	respondJSON(w, http.StatusOK, resp)
}
