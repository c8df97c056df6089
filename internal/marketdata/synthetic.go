package marketdata

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/volatility"
)

// Synthetic is an in-memory price provider backed by generated history.
// 실측 데이터 없이도 시뮬레이터가 동작하도록 상품별 특성(기준가/변동성/추세)
// 기반으로 2010~2024 일별 시계열을 생성함
// ⭐ SSOT: 합성 시계열 생성은 이 타입에서만
type Synthetic struct {
	mu        sync.RWMutex
	catalog   []contracts.Commodity
	histories map[string]*contracts.PriceSeries
}

// HistoryStart / HistoryEnd bound the generated history
var (
	HistoryStart = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	HistoryEnd   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

// NewSynthetic generates deterministic historical data for every
// commodity in the catalog. The same seed always produces the same
// history (catalog order matters).
func NewSynthetic(catalog []contracts.Commodity, seed int64) *Synthetic {
	s := &Synthetic{
		catalog:   catalog,
		histories: make(map[string]*contracts.PriceSeries, len(catalog)),
	}

	rng := rand.New(rand.NewSource(seed))
	for _, c := range catalog {
		s.histories[c.Code] = generateHistory(c, rng)
	}

	return s
}

// generateHistory builds a daily GBM series with a mild seasonal term,
// mirroring observed agricultural price behavior
func generateHistory(c contracts.Commodity, rng *rand.Rand) *contracts.PriceSeries {
	days := int(HistoryEnd.Sub(HistoryStart).Hours()/24) + 1

	dailyDrift := c.Trend / volatility.PeriodsPerYear
	dailyVol := c.Volatility / math.Sqrt(volatility.PeriodsPerYear)

	points := make([]contracts.PricePoint, days)
	logPrice := math.Log(c.BasePrice)

	for i := 0; i < days; i++ {
		// Seasonality: annual sine cycle on returns
		seasonal := 0.1 * math.Sin(2*math.Pi*float64(i)/365) / math.Sqrt(volatility.PeriodsPerYear)
		r := dailyDrift + dailyVol*rng.NormFloat64() + seasonal

		logPrice += r
		points[i] = contracts.PricePoint{
			Date:  HistoryStart.AddDate(0, 0, i),
			Price: math.Exp(logPrice),
		}
	}

	return &contracts.PriceSeries{Commodity: c.Code, Points: points}
}

// Series returns a copy of the historical series for a commodity
func (s *Synthetic) Series(_ context.Context, code string) (*contracts.PriceSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series, ok := s.histories[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", contracts.ErrUnknownCommodity, code)
	}

	// 각 run이 자체 복사본을 소유 (run 간 공유 없음)
	points := make([]contracts.PricePoint, len(series.Points))
	copy(points, series.Points)
	return &contracts.PriceSeries{Commodity: code, Points: points}, nil
}

// CurrentPrice returns the most recent generated price
func (s *Synthetic) CurrentPrice(_ context.Context, code string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series, ok := s.histories[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", contracts.ErrUnknownCommodity, code)
	}

	last, ok := series.Last()
	if !ok {
		return 0, fmt.Errorf("%w: empty series for %q", contracts.ErrInsufficientData, code)
	}
	return last.Price, nil
}

// Commodities returns catalog snapshots with current price and
// estimated annualized volatility (trailing window)
func (s *Synthetic) Commodities(ctx context.Context) ([]contracts.CommoditySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make([]contracts.CommoditySnapshot, 0, len(s.catalog))
	for _, c := range s.catalog {
		series := s.histories[c.Code]

		last, ok := series.Last()
		if !ok {
			continue
		}

		params, err := volatility.Estimate(trailingWindow(series, volatility.PeriodsPerYear+1))
		if err != nil {
			return nil, fmt.Errorf("estimate volatility for %s: %w", c.Code, err)
		}

		snapshots = append(snapshots, contracts.CommoditySnapshot{
			Code:         c.Code,
			Name:         c.Name,
			Unit:         c.Unit,
			CurrentPrice: last.Price,
			Volatility:   params.Volatility,
		})
	}
	return snapshots, nil
}

// Extend appends one more synthetic trading day to every series,
// continuing each commodity's stochastic process. Used by the daily
// refresh job.
func (s *Synthetic) Extend(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.catalog {
		series := s.histories[c.Code]
		last, ok := series.Last()
		if !ok {
			continue
		}

		dailyDrift := c.Trend / volatility.PeriodsPerYear
		dailyVol := c.Volatility / math.Sqrt(volatility.PeriodsPerYear)
		r := dailyDrift + dailyVol*rng.NormFloat64()

		series.Points = append(series.Points, contracts.PricePoint{
			Date:  last.Date.AddDate(0, 0, 1),
			Price: last.Price * math.Exp(r),
		})
	}
}

// trailingWindow returns the last n points of a series as a sub-series
func trailingWindow(series *contracts.PriceSeries, n int) *contracts.PriceSeries {
	points := series.Points
	if len(points) > n {
		points = points[len(points)-n:]
	}
	return &contracts.PriceSeries{Commodity: series.Commodity, Points: points}
}
