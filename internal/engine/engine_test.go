package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/strategy"
	"github.com/wonny/hedgesim/pkg/config"
	"github.com/wonny/hedgesim/pkg/logger"
)

// stubProvider serves a fixed series for a single commodity
type stubProvider struct {
	series *contracts.PriceSeries
}

func (p *stubProvider) Series(_ context.Context, code string) (*contracts.PriceSeries, error) {
	if p.series == nil || p.series.Commodity != code {
		return nil, contracts.ErrUnknownCommodity
	}
	return p.series, nil
}

func (p *stubProvider) CurrentPrice(ctx context.Context, code string) (float64, error) {
	series, err := p.Series(ctx, code)
	if err != nil {
		return 0, err
	}
	last, _ := series.Last()
	return last.Price, nil
}

func (p *stubProvider) Commodities(_ context.Context) ([]contracts.CommoditySnapshot, error) {
	return nil, nil
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "console"})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]contracts.PricePoint, 300)
	price := 500.0
	for i := range points {
		points[i] = contracts.PricePoint{Date: start.AddDate(0, 0, i), Price: price}
		// 결정적 톱니 수익률, 추정 변동성 > 0
		if i%2 == 0 {
			price *= math.Exp(0.01)
		} else {
			price *= math.Exp(-0.009)
		}
	}

	return New(&stubProvider{series: &contracts.PriceSeries{Commodity: "CORN", Points: points}}, log)
}

func baseConfig() contracts.SimulationConfig {
	return contracts.SimulationConfig{
		Commodity:          "CORN",
		SpotPrice:          500,
		ProductionVolume:   1000,
		HorizonDays:        90,
		NumPaths:           10000,
		Strategy:           strategy.FullHedge,
		FuturesPrice:       510,
		Seed:               42,
		VolatilityOverride: &contracts.VolatilityParams{Drift: 0.02, Volatility: 0.25},
	}
}

func TestRun_FullHedgeLocksRevenue(t *testing.T) {
	eng := testEngine(t)

	result, err := eng.Run(context.Background(), baseConfig())
	require.NoError(t, err)

	// 전량 헤지 → 모든 경로에서 정확히 510 * 1000
	assert.Equal(t, 510000.0, result.Metrics.Mean)
	assert.Equal(t, 0.0, result.Metrics.StdDev)
	assert.Equal(t, 510000.0, result.Metrics.Min)
	assert.Equal(t, 510000.0, result.Metrics.Max)
	assert.Equal(t, 510000.0, result.Metrics.VaR95)
	assert.Equal(t, 510000.0, result.Metrics.ExpectedShortfall95)
	assert.Equal(t, 0.0, result.Metrics.SharpeRatio)

	assert.Equal(t, 510000.0, result.Scenarios.BestCase)
	assert.Equal(t, 510000.0, result.Scenarios.WorstCase)
	assert.Equal(t, 510000.0, result.Scenarios.Median)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 510.0, result.FuturesPrice)
}

func TestRun_NoHedgeMeanNearForward(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.Strategy = strategy.NoHedge

	result, err := eng.Run(context.Background(), cfg)
	require.NoError(t, err)

	// GBM 기대값: spot * exp(drift * T), T = 90/252
	expected := 500 * math.Exp(0.02*90.0/252.0) * 1000
	assert.InEpsilon(t, expected, result.Metrics.Mean, 0.02)
	assert.Greater(t, result.Metrics.StdDev, 0.0)

	// 비퇴화 분포의 꼬리 순서
	assert.LessOrEqual(t, result.Metrics.ExpectedShortfall95, result.Metrics.VaR95)
	assert.Less(t, result.Metrics.VaR95, result.Metrics.Mean)

	assert.Greater(t, result.Metrics.MaxDrawdownMean, 0.0)
	assert.GreaterOrEqual(t, result.Metrics.MaxDrawdownWorst, result.Metrics.MaxDrawdownMean)
}

func TestRun_FixedSeedReproducible(t *testing.T) {
	eng := testEngine(t)
	cfg := baseConfig()
	cfg.Strategy = strategy.NoHedge

	a, err := eng.Run(context.Background(), cfg)
	require.NoError(t, err)

	b, err := eng.Run(context.Background(), cfg)
	require.NoError(t, err)

	// RunID/RunDate는 실행 메타데이터, 수치 페이로드는 비트 단위 동일
	assert.NotEqual(t, a.RunID, b.RunID)
	require.Equal(t, a.Metrics, b.Metrics)
	require.Equal(t, a.Histogram, b.Histogram)
	require.Equal(t, a.PriceDistribution, b.PriceDistribution)
	require.Equal(t, a.Scenarios, b.Scenarios)
	require.Equal(t, a.Volatility, b.Volatility)
}

func TestRun_EstimatesVolatilityFromHistory(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.VolatilityOverride = nil

	result, err := eng.Run(context.Background(), cfg)
	require.NoError(t, err)

	// 톱니 시계열이므로 추정 변동성 > 0
	assert.Greater(t, result.Volatility.Volatility, 0.0)
}

func TestRun_ZeroSpotUsesCurrentPrice(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.SpotPrice = 0
	cfg.FuturesPrice = 0

	result, err := eng.Run(context.Background(), cfg)
	require.NoError(t, err)

	// spot = 최근가, futures = spot
	assert.Greater(t, result.Config.SpotPrice, 0.0)
	assert.Equal(t, result.Config.SpotPrice, result.FuturesPrice)
}

func TestRun_UnknownCommodity(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.Commodity = "PLATINUM"
	cfg.SpotPrice = 0

	_, err := eng.Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, contracts.ErrUnknownCommodity), "got %v", err)
}

func TestRun_UnknownStrategy(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.Strategy = "butterfly"

	_, err := eng.Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, contracts.ErrUnknownStrategy), "got %v", err)
}

func TestRun_InvalidConfig(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.HorizonDays = 0
	_, err := eng.Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, contracts.ErrInvalidConfig), "got %v", err)

	cfg = baseConfig()
	cfg.ProductionVolume = -5
	_, err = eng.Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, contracts.ErrInvalidConfig), "got %v", err)
}

func TestCompare_SharedPathMatrix(t *testing.T) {
	eng := testEngine(t)

	cfg := baseConfig()
	cfg.Strategy = strategy.NoHedge

	result, err := eng.Compare(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, result.Comparisons, 4)

	byID := make(map[string]contracts.StrategyOutcome, len(result.Comparisons))
	for _, outcome := range result.Comparisons {
		byID[outcome.Strategy] = outcome
	}

	// 동일 행렬 위에서 분산 순서: full < partial < none
	full := byID[strategy.FullHedge].Metrics
	partial := byID[strategy.PartialHedge].Metrics
	none := byID[strategy.NoHedge].Metrics

	assert.Equal(t, 0.0, full.StdDev)
	assert.Greater(t, partial.StdDev, full.StdDev)
	assert.Greater(t, none.StdDev, partial.StdDev)
	// ratio 0.5 → 표준편차는 no-hedge의 절반
	assert.InDelta(t, none.StdDev/2, partial.StdDev, none.StdDev*0.001)

	// 대표 결과는 첫 번째 전략
	assert.Equal(t, byID[strategy.NoHedge].Metrics, result.Metrics)
}
