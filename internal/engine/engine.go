package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/risk"
	"github.com/wonny/hedgesim/internal/simulation"
	"github.com/wonny/hedgesim/internal/strategy"
	"github.com/wonny/hedgesim/internal/volatility"
	"github.com/wonny/hedgesim/pkg/logger"
)

// Engine runs the Monte Carlo hedging simulation pipeline:
// historical prices → volatility estimate → price paths → strategy
// outcomes → risk summary.
// ⭐ SSOT: 시뮬레이션 실행은 이 엔진에서만
//
// 각 run은 자체 RNG와 자체 경로 행렬을 소유함 (run 간 공유 상태 없음).
// 행렬은 결과 도출 후 폐기됨 (결과 영속화 없음).
type Engine struct {
	provider contracts.PriceProvider
	logger   *logger.Logger
}

// New creates a simulation engine on top of a price provider
func New(provider contracts.PriceProvider, log *logger.Logger) *Engine {
	return &Engine{
		provider: provider,
		logger:   log.WithComponent("engine"),
	}
}

// Run executes one complete simulation for cfg.Strategy
func (e *Engine) Run(ctx context.Context, cfg contracts.SimulationConfig) (*contracts.SimulationResult, error) {
	return e.run(ctx, cfg, nil)
}

// Compare executes one simulation per strategy id over the SAME path
// matrix, so outcome distributions are directly comparable.
// 첫 번째 전략이 대표 결과, 전체는 Comparisons에 수록됨
func (e *Engine) Compare(ctx context.Context, cfg contracts.SimulationConfig, strategies []string) (*contracts.SimulationResult, error) {
	if len(strategies) == 0 {
		strategies = strategy.IDs()
	}
	return e.run(ctx, cfg, strategies)
}

func (e *Engine) run(ctx context.Context, cfg contracts.SimulationConfig, compareIDs []string) (*contracts.SimulationResult, error) {
	start := time.Now()

	// 1. Resolve spot price (0 = use current market price, original behavior)
	spot := cfg.SpotPrice
	if spot == 0 {
		current, err := e.provider.CurrentPrice(ctx, cfg.Commodity)
		if err != nil {
			return nil, fmt.Errorf("resolve spot price: %w", err)
		}
		spot = current
		cfg.SpotPrice = spot
	}
	if spot <= 0 {
		return nil, fmt.Errorf("%w: spot price must be positive, got %.4f",
			contracts.ErrInvalidConfig, spot)
	}

	// 2. Volatility parameters: estimate from history unless overridden
	var params contracts.VolatilityParams
	if cfg.VolatilityOverride != nil {
		params = *cfg.VolatilityOverride
		if params.Volatility < 0 {
			return nil, fmt.Errorf("%w: volatility must be non-negative", contracts.ErrInvalidConfig)
		}
	} else {
		series, err := e.provider.Series(ctx, cfg.Commodity)
		if err != nil {
			return nil, fmt.Errorf("load price series: %w", err)
		}
		params, err = volatility.Estimate(series)
		if err != nil {
			return nil, err
		}
	}

	// 3. Run-local RNG (explicit, never global; reproducible with fixed seed)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 4. Generate the path matrix (owned by this run, discarded after)
	matrix, err := simulation.Generate(spot, params.Drift, params.Volatility,
		cfg.HorizonDays, cfg.NumPaths, rng)
	if err != nil {
		return nil, err
	}

	// 5. Futures price (0 = futures locked at spot, original simplification)
	futures := cfg.FuturesPrice
	if futures == 0 {
		futures = spot
	}
	cfg.FuturesPrice = futures

	// 6. Evaluate strategies
	ids := compareIDs
	if ids == nil {
		ids = []string{cfg.Strategy}
	}

	// Baseline for the Sharpe-like ratio: explicit, or full-hedge revenue
	baseline := cfg.Baseline
	if baseline == 0 {
		baseline = futures * cfg.ProductionVolume
	}

	ddMean, ddWorst := risk.DrawdownStats(matrix)

	outcomes := make([]contracts.StrategyOutcome, 0, len(ids))
	for _, id := range ids {
		strat, err := strategy.New(id, cfg.StrategyParams)
		if err != nil {
			return nil, err
		}

		vec, err := strategy.Apply(strat, matrix, cfg.ProductionVolume, futures)
		if err != nil {
			return nil, err
		}

		metrics, err := risk.Summarize(vec, baseline)
		if err != nil {
			return nil, err
		}
		metrics.MaxDrawdownMean = ddMean
		metrics.MaxDrawdownWorst = ddWorst

		outcomes = append(outcomes, contracts.StrategyOutcome{
			Strategy:  id,
			Metrics:   metrics,
			Histogram: risk.NewHistogram(vec, risk.DefaultHistogramBins),
			Scenarios: risk.Scenarios(vec),
		})
	}

	// 7. Assemble the result (primary strategy first)
	primary := outcomes[0]
	result := &contracts.SimulationResult{
		RunID:             uuid.New().String(),
		RunDate:           time.Now(),
		Config:            cfg,
		FuturesPrice:      futures,
		Volatility:        params,
		Metrics:           primary.Metrics,
		Histogram:         primary.Histogram,
		PriceDistribution: risk.NewHistogram(matrix.FinalPrices(), risk.DefaultHistogramBins),
		Scenarios:         primary.Scenarios,
	}
	if len(outcomes) > 1 {
		result.Comparisons = outcomes
	}

	e.logger.WithFields(map[string]interface{}{
		"commodity":  cfg.Commodity,
		"strategy":   primary.Strategy,
		"paths":      cfg.NumPaths,
		"horizon":    cfg.HorizonDays,
		"volatility": params.Volatility,
		"duration":   time.Since(start),
	}).Info("Simulation completed")

	return result, nil
}
