package contracts

import "time"

// =============================================================================
// Simulation Input
// =============================================================================

// VolatilityParams holds annualized drift and volatility derived from
// a historical price series (log-return statistics)
// 불변식: Volatility >= 0, Drift는 유한값
type VolatilityParams struct {
	Drift      float64 `json:"drift"`      // annualized mean log-return
	Volatility float64 `json:"volatility"` // annualized stddev of log-returns
}

// StrategyParams holds per-strategy tuning parameters
type StrategyParams struct {
	// HedgeRatio is the locked-in fraction for partial_hedge (default 0.5)
	HedgeRatio float64 `json:"hedge_ratio,omitempty"`

	// Dynamic configures the dynamic_hedge coverage policy
	Dynamic DynamicParams `json:"dynamic,omitempty"`
}

// DynamicParams configures the dynamic-hedge coverage policy:
// coverage(S) = clip(BaseCoverage + Sensitivity*(F-S)/F, Floor, Cap)
// 가격이 떨어지면 커버리지 증가, 오르면 감소
type DynamicParams struct {
	BaseCoverage float64 `json:"base_coverage,omitempty"` // default 0.5
	Sensitivity  float64 `json:"sensitivity,omitempty"`   // default 0.5
	Floor        float64 `json:"floor,omitempty"`         // default 0
	Cap          float64 `json:"cap,omitempty"`           // default 1
}

// SimulationConfig fully specifies one simulation run (immutable input)
// ⭐ SSOT: 재현성을 위해 모든 설정을 명시적으로 기록 (결과에 echo됨)
type SimulationConfig struct {
	Commodity        string         `json:"commodity"`
	SpotPrice        float64        `json:"spot_price"`        // > 0
	ProductionVolume float64        `json:"production_volume"` // > 0
	HorizonDays      int            `json:"horizon_days"`      // > 0, trading days
	NumPaths         int            `json:"num_paths"`         // >= 1, typically 10000
	Strategy         string         `json:"strategy"`
	StrategyParams   StrategyParams `json:"strategy_params,omitempty"`

	// FuturesPrice is the locked-in futures contract price.
	// 0이면 spot과 동일하게 설정 (futures = spot 단순화)
	FuturesPrice float64 `json:"futures_price,omitempty"`

	// Baseline is the reference outcome for the Sharpe-like ratio
	// (0이면 full-hedge revenue를 기준으로 사용)
	Baseline float64 `json:"baseline,omitempty"`

	// Seed for the run-local RNG. 0 = time-based (non-reproducible)
	Seed int64 `json:"seed,omitempty"`

	// VolatilityOverride skips historical estimation when set
	// (주어진 drift/volatility로 바로 경로 생성)
	VolatilityOverride *VolatilityParams `json:"volatility_override,omitempty"`
}

// =============================================================================
// Simulation Output
// =============================================================================

// Histogram is a binned distribution for display.
// Edges has len(Counts)+1 entries; bins are equal-width and derived
// deterministically from the value range.
type Histogram struct {
	Counts []int     `json:"counts"`
	Edges  []float64 `json:"bins"`
}

// RiskMetrics summarizes a per-path outcome distribution
// VaR/ES는 분포상의 값 그대로 표현 (5% 분위수 및 그 이하 평균)
type RiskMetrics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"` // sample standard deviation
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`

	VaR95               float64 `json:"var_95"`    // 5th percentile of outcomes
	ExpectedShortfall95 float64 `json:"es_95"`     // mean of outcomes <= VaR95
	SharpeRatio         float64 `json:"sharpe_ratio"` // (mean - baseline) / stddev, 0 if stddev == 0

	// Max drawdown: per-path peak-to-trough fraction on the price path
	// over time, aggregated across paths
	MaxDrawdownMean  float64 `json:"max_drawdown_mean"`
	MaxDrawdownWorst float64 `json:"max_drawdown_worst"`

	Percentiles map[int]float64 `json:"percentiles"` // 5, 25, 50, 75, 95
}

// SampleScenarios highlights representative outcomes
type SampleScenarios struct {
	BestCase  float64 `json:"best_case"`
	WorstCase float64 `json:"worst_case"`
	Median    float64 `json:"median"`
}

// StrategyOutcome is one strategy's result inside a comparison run
type StrategyOutcome struct {
	Strategy  string          `json:"strategy"`
	Metrics   RiskMetrics     `json:"metrics"`
	Histogram Histogram       `json:"histogram"`
	Scenarios SampleScenarios `json:"sample_scenarios"`
}

// SimulationResult is the terminal artifact of a run.
// 반환 후 변경되지 않음. 수치 페이로드는 (config, seed)에 대해 결정적이고,
// RunID/RunDate는 실행 메타데이터로 재현성 비교에서 제외됨.
type SimulationResult struct {
	RunID   string    `json:"run_id"`
	RunDate time.Time `json:"run_date"`

	Config       SimulationConfig `json:"config"` // echo for reproducibility
	FuturesPrice float64          `json:"futures_price"`
	Volatility   VolatilityParams `json:"volatility_params"`

	Metrics           RiskMetrics     `json:"metrics"`
	Histogram         Histogram       `json:"histogram"`          // outcome distribution
	PriceDistribution Histogram       `json:"price_distribution"` // terminal price distribution
	Scenarios         SampleScenarios `json:"sample_scenarios"`

	// Comparisons is populated when multiple strategies were requested;
	// all entries share the same underlying path matrix
	Comparisons []StrategyOutcome `json:"comparisons,omitempty"`
}
