package volatility

import (
	"fmt"
	"math"

	"github.com/wonny/hedgesim/internal/contracts"
)

// PeriodsPerYear is the trading-day annualization factor
const PeriodsPerYear = 252

// Estimate derives annualized drift and volatility from a historical
// price series using log-returns
// ⭐ SSOT: 변동성 추정은 이 함수에서만
// drift = mean(ln(P_t/P_{t-1})) * 252
// volatility = sample stddev of log-returns * sqrt(252)
func Estimate(series *contracts.PriceSeries) (contracts.VolatilityParams, error) {
	var params contracts.VolatilityParams

	if series == nil || series.Len() < 2 {
		n := 0
		if series != nil {
			n = series.Len()
		}
		return params, fmt.Errorf("%w: need at least 2 observations, got %d",
			contracts.ErrInsufficientData, n)
	}

	if err := series.Validate(); err != nil {
		return params, fmt.Errorf("%w: %v", contracts.ErrInsufficientData, err)
	}

	returns := LogReturns(series.Prices())

	mean := meanOf(returns)
	std := sampleStdDev(returns, mean)

	params.Drift = mean * PeriodsPerYear
	params.Volatility = std * math.Sqrt(PeriodsPerYear)

	if math.IsNaN(params.Drift) || math.IsInf(params.Drift, 0) {
		return contracts.VolatilityParams{}, fmt.Errorf("%w: non-finite drift", contracts.ErrNumericInstability)
	}

	return params, nil
}

// LogReturns computes r_t = ln(price_t / price_{t-1}) for consecutive prices
func LogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return returns
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev computes the sample standard deviation (n-1 denominator).
// 분산이 0인 시계열은 volatility=0 → 결정적 경로 (에러 아님)
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
