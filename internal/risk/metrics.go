package risk

import (
	"fmt"
	"math"
	"sort"

	"github.com/wonny/hedgesim/internal/contracts"
)

// =============================================================================
// Outcome Distribution Summary
// =============================================================================

// Summarize reduces a per-path outcome vector to summary risk metrics.
// ⭐ SSOT: 리스크 지표 계산은 이 패키지에서만
// baseline: Sharpe-like ratio의 기준값 (예: full-hedge 수익)
//
// VaR95는 정렬된 outcome의 5% 분위수 (선형 보간),
// ES95는 VaR95 이하 outcome의 평균.
// 표준편차가 0이면 Sharpe는 0으로 보고 (0으로 나누지 않음)
func Summarize(outcomes []float64, baseline float64) (contracts.RiskMetrics, error) {
	var m contracts.RiskMetrics

	if len(outcomes) == 0 {
		return m, fmt.Errorf("%w: empty outcome vector", contracts.ErrInsufficientData)
	}

	sorted := make([]float64, len(outcomes))
	copy(sorted, outcomes)
	sort.Float64s(sorted)

	m.Mean = Mean(outcomes)
	m.StdDev = StdDev(outcomes)
	m.Min = sorted[0]
	m.Max = sorted[len(sorted)-1]

	m.VaR95 = Percentile(sorted, 5)
	m.ExpectedShortfall95 = tailMean(sorted, m.VaR95)

	if m.StdDev > 0 {
		m.SharpeRatio = (m.Mean - baseline) / m.StdDev
	}

	m.Percentiles = map[int]float64{
		5:  Percentile(sorted, 5),
		25: Percentile(sorted, 25),
		50: Percentile(sorted, 50),
		75: Percentile(sorted, 75),
		95: Percentile(sorted, 95),
	}

	return m, nil
}

// Scenarios extracts representative outcomes (best/worst/median)
func Scenarios(outcomes []float64) contracts.SampleScenarios {
	if len(outcomes) == 0 {
		return contracts.SampleScenarios{}
	}

	sorted := make([]float64, len(outcomes))
	copy(sorted, outcomes)
	sort.Float64s(sorted)

	return contracts.SampleScenarios{
		BestCase:  sorted[len(sorted)-1],
		WorstCase: sorted[0],
		Median:    Percentile(sorted, 50),
	}
}

// tailMean averages all values at or below the threshold
func tailMean(sorted []float64, threshold float64) float64 {
	var sum float64
	count := 0
	for _, v := range sorted {
		if v > threshold {
			break
		}
		sum += v
		count++
	}
	if count == 0 {
		// Threshold below the minimum can only happen on degenerate
		// distributions; fall back to the worst outcome
		return sorted[0]
	}
	return sum / float64(count)
}

// =============================================================================
// Drawdown
// =============================================================================

// MaxDrawdown returns the largest peak-to-trough decline along a single
// price path over time, as a fraction of the peak.
// 정의: per-path-over-time (가격 경로 기준), 앙상블 정렬 기준 아님
func MaxDrawdown(path []float64) float64 {
	if len(path) == 0 {
		return 0
	}

	peak := path[0]
	maxDD := 0.0
	for _, price := range path {
		if price > peak {
			peak = price
		}
		if peak > 0 {
			dd := (peak - price) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// DrawdownStats aggregates per-path max drawdowns across the ensemble
// 반환: (mean, worst)
func DrawdownStats(paths [][]float64) (float64, float64) {
	if len(paths) == 0 {
		return 0, 0
	}

	var sum, worst float64
	for _, path := range paths {
		dd := MaxDrawdown(path)
		sum += dd
		if dd > worst {
			worst = dd
		}
	}
	return sum / float64(len(paths)), worst
}

// =============================================================================
// 통계 유틸리티
// =============================================================================

// Mean 평균 계산
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev 표본 표준편차 계산 (n-1)
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Percentile 백분위수 계산 (정렬된 입력, 선형 보간)
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	idx := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	// 선형 보간
	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
