package risk

import "github.com/wonny/hedgesim/internal/contracts"

// DefaultHistogramBins is the display bin count for outcome and price
// distributions
const DefaultHistogramBins = 50

// NewHistogram partitions values into equal-width bins.
// 빈 개수와 범위는 입력 범위의 결정적 함수 (전역 상태 없음)
// 퇴화 케이스(모든 값 동일)는 폭 1의 단일 빈으로 표현
func NewHistogram(values []float64, bins int) contracts.Histogram {
	if len(values) == 0 || bins <= 0 {
		return contracts.Histogram{Counts: []int{}, Edges: []float64{}}
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		// All values identical: single unit-width bin centered on the value
		return contracts.Histogram{
			Counts: []int{len(values)},
			Edges:  []float64{min - 0.5, min + 0.5},
		}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	edges := make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max // avoid floating-point drift on the last edge

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			// Maximum value belongs to the last (closed) bin
			idx = bins - 1
		}
		counts[idx]++
	}

	return contracts.Histogram{Counts: counts, Edges: edges}
}
