package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/volatility"
)

// PathMatrix holds simulated price paths: numPaths rows, horizonDays columns.
// 각 행은 spot에서 시작하는 하나의 가격 경로
// 생성한 run이 단독 소유하며 결과 도출 후 폐기됨 (영속화 없음)
type PathMatrix [][]float64

// NumPaths returns the number of simulated paths
func (m PathMatrix) NumPaths() int {
	return len(m)
}

// HorizonDays returns the number of daily steps per path
func (m PathMatrix) HorizonDays() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// FinalPrices returns the terminal price of each path
func (m PathMatrix) FinalPrices() []float64 {
	out := make([]float64, len(m))
	for i, path := range m {
		out[i] = path[len(path)-1]
	}
	return out
}

// Generate produces numPaths independent GBM price paths over horizonDays
// trading days, starting at spot.
// ⭐ SSOT: 경로 생성은 이 함수에서만
//
// 이산화된 Geometric Brownian Motion:
//
//	S[t] = S[t-1] * exp((mu - 0.5*sigma^2)*dt + sigma*sqrt(dt)*Z)
//
// dt = 1/252. 지수 형태이므로 가격은 대수적으로 항상 양수.
// rng는 호출자가 주입 (전역 상태 금지, 고정 시드 → 재현 가능)
func Generate(spot, drift, vol float64, horizonDays, numPaths int, rng *rand.Rand) (PathMatrix, error) {
	if spot <= 0 {
		return nil, fmt.Errorf("%w: spot price must be positive, got %.4f", contracts.ErrInvalidConfig, spot)
	}
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: horizon must be positive, got %d days", contracts.ErrInvalidConfig, horizonDays)
	}
	if numPaths <= 0 {
		return nil, fmt.Errorf("%w: path count must be positive, got %d", contracts.ErrInvalidConfig, numPaths)
	}
	if vol < 0 {
		return nil, fmt.Errorf("%w: volatility must be non-negative, got %.4f", contracts.ErrInvalidConfig, vol)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: rng is required", contracts.ErrInvalidConfig)
	}

	dt := 1.0 / volatility.PeriodsPerYear
	driftTerm := (drift - 0.5*vol*vol) * dt
	diffusion := vol * math.Sqrt(dt)

	matrix := make(PathMatrix, numPaths)
	for p := 0; p < numPaths; p++ {
		path := make([]float64, horizonDays)
		path[0] = spot

		for t := 1; t < horizonDays; t++ {
			z := rng.NormFloat64()
			path[t] = path[t-1] * math.Exp(driftTerm+diffusion*z)

			if math.IsNaN(path[t]) || math.IsInf(path[t], 0) {
				return nil, fmt.Errorf("%w: non-finite price at path %d step %d (drift=%.4f vol=%.4f)",
					contracts.ErrNumericInstability, p, t, drift, vol)
			}
		}

		matrix[p] = path
	}

	return matrix, nil
}
