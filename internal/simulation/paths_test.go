package simulation

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/volatility"
)

func TestGenerate_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	matrix, err := Generate(500, 0.02, 0.25, 90, 100, rng)
	require.NoError(t, err)

	assert.Equal(t, 100, matrix.NumPaths())
	assert.Equal(t, 90, matrix.HorizonDays())
	assert.Len(t, matrix.FinalPrices(), 100)
}

func TestGenerate_StartsAtSpot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	matrix, err := Generate(123.45, 0.05, 0.3, 30, 50, rng)
	require.NoError(t, err)

	// path[0]는 근사치가 아니라 정확히 spot
	for _, path := range matrix {
		assert.Equal(t, 123.45, path[0])
	}
}

func TestGenerate_AllPricesPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// 높은 변동성에서도 지수형이므로 가격은 양수
	matrix, err := Generate(10, -0.1, 0.9, 252, 200, rng)
	require.NoError(t, err)

	for _, path := range matrix {
		for _, price := range path {
			require.Greater(t, price, 0.0)
		}
	}
}

func TestGenerate_ZeroVolatilityIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	matrix, err := Generate(100, 0.1, 0, 60, 10, rng)
	require.NoError(t, err)

	// sigma=0 → S[t] = spot * exp(drift * t * dt), 모든 경로 동일
	dt := 1.0 / volatility.PeriodsPerYear
	for _, path := range matrix {
		for tIdx, price := range path {
			expected := 100 * math.Exp(0.1*dt*float64(tIdx))
			assert.InDelta(t, expected, price, 1e-9)
		}
	}
}

func TestGenerate_FixedSeedReproducible(t *testing.T) {
	a, err := Generate(75, 0.03, 0.2, 45, 30, rand.New(rand.NewSource(20240101)))
	require.NoError(t, err)

	b, err := Generate(75, 0.03, 0.2, 45, 30, rand.New(rand.NewSource(20240101)))
	require.NoError(t, err)

	// 동일 시드 → 비트 단위 동일 행렬
	require.Equal(t, a, b)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name     string
		spot     float64
		drift    float64
		vol      float64
		horizon  int
		numPaths int
		rng      *rand.Rand
	}{
		{"zero spot", 0, 0.02, 0.25, 90, 100, rng},
		{"negative spot", -10, 0.02, 0.25, 90, 100, rng},
		{"zero horizon", 500, 0.02, 0.25, 0, 100, rng},
		{"zero paths", 500, 0.02, 0.25, 90, 0, rng},
		{"negative volatility", 500, 0.02, -0.25, 90, 100, rng},
		{"nil rng", 500, 0.02, 0.25, 90, 100, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.spot, tc.drift, tc.vol, tc.horizon, tc.numPaths, tc.rng)
			assert.True(t, errors.Is(err, contracts.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestGenerate_VolatilityWidensDistribution(t *testing.T) {
	low, err := Generate(100, 0.02, 0.1, 126, 2000, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	high, err := Generate(100, 0.02, 0.4, 126, 2000, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	assert.Greater(t, sampleStdDev(high.FinalPrices()), sampleStdDev(low.FinalPrices()))
}

func sampleStdDev(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
