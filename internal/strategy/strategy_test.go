package strategy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/simulation"
)

func testMatrix(t *testing.T) simulation.PathMatrix {
	t.Helper()
	matrix, err := simulation.Generate(500, 0.02, 0.25, 90, 500, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return matrix
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := New("collar", contracts.StrategyParams{})
	assert.True(t, errors.Is(err, contracts.ErrUnknownStrategy), "got %v", err)
}

func TestNew_HedgeRatioOutOfRange(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.5} {
		_, err := New(PartialHedge, contracts.StrategyParams{HedgeRatio: ratio})
		assert.True(t, errors.Is(err, contracts.ErrInvalidConfig), "ratio %.2f: got %v", ratio, err)
	}
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{NoHedge, FullHedge, PartialHedge, DynamicHedge}, IDs())
}

func TestFullHedge_PathInvariant(t *testing.T) {
	matrix := testMatrix(t)

	s, err := New(FullHedge, contracts.StrategyParams{})
	require.NoError(t, err)

	outcomes, err := Apply(s, matrix, 1000, 510)
	require.NoError(t, err)

	// 전량 선도 가격 고정 → 경로와 무관하게 정확히 510 * 1000
	for _, outcome := range outcomes {
		require.Equal(t, 510000.0, outcome)
	}
}

func TestNoHedge_TerminalPrice(t *testing.T) {
	matrix := testMatrix(t)

	s, err := New(NoHedge, contracts.StrategyParams{})
	require.NoError(t, err)

	outcomes, err := Apply(s, matrix, 1000, 510)
	require.NoError(t, err)

	finals := matrix.FinalPrices()
	for i, outcome := range outcomes {
		require.Equal(t, finals[i]*1000, outcome)
	}
}

func TestPartialHedge_BlendsEndpoints(t *testing.T) {
	matrix := testMatrix(t)

	partial, err := New(PartialHedge, contracts.StrategyParams{HedgeRatio: 0.6})
	require.NoError(t, err)

	outcomes, err := Apply(partial, matrix, 1000, 510)
	require.NoError(t, err)

	finals := matrix.FinalPrices()
	for i, outcome := range outcomes {
		expected := (0.6*510 + 0.4*finals[i]) * 1000
		require.InDelta(t, expected, outcome, 1e-6)
	}
}

func TestPartialHedge_DefaultRatio(t *testing.T) {
	// ratio 0 → 기본값 0.5
	s, err := New(PartialHedge, contracts.StrategyParams{})
	require.NoError(t, err)

	unit := s.Evaluate([]float64{100, 120}, 100)
	assert.InDelta(t, 0.5*100+0.5*120, unit, 1e-12)
}

func TestPartialHedge_VarianceBetweenExtremes(t *testing.T) {
	matrix := testMatrix(t)

	variance := func(id string, params contracts.StrategyParams) float64 {
		s, err := New(id, params)
		require.NoError(t, err)
		outcomes, err := Apply(s, matrix, 1000, 510)
		require.NoError(t, err)

		mean := 0.0
		for _, o := range outcomes {
			mean += o
		}
		mean /= float64(len(outcomes))
		sum := 0.0
		for _, o := range outcomes {
			d := o - mean
			sum += d * d
		}
		return sum / float64(len(outcomes)-1)
	}

	vFull := variance(FullHedge, contracts.StrategyParams{})
	vPartial := variance(PartialHedge, contracts.StrategyParams{HedgeRatio: 0.5})
	vNone := variance(NoHedge, contracts.StrategyParams{})

	assert.Equal(t, 0.0, vFull)
	assert.Greater(t, vPartial, vFull)
	assert.Greater(t, vNone, vPartial)
	// ratio 0.5 → 분산은 no-hedge의 1/4
	assert.InDelta(t, vNone/4, vPartial, vNone*0.001)
}

func TestDynamicHedge_RatchetsUpOnDecline(t *testing.T) {
	s, err := New(DynamicHedge, contracts.StrategyParams{})
	require.NoError(t, err)

	// 하락 경로: 커버리지가 0.5 → 0.55 → 0.6으로 단계 상승
	// locked = 0.5*100 + 0.05*90 + 0.05*80, 잔여 0.4는 종가 80
	unit := s.Evaluate([]float64{100, 90, 80}, 100)
	assert.InDelta(t, 50+4.5+4+0.4*80, unit, 1e-9)

	// no-hedge 종가 80보다 좋고 full-hedge 100보다는 나쁨
	assert.Greater(t, unit, 80.0)
	assert.Less(t, unit, 100.0)
}

func TestDynamicHedge_NoRatchetDownOnRally(t *testing.T) {
	s, err := New(DynamicHedge, contracts.StrategyParams{})
	require.NoError(t, err)

	// 상승 경로: 목표 커버리지는 내려가지만 초기 0.5는 유지됨
	unit := s.Evaluate([]float64{100, 110, 130}, 100)
	assert.InDelta(t, 0.5*100+0.5*130, unit, 1e-9)
}

func TestCoveragePolicy_Clipping(t *testing.T) {
	policy := NewCoveragePolicy(contracts.DynamicParams{
		BaseCoverage: 0.5,
		Sensitivity:  0.5,
		Floor:        0.1,
		Cap:          0.9,
	})

	// 폭락 → cap, 폭등 → floor
	assert.Equal(t, 0.9, policy(100, 1))
	assert.Equal(t, 0.1, policy(100, 500))
	assert.InDelta(t, 0.55, policy(100, 90), 1e-12)
}

func TestApply_Validation(t *testing.T) {
	matrix := testMatrix(t)
	s, err := New(NoHedge, contracts.StrategyParams{})
	require.NoError(t, err)

	_, err = Apply(s, matrix, 0, 510)
	assert.True(t, errors.Is(err, contracts.ErrInvalidConfig))

	_, err = Apply(s, matrix, 1000, 0)
	assert.True(t, errors.Is(err, contracts.ErrInvalidConfig))
}

func TestDynamicHedge_MeanBetweenExtremes(t *testing.T) {
	matrix := testMatrix(t)

	meanOutcome := func(id string) float64 {
		s, err := New(id, contracts.StrategyParams{})
		require.NoError(t, err)
		outcomes, err := Apply(s, matrix, 1000, 500)
		require.NoError(t, err)

		sum := 0.0
		for _, o := range outcomes {
			sum += o
		}
		return sum / float64(len(outcomes))
	}

	mDynamic := meanOutcome(DynamicHedge)
	mNone := meanOutcome(NoHedge)
	mFull := meanOutcome(FullHedge)

	lo := math.Min(mNone, mFull)
	hi := math.Max(mNone, mFull)
	assert.Greater(t, mDynamic, lo*0.95)
	assert.Less(t, mDynamic, hi*1.05)
}
