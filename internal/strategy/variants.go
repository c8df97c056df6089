package strategy

import "github.com/wonny/hedgesim/internal/contracts"

// =============================================================================
// No Hedge
// =============================================================================

// noHedge leaves the full volume exposed to the terminal spot price
type noHedge struct{}

func (noHedge) ID() string { return NoHedge }

func (noHedge) Evaluate(path []float64, _ float64) float64 {
	return path[len(path)-1]
}

// =============================================================================
// Full Hedge
// =============================================================================

// fullHedge locks in the futures price for the entire volume;
// the outcome is invariant to the simulated path
type fullHedge struct{}

func (fullHedge) ID() string { return FullHedge }

func (fullHedge) Evaluate(_ []float64, futuresPrice float64) float64 {
	return futuresPrice
}

// =============================================================================
// Partial Hedge
// =============================================================================

// partialHedge locks a fixed fraction at the futures price and leaves
// the remainder exposed to the terminal price
type partialHedge struct {
	ratio float64
}

func (partialHedge) ID() string { return PartialHedge }

func (s partialHedge) Evaluate(path []float64, futuresPrice float64) float64 {
	final := path[len(path)-1]
	return s.ratio*futuresPrice + (1-s.ratio)*final
}

// =============================================================================
// Dynamic Hedge
// =============================================================================

// CoveragePolicy maps the current path price to a target coverage
// fraction given the futures reference price.
// 동적 헤지 규칙은 하드코딩 대신 정책 함수로 주입됨
type CoveragePolicy func(futuresPrice, price float64) float64

// NewCoveragePolicy builds the default linear coverage rule from params:
//
//	coverage(S) = clip(base + sensitivity*(F-S)/F, floor, cap)
//
// 가격이 futures 아래로 떨어질수록 커버리지 증가, 위로 오르면 감소
func NewCoveragePolicy(p contracts.DynamicParams) CoveragePolicy {
	base := p.BaseCoverage
	if base == 0 {
		base = 0.5
	}
	sens := p.Sensitivity
	if sens == 0 {
		sens = 0.5
	}
	floor := p.Floor
	cap := p.Cap
	if cap == 0 {
		cap = 1.0
	}

	return func(futuresPrice, price float64) float64 {
		c := base + sens*(futuresPrice-price)/futuresPrice
		if c < floor {
			return floor
		}
		if c > cap {
			return cap
		}
		return c
	}
}

// dynamicHedge recomputes target coverage at every step of the path.
// Coverage only ratchets up: once a fraction is locked it stays locked.
// The initial coverage is locked at the quoted futures price; later
// increments are locked at the prevailing path price at the step where
// coverage changed. The uncovered remainder realizes the terminal price.
type dynamicHedge struct {
	policy CoveragePolicy
}

func (dynamicHedge) ID() string { return DynamicHedge }

func (s dynamicHedge) Evaluate(path []float64, futuresPrice float64) float64 {
	covered := s.policy(futuresPrice, path[0])
	locked := covered * futuresPrice

	for t := 1; t < len(path); t++ {
		target := s.policy(futuresPrice, path[t])
		if target > covered {
			// Lock the increment at the prevailing price
			locked += (target - covered) * path[t]
			covered = target
		}
	}

	final := path[len(path)-1]
	return locked + (1-covered)*final
}
