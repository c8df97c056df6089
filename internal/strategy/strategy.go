package strategy

import (
	"fmt"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/simulation"
)

// Strategy identifiers (closed set)
const (
	NoHedge      = "no_hedge"
	FullHedge    = "full_hedge"
	PartialHedge = "partial_hedge"
	DynamicHedge = "dynamic_hedge"
)

// Strategy computes the per-unit realized price for one simulated path.
// ⭐ SSOT: 헤징 전략은 이 인터페이스의 변형으로만 추가
// (중앙 조건문 대신 변형 추가로 확장)
type Strategy interface {
	// ID returns the strategy identifier
	ID() string

	// Evaluate returns the unit outcome (realized price per unit of
	// production) for a single price path. Non-dynamic strategies only
	// use the terminal price path[len(path)-1].
	Evaluate(path []float64, futuresPrice float64) float64
}

// New creates a strategy by identifier, applying parameter defaults
func New(id string, params contracts.StrategyParams) (Strategy, error) {
	switch id {
	case NoHedge:
		return noHedge{}, nil

	case FullHedge:
		return fullHedge{}, nil

	case PartialHedge:
		ratio := params.HedgeRatio
		if ratio == 0 {
			ratio = 0.5
		}
		if ratio < 0 || ratio > 1 {
			return nil, fmt.Errorf("%w: hedge ratio must be in [0,1], got %.4f",
				contracts.ErrInvalidConfig, ratio)
		}
		return partialHedge{ratio: ratio}, nil

	case DynamicHedge:
		return dynamicHedge{policy: NewCoveragePolicy(params.Dynamic)}, nil

	default:
		return nil, fmt.Errorf("%w: %q", contracts.ErrUnknownStrategy, id)
	}
}

// IDs returns all known strategy identifiers in display order
func IDs() []string {
	return []string{NoHedge, FullHedge, PartialHedge, DynamicHedge}
}

// Apply evaluates a strategy over every path in the matrix and scales
// unit outcomes by production volume.
// 반환: 경로당 하나의 스칼라 (OutcomeVector)
func Apply(s Strategy, matrix simulation.PathMatrix, volume, futuresPrice float64) ([]float64, error) {
	if volume <= 0 {
		return nil, fmt.Errorf("%w: production volume must be positive, got %.4f",
			contracts.ErrInvalidConfig, volume)
	}
	if futuresPrice <= 0 {
		return nil, fmt.Errorf("%w: futures price must be positive, got %.4f",
			contracts.ErrInvalidConfig, futuresPrice)
	}

	outcomes := make([]float64, matrix.NumPaths())
	for p, path := range matrix {
		outcomes[p] = s.Evaluate(path, futuresPrice) * volume
	}
	return outcomes, nil
}
