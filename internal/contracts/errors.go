package contracts

import "errors"

// Error taxonomy for the simulation core.
// 모든 에러는 동기적으로 발생하고 호출자에게 그대로 전달됨 (기본값 대체 없음)
var (
	// ErrInsufficientData: history too short to estimate volatility
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidConfig: non-positive spot price, volume, horizon, or path count
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownStrategy: unrecognized strategy identifier
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNumericInstability: non-finite value produced during path generation
	ErrNumericInstability = errors.New("numeric instability")

	// ErrUnknownCommodity: commodity code not present in the catalog
	ErrUnknownCommodity = errors.New("unknown commodity")
)
