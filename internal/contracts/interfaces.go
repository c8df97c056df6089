package contracts

import "context"

// PriceProvider supplies validated historical prices to the simulation core.
// ⭐ SSOT: 코어는 이 인터페이스를 통해서만 과거 데이터를 읽음
// 구현: marketdata.Synthetic (in-memory), marketdata.StoreProvider (postgres)
type PriceProvider interface {
	// Series returns the full historical series for a commodity
	Series(ctx context.Context, code string) (*PriceSeries, error)

	// CurrentPrice returns the most recent price for a commodity
	CurrentPrice(ctx context.Context, code string) (float64, error)

	// Commodities returns catalog metadata with current snapshots
	Commodities(ctx context.Context) ([]CommoditySnapshot, error)
}

// PriceRepository persists historical prices (input data only;
// simulation results are never persisted)
type PriceRepository interface {
	SaveSeries(ctx context.Context, series *PriceSeries) error
	GetSeries(ctx context.Context, code string) (*PriceSeries, error)
	GetLatest(ctx context.Context, code string) (*PricePoint, error)
}
