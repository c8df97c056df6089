package marketdata

import (
	"context"
	"fmt"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/volatility"
)

// StoreProvider implements contracts.PriceProvider on top of the
// postgres repository. catalog는 상품 메타데이터(이름/단위) 용도.
type StoreProvider struct {
	repo    contracts.PriceRepository
	catalog []contracts.Commodity
}

// NewStoreProvider creates a repository-backed price provider
func NewStoreProvider(repo contracts.PriceRepository, catalog []contracts.Commodity) *StoreProvider {
	return &StoreProvider{repo: repo, catalog: catalog}
}

// Series loads the stored series and fail-fasts on contract violations
func (p *StoreProvider) Series(ctx context.Context, code string) (*contracts.PriceSeries, error) {
	series, err := p.repo.GetSeries(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("stored series violates contract: %w", err)
	}
	return series, nil
}

// CurrentPrice returns the most recent stored price
func (p *StoreProvider) CurrentPrice(ctx context.Context, code string) (float64, error) {
	point, err := p.repo.GetLatest(ctx, code)
	if err != nil {
		return 0, err
	}
	return point.Price, nil
}

// Commodities returns catalog snapshots from stored history
func (p *StoreProvider) Commodities(ctx context.Context) ([]contracts.CommoditySnapshot, error) {
	snapshots := make([]contracts.CommoditySnapshot, 0, len(p.catalog))

	for _, c := range p.catalog {
		series, err := p.repo.GetSeries(ctx, c.Code)
		if err != nil {
			// 아직 seed되지 않은 상품은 건너뜀
			continue
		}

		last, ok := series.Last()
		if !ok {
			continue
		}

		params, err := volatility.Estimate(trailingWindow(series, volatility.PeriodsPerYear+1))
		if err != nil {
			return nil, fmt.Errorf("estimate volatility for %s: %w", c.Code, err)
		}

		snapshots = append(snapshots, contracts.CommoditySnapshot{
			Code:         c.Code,
			Name:         c.Name,
			Unit:         c.Unit,
			CurrentPrice: last.Price,
			Volatility:   params.Volatility,
		})
	}
	return snapshots, nil
}
