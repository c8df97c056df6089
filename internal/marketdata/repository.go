package marketdata

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/hedgesim/internal/contracts"
)

// Repository implements contracts.PriceRepository on PostgreSQL
// ⭐ SSOT: 가격 데이터 영속화는 여기서만 (시뮬레이션 결과는 저장하지 않음)
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new price repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SaveSeries upserts a full historical series
func (r *Repository) SaveSeries(ctx context.Context, series *contracts.PriceSeries) error {
	if err := series.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid series: %w", err)
	}

	query := `
		INSERT INTO data.daily_prices (commodity_code, trade_date, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (commodity_code, trade_date) DO UPDATE SET
			price = EXCLUDED.price
	`

	for _, p := range series.Points {
		if _, err := r.pool.Exec(ctx, query, series.Commodity, p.Date, p.Price); err != nil {
			return fmt.Errorf("save price %s %s: %w", series.Commodity, p.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}

// GetSeries retrieves the full series for a commodity, oldest first
func (r *Repository) GetSeries(ctx context.Context, code string) (*contracts.PriceSeries, error) {
	query := `
		SELECT trade_date, price
		FROM data.daily_prices
		WHERE commodity_code = $1
		ORDER BY trade_date ASC
	`

	rows, err := r.pool.Query(ctx, query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := &contracts.PriceSeries{Commodity: code}
	for rows.Next() {
		var p contracts.PricePoint
		if err := rows.Scan(&p.Date, &p.Price); err != nil {
			return nil, err
		}
		series.Points = append(series.Points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(series.Points) == 0 {
		return nil, fmt.Errorf("%w: no stored prices for %q", contracts.ErrUnknownCommodity, code)
	}
	return series, nil
}

// GetLatest retrieves the most recent price point for a commodity
func (r *Repository) GetLatest(ctx context.Context, code string) (*contracts.PricePoint, error) {
	query := `
		SELECT trade_date, price
		FROM data.daily_prices
		WHERE commodity_code = $1
		ORDER BY trade_date DESC
		LIMIT 1
	`

	var p contracts.PricePoint
	err := r.pool.QueryRow(ctx, query, code).Scan(&p.Date, &p.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", contracts.ErrUnknownCommodity, code)
	}
	return &p, nil
}
