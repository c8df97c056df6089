package contracts

import (
	"fmt"
	"time"
)

// PricePoint is a single daily observation of a commodity price
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceSeries is a chronologically ordered series of daily prices
// ⭐ SSOT: 과거 가격 데이터의 표준 표현은 이 타입뿐
// 데이터 제공자(marketdata)가 소유하며 코어는 읽기 전용으로 사용
type PriceSeries struct {
	Commodity string       `json:"commodity"`
	Points    []PricePoint `json:"points"`
}

// Validate checks the data-provider contract: chronological order,
// no duplicate dates, strictly positive prices.
// 코어는 이 계약을 신뢰하고 위반 시 즉시 실패함 (fail-fast)
func (s *PriceSeries) Validate() error {
	for i, p := range s.Points {
		if p.Price <= 0 {
			return fmt.Errorf("price series %s: non-positive price %.4f at index %d", s.Commodity, p.Price, i)
		}
		if i > 0 && !s.Points[i-1].Date.Before(p.Date) {
			return fmt.Errorf("price series %s: dates not strictly increasing at index %d", s.Commodity, i)
		}
	}
	return nil
}

// Len returns the number of observations
func (s *PriceSeries) Len() int {
	return len(s.Points)
}

// Prices returns the price values in chronological order
func (s *PriceSeries) Prices() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Price
	}
	return out
}

// Last returns the most recent price point
func (s *PriceSeries) Last() (PricePoint, bool) {
	if len(s.Points) == 0 {
		return PricePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Commodity describes a tradable commodity in the catalog
type Commodity struct {
	Code       string  `json:"code"`       // e.g. "CORN"
	Name       string  `json:"name"`       // e.g. "Corn"
	Unit       string  `json:"unit"`       // e.g. "bushels"
	BasePrice  float64 `json:"base_price"` // reference price for synthetic history
	Volatility float64 `json:"volatility"` // reference annualized volatility
	Trend      float64 `json:"trend"`      // reference annualized drift
}

// CommoditySnapshot is the display-oriented view of a commodity
// (current price + estimated volatility), used by the API and CLI
type CommoditySnapshot struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	CurrentPrice float64 `json:"current_price"`
	Volatility   float64 `json:"volatility"` // annualized, as a fraction
}
