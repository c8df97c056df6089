package simconfig

import "github.com/wonny/hedgesim/internal/contracts"

// Config는 시뮬레이터 전체 설정 (상품 카탈로그 + 기본값)
type Config struct {
	Meta        Meta           `yaml:"meta" json:"meta"`
	Defaults    Defaults       `yaml:"defaults" json:"defaults"`
	Commodities []CommodityDef `yaml:"commodities" json:"commodities"`
}

// Meta 메타 정보
type Meta struct {
	ConfigID string `yaml:"config_id" json:"config_id"`
	Version  string `yaml:"version" json:"version"`
}

// Defaults holds simulation defaults applied when a request omits them
type Defaults struct {
	NumPaths      int     `yaml:"num_paths" json:"num_paths"`             // 기본: 10000
	HorizonDays   int     `yaml:"horizon_days" json:"horizon_days"`      // 거래일 기준
	HistogramBins int     `yaml:"histogram_bins" json:"histogram_bins"`  // 기본: 50
	RiskFreeRate  float64 `yaml:"risk_free_rate" json:"risk_free_rate"`  // 연율
}

// CommodityDef describes one commodity in the catalog
type CommodityDef struct {
	Code       string  `yaml:"code" json:"code"`
	Name       string  `yaml:"name" json:"name"`
	Unit       string  `yaml:"unit" json:"unit"`
	BasePrice  float64 `yaml:"base_price" json:"base_price"`
	Volatility float64 `yaml:"volatility" json:"volatility"`
	Trend      float64 `yaml:"trend" json:"trend"`
}

// Catalog converts the commodity definitions to the shared contract type
func (c *Config) Catalog() []contracts.Commodity {
	out := make([]contracts.Commodity, len(c.Commodities))
	for i, d := range c.Commodities {
		out[i] = contracts.Commodity{
			Code:       d.Code,
			Name:       d.Name,
			Unit:       d.Unit,
			BasePrice:  d.BasePrice,
			Volatility: d.Volatility,
			Trend:      d.Trend,
		}
	}
	return out
}
