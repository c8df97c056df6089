package simconfig

import "fmt"

// Validate checks structural invariants of the simulator config
func Validate(cfg *Config) error {
	if cfg.Meta.ConfigID == "" {
		return fmt.Errorf("meta.config_id is required")
	}

	if cfg.Defaults.NumPaths < 1 {
		return fmt.Errorf("defaults.num_paths must be >= 1, got %d", cfg.Defaults.NumPaths)
	}
	if cfg.Defaults.HorizonDays < 1 {
		return fmt.Errorf("defaults.horizon_days must be >= 1, got %d", cfg.Defaults.HorizonDays)
	}
	if cfg.Defaults.HistogramBins < 1 {
		return fmt.Errorf("defaults.histogram_bins must be >= 1, got %d", cfg.Defaults.HistogramBins)
	}
	if cfg.Defaults.RiskFreeRate < 0 {
		return fmt.Errorf("defaults.risk_free_rate must be >= 0, got %f", cfg.Defaults.RiskFreeRate)
	}

	if len(cfg.Commodities) == 0 {
		return fmt.Errorf("at least one commodity is required")
	}

	seen := make(map[string]bool, len(cfg.Commodities))
	for i, c := range cfg.Commodities {
		if c.Code == "" {
			return fmt.Errorf("commodities[%d]: code is required", i)
		}
		if seen[c.Code] {
			return fmt.Errorf("commodities[%d]: duplicate code %q", i, c.Code)
		}
		seen[c.Code] = true

		if c.BasePrice <= 0 {
			return fmt.Errorf("commodity %s: base_price must be positive, got %f", c.Code, c.BasePrice)
		}
		if c.Volatility < 0 {
			return fmt.Errorf("commodity %s: volatility must be >= 0, got %f", c.Code, c.Volatility)
		}
	}

	return nil
}
