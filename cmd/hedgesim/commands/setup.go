package commands

import (
	"fmt"

	"github.com/wonny/hedgesim/internal/marketdata"
	"github.com/wonny/hedgesim/internal/simconfig"
	"github.com/wonny/hedgesim/pkg/config"
	"github.com/wonny/hedgesim/pkg/logger"
)

// setup loads env config, logger, and the simulator YAML config
// 모든 커맨드의 공통 초기화 경로
func setup() (*config.Config, *logger.Logger, *simconfig.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
		cfg.LogFormat = "console"
	}

	log := logger.New(cfg)

	path := cfg.Simulator.ConfigPath
	if configFile != "" {
		path = configFile
	}

	simCfg, _, err := simconfig.Load(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load simulator config %s: %w", path, err)
	}

	return cfg, log, simCfg, nil
}

// newSyntheticProvider builds the in-memory price provider from the catalog
func newSyntheticProvider(cfg *config.Config, simCfg *simconfig.Config) *marketdata.Synthetic {
	return marketdata.NewSynthetic(simCfg.Catalog(), cfg.Simulator.DataSeed)
}
