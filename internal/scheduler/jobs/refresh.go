package jobs

import (
	"context"
	"math/rand"

	"github.com/wonny/hedgesim/internal/marketdata"
	"github.com/wonny/hedgesim/pkg/logger"
	"github.com/wonny/hedgesim/pkg/redis"
)

// MarketRefreshJob extends the synthetic history by one trading day and
// invalidates the cached commodity snapshots
type MarketRefreshJob struct {
	synthetic *marketdata.Synthetic
	cache     *redis.Cache
	rng       *rand.Rand
	logger    *logger.Logger
}

// NewMarketRefreshJob creates a new market refresh job.
// rng는 job이 단독 소유 (시뮬레이션 run의 RNG와 무관)
func NewMarketRefreshJob(synthetic *marketdata.Synthetic, cache *redis.Cache, seed int64, log *logger.Logger) *MarketRefreshJob {
	return &MarketRefreshJob{
		synthetic: synthetic,
		cache:     cache,
		rng:       rand.New(rand.NewSource(seed)),
		logger:    log,
	}
}

// Name returns the job name
func (j *MarketRefreshJob) Name() string {
	return "market_refresh"
}

// Schedule returns the cron schedule (daily at 00:10)
func (j *MarketRefreshJob) Schedule() string {
	return "0 10 0 * * *"
}

// Run executes the refresh
func (j *MarketRefreshJob) Run(ctx context.Context) error {
	j.synthetic.Extend(j.rng)

	if err := j.cache.Delete(ctx, "commodities"); err != nil {
		j.logger.WithError(err).Warn("Failed to invalidate commodities cache")
	}

	j.logger.Info("Market history extended by one day")
	return nil
}
