package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/hedgesim/internal/scheduler"
	"github.com/wonny/hedgesim/internal/scheduler/jobs"
	"github.com/wonny/hedgesim/pkg/redis"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 시작",
	Long: `백그라운드 스케줄러를 시작합니다.

Jobs:
  market_refresh  매일 00:10 합성 시계열 1일 연장 + 캐시 무효화

Example:
  go run ./cmd/hedgesim scheduler`,
	RunE: runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== HedgeSim Scheduler ===")

	cfg, log, simCfg, err := setup()
	if err != nil {
		return err
	}

	synthetic := newSyntheticProvider(cfg, simCfg)

	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "hedgesim")

	sched := scheduler.New(log)

	refreshJob := jobs.NewMarketRefreshJob(synthetic, cache, time.Now().UnixNano(), log.WithComponent("jobs"))
	if err := sched.AddJob(refreshJob); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.WithField("signal", sig.String()).Info("Shutdown signal received")
	return nil
}
