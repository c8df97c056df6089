package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/hedgesim/internal/api"
	"github.com/wonny/hedgesim/internal/api/handlers"
	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/engine"
	"github.com/wonny/hedgesim/internal/marketdata"
	"github.com/wonny/hedgesim/pkg/database"
	"github.com/wonny/hedgesim/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health                  - Health check
  POST /api/simulate            - 시뮬레이션 실행
  POST /api/compare             - 전략 비교 (동일 경로)
  GET  /api/strategies          - 전략 목록
  GET  /api/commodities         - 상품 카탈로그 + 현재가
  GET  /api/historical/{code}   - 과거 가격 시계열

Example:
  go run ./cmd/hedgesim api
  go run ./cmd/hedgesim api --port 8090
  go run ./cmd/hedgesim api --source postgres`,
	RunE: runAPIServer,
}

var (
	apiPort   string
	apiSource string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT env)")
	apiCmd.Flags().StringVar(&apiSource, "source", "synthetic", "가격 데이터 소스 (synthetic|postgres)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== HedgeSim API Server ===")

	// 1. Load config + logger + catalog
	cfg, log, simCfg, err := setup()
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Select price provider
	var provider contracts.PriceProvider
	switch apiSource {
	case "synthetic":
		provider = newSyntheticProvider(cfg, simCfg)

	case "postgres":
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		log.Info("Connected to database")

		provider = marketdata.NewStoreProvider(marketdata.NewRepository(db.Pool), simCfg.Catalog())

	default:
		return fmt.Errorf("unknown price source %q (synthetic|postgres)", apiSource)
	}

	// 3. Redis cache (no-op when disabled)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "hedgesim")

	// 4. Engine + handlers + router
	eng := engine.New(provider, log)
	simHandler := handlers.NewSimulationHandler(eng, simCfg.Defaults, log.WithComponent("api"))
	dataHandler := handlers.NewDataHandler(provider, cache, log.WithComponent("api"))
	router := api.NewRouter(simHandler, dataHandler, log)

	// 5. Start server with graceful shutdown
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
