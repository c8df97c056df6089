package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/hedgesim/internal/contracts"
	"github.com/wonny/hedgesim/internal/engine"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "헤징 시뮬레이션 실행",
	Long: `선택한 상품과 전략으로 Monte Carlo 시뮬레이션을 실행합니다.

전략:
  no_hedge       전량 현물 노출 (최대 리스크/리워드)
  full_hedge     선물가로 전량 고정 (가격 리스크 제거)
  partial_hedge  일부만 고정 (--hedge-ratio, 기본 0.5)
  dynamic_hedge  가격 하락 시 커버리지 증가 (경로 의존)

Flags:
  --commodity   상품 코드 (CORN, WHEAT, SOYBEANS, COFFEE, COTTON)
  --volume      생산량 (헤지 대상 수량, 필수)
  --spot        현물가 (0 = 현재 시장가 사용)
  --horizon     기간 (거래일, 0 = 설정 기본값)
  --paths       시뮬레이션 횟수 (0 = 설정 기본값)
  --seed        RNG 시드 (재현성, 0 = 랜덤)

Example:
  go run ./cmd/hedgesim simulate --commodity CORN --volume 10000 --strategy full_hedge
  go run ./cmd/hedgesim simulate --commodity WHEAT --volume 5000 --strategy partial_hedge --hedge-ratio 0.7
  go run ./cmd/hedgesim simulate --commodity CORN --volume 10000 --strategy no_hedge --seed 42`,
	RunE: runSimulate,
}

var (
	simCommodity  string
	simVolume     float64
	simSpot       float64
	simHorizon    int
	simPaths      int
	simStrategy   string
	simFutures    float64
	simSeed       int64
	simHedgeRatio float64
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	// Flags
	simulateCmd.Flags().StringVar(&simCommodity, "commodity", "CORN", "상품 코드")
	simulateCmd.Flags().Float64Var(&simVolume, "volume", 0, "생산량 (필수)")
	simulateCmd.Flags().Float64Var(&simSpot, "spot", 0, "현물가 (0 = 현재 시장가)")
	simulateCmd.Flags().IntVar(&simHorizon, "horizon", 0, "기간 (거래일)")
	simulateCmd.Flags().IntVar(&simPaths, "paths", 0, "시뮬레이션 횟수")
	simulateCmd.Flags().StringVar(&simStrategy, "strategy", "no_hedge", "헤징 전략")
	simulateCmd.Flags().Float64Var(&simFutures, "futures", 0, "선물가 (0 = 현물가와 동일)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "RNG 시드")
	simulateCmd.Flags().Float64Var(&simHedgeRatio, "hedge-ratio", 0, "partial_hedge 고정 비율")

	simulateCmd.MarkFlagRequired("volume")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	fmt.Println("=== HedgeSim Monte Carlo Simulation ===")

	cfg, log, simCfg, err := setup()
	if err != nil {
		return err
	}

	provider := newSyntheticProvider(cfg, simCfg)
	eng := engine.New(provider, log)

	runCfg := contracts.SimulationConfig{
		Commodity:        simCommodity,
		SpotPrice:        simSpot,
		ProductionVolume: simVolume,
		HorizonDays:      simHorizon,
		NumPaths:         simPaths,
		Strategy:         simStrategy,
		FuturesPrice:     simFutures,
		Seed:             simSeed,
		StrategyParams: contracts.StrategyParams{
			HedgeRatio: simHedgeRatio,
		},
	}
	if runCfg.HorizonDays == 0 {
		runCfg.HorizonDays = simCfg.Defaults.HorizonDays
	}
	if runCfg.NumPaths == 0 {
		runCfg.NumPaths = simCfg.Defaults.NumPaths
	}

	result, err := eng.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

// printResult renders a simulation result for the terminal
func printResult(r *contracts.SimulationResult) {
	fmt.Printf("\n📦 Commodity: %s  |  Strategy: %s\n", r.Config.Commodity, r.Config.Strategy)
	fmt.Printf("💰 Spot: %s  |  Futures: %s  |  Volume: %s\n",
		formatMoney(r.Config.SpotPrice), formatMoney(r.FuturesPrice), formatMoney(r.Config.ProductionVolume))
	fmt.Printf("📈 Drift: %.4f  |  Volatility: %s  |  Paths: %d  |  Horizon: %d days\n",
		r.Volatility.Drift, formatPct(r.Volatility.Volatility), r.Config.NumPaths, r.Config.HorizonDays)

	m := r.Metrics
	fmt.Println("\n--- Risk Metrics ---")
	fmt.Printf("Mean revenue     : %s\n", formatMoney(m.Mean))
	fmt.Printf("Std deviation    : %s\n", formatMoney(m.StdDev))
	fmt.Printf("VaR (95%%)        : %s\n", formatMoney(m.VaR95))
	fmt.Printf("ES (95%%)         : %s\n", formatMoney(m.ExpectedShortfall95))
	fmt.Printf("Sharpe ratio     : %.4f\n", m.SharpeRatio)
	fmt.Printf("Max DD (mean)    : %s\n", formatPct(m.MaxDrawdownMean))
	fmt.Printf("Max DD (worst)   : %s\n", formatPct(m.MaxDrawdownWorst))

	fmt.Println("\n--- Scenarios ---")
	fmt.Printf("Best case        : %s\n", formatMoney(r.Scenarios.BestCase))
	fmt.Printf("Median           : %s\n", formatMoney(r.Scenarios.Median))
	fmt.Printf("Worst case       : %s\n", formatMoney(r.Scenarios.WorstCase))
}
