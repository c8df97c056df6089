package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hedgesim",
	Short: "HedgeSim - 원자재 선물 헤징 Monte Carlo 시뮬레이터",
	Long: `HedgeSim Unified CLI

원자재 가격의 확률적 미래 경로를 생성하고, 헤징 전략별
수익 분포와 리스크 지표(VaR, Expected Shortfall, Sharpe, MDD)를 계산합니다.

Usage:
  go run ./cmd/hedgesim [command]

Examples:
  go run ./cmd/hedgesim simulate --commodity CORN --volume 10000 --strategy full_hedge
  go run ./cmd/hedgesim compare --commodity WHEAT --volume 5000
  go run ./cmd/hedgesim commodities
  go run ./cmd/hedgesim api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "simulator config file (default is config/simulator.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
