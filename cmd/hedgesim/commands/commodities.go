package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// commoditiesCmd represents the commodities command
var commoditiesCmd = &cobra.Command{
	Use:   "commodities",
	Short: "상품 카탈로그 조회",
	Long: `사용 가능한 상품 목록과 현재가/추정 변동성을 출력합니다.

Example:
  go run ./cmd/hedgesim commodities`,
	RunE: runCommodities,
}

func init() {
	rootCmd.AddCommand(commoditiesCmd)
}

func runCommodities(cmd *cobra.Command, args []string) error {
	cfg, _, simCfg, err := setup()
	if err != nil {
		return err
	}

	provider := newSyntheticProvider(cfg, simCfg)

	snapshots, err := provider.Commodities(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%-10s %-12s %-10s %12s %12s\n", "Code", "Name", "Unit", "Price", "Volatility")
	for _, s := range snapshots {
		fmt.Printf("%-10s %-12s %-10s %12s %12s\n",
			s.Code, s.Name, s.Unit, formatMoney(s.CurrentPrice), formatPct(s.Volatility))
	}

	return nil
}
