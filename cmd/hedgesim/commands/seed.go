package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/hedgesim/internal/marketdata"
	"github.com/wonny/hedgesim/pkg/database"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "과거 가격 데이터 DB 적재",
	Long: `합성 과거 가격 시계열을 생성해 PostgreSQL에 적재합니다.

적재된 데이터는 api --source postgres에서 사용됩니다.
시뮬레이션 결과는 저장되지 않음 (입력 데이터만 영속화).

Example:
  go run ./cmd/hedgesim seed
  SIM_DATA_SEED=42 go run ./cmd/hedgesim seed`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("=== HedgeSim Data Seeder ===")

	cfg, log, simCfg, err := setup()
	if err != nil {
		return err
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := marketdata.NewRepository(db.Pool)
	synthetic := newSyntheticProvider(cfg, simCfg)

	ctx := context.Background()
	for _, c := range simCfg.Catalog() {
		series, err := synthetic.Series(ctx, c.Code)
		if err != nil {
			return err
		}

		if err := repo.SaveSeries(ctx, series); err != nil {
			return fmt.Errorf("seed %s: %w", c.Code, err)
		}

		log.WithFields(map[string]interface{}{
			"commodity": c.Code,
			"points":    series.Len(),
		}).Info("Series seeded")
		fmt.Printf("✓ %s: %d daily prices\n", c.Code, series.Len())
	}

	return nil
}
