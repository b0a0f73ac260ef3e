package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shouni/go-radio-playlist/internal/pipeline"
)

var (
	fromFlag string // --from 期間の開始日
	toFlag   string // --to 期間の終了日 (この日を含む)
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "期間内の各日のプレイリストを順番に取得し、連結して出力します",
	Long: `--from から --to までの各日 (両端を含む) のプレイリストを1日ずつ取得し、日付順に連結して出力します。
いずれかの日の取得に失敗した場合は、それまでの結果を出力せずに終了します。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDate(fromFlag)
		if err != nil {
			return err
		}
		to, err := parseDate(toFlag)
		if err != nil {
			return err
		}
		cfg, err := newPipelineConfig()
		if err != nil {
			return err
		}
		if from.After(to) {
			logger.Warn("開始日が終了日より後のため、結果は空になります", "from", fromFlag, "to", toFlag)
		}

		logger.Info("期間のプレイリストを取得します", "from", fromFlag, "to", toFlag, "station", cfg.Station)
		err = writeOutput(Flags.OutputFile, func(w io.Writer) error {
			return pipeline.DownloadRange(context.Background(), cfg, from, to, w)
		})
		if err != nil {
			return fmt.Errorf("プレイリスト取得パイプラインの実行エラー: %w", err)
		}
		return nil
	},
}

func init() {
	rangeCmd.Flags().StringVar(&fromFlag, "from", "", "期間の開始日 (YYYY-MM-DD)")
	rangeCmd.Flags().StringVar(&toFlag, "to", "", "期間の終了日 (YYYY-MM-DD)")
	rangeCmd.MarkFlagRequired("from")
	rangeCmd.MarkFlagRequired("to")
}
