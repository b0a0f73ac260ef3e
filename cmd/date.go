package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shouni/go-radio-playlist/internal/pipeline"
)

var dateFlag string

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "指定した1日分のプレイリストを取得します",
	Long:  `Muziekweb から指定した日付・放送局のプレイリストを取得し、時刻・曲名・アーティストを表形式で出力します。`,
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(dateFlag)
		if err != nil {
			return err
		}

		cfg, err := newPipelineConfig()
		if err != nil {
			return err
		}

		logger.Info("プレイリストを取得します", "date", dateFlag, "station", cfg.Station)
		err = writeOutput(Flags.OutputFile, func(w io.Writer) error {
			return pipeline.DownloadDate(context.Background(), cfg, date, w)
		})
		if err != nil {
			return fmt.Errorf("プレイリスト取得パイプラインの実行エラー: %w", err)
		}
		return nil
	},
}

func init() {
	dateCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "取得する日付 (YYYY-MM-DD)")
	dateCmd.MarkFlagRequired("date")
}
