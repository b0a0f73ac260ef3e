package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"

	"github.com/shouni/go-radio-playlist/internal/pipeline"
	"github.com/shouni/go-radio-playlist/pkg/client"
	"github.com/shouni/go-radio-playlist/pkg/playlist"
	"github.com/shouni/go-radio-playlist/pkg/render"
)

// --- グローバル定数 ---

const (
	appName           = "radio-playlist"
	defaultTimeoutSec = int(client.DefaultHTTPTimeout / time.Second)
	defaultFormat     = string(render.FormatTable)
)

// --- グローバル変数とフラグ構造体 ---

// AppFlags はこのアプリケーション固有の永続フラグを保持
type AppFlags struct {
	TimeoutSec int    // --timeout タイムアウト
	Station    string // --station 放送局名
	Format     string // --format 出力形式
	OutputFile string // --output 出力先ファイル (空なら標準出力)
}

var Flags AppFlags
var logger *log.Logger

// addAppPersistentFlags は、アプリケーション固有の永続フラグをルートコマンドに追加します。
func addAppPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().IntVar(
		&Flags.TimeoutSec,
		"timeout",
		defaultTimeoutSec,
		"HTTPリクエストのタイムアウト時間（秒）",
	)
	rootCmd.PersistentFlags().StringVar(
		&Flags.Station,
		"station",
		playlist.DefaultStation,
		"取得対象の放送局名",
	)
	rootCmd.PersistentFlags().StringVar(
		&Flags.Format,
		"format",
		defaultFormat,
		"出力形式 (table または csv)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&Flags.OutputFile,
		"output",
		"o",
		"",
		"出力先ファイル (省略時は標準出力)",
	)
}

// initAppPreRunE は、clibase共通処理の後に実行される、アプリケーション固有のPersistentPreRunEです。
// NOTE: clibaseの PersistentPreRunE チェーンにより、clibase.Flags.Verbose はこの関数実行前に設定済み
func initAppPreRunE(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if clibase.Flags.Verbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          appName,
	})

	if _, err := render.ParseFormat(Flags.Format); err != nil {
		return err
	}

	logger.Debug("HTTPクライアントを設定しました", "timeout", pipelineTimeout(), "station", Flags.Station)
	return nil
}

// pipelineTimeout は --timeout をHTTPクライアントのタイムアウトに変換します。
func pipelineTimeout() time.Duration {
	return time.Duration(Flags.TimeoutSec) * time.Second
}

// newPipelineConfig は、フラグからパイプラインの設定を組み立てます。
func newPipelineConfig() (pipeline.Config, error) {
	format, err := render.ParseFormat(Flags.Format)
	if err != nil {
		return pipeline.Config{}, err
	}
	if logger == nil {
		return pipeline.Config{}, fmt.Errorf("ロガーが初期化されていません")
	}
	return pipeline.Config{
		Station: Flags.Station,
		Timeout: pipelineTimeout(),
		Format:  format,
		Logger:  logger,
	}, nil
}

// --- エントリポイント ---

// Execute は、rootCmd を実行するメイン関数です。clibaseのExecuteを使用する。
func Execute() {
	clibase.Execute(
		appName,
		addAppPersistentFlags,
		initAppPreRunE,
		dateCmd,
		rangeCmd,
	)
	// clibase.Execute() の中で os.Exit(1) が処理されるため、ここでは不要
}
