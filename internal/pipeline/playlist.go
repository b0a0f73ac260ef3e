package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shouni/go-radio-playlist/pkg/client"
	"github.com/shouni/go-radio-playlist/pkg/playlist"
	"github.com/shouni/go-radio-playlist/pkg/render"
	"github.com/shouni/go-radio-playlist/pkg/types"
)

// Config は、プレイリスト取得パイプラインの設定です。
type Config struct {
	Station string
	Timeout time.Duration // HTTPクライアントのタイムアウト (0以下でデフォルト)
	Format  render.Format
	Logger  *log.Logger

	// Fetcher が nil の場合は client.New(Timeout) を使用します。
	Fetcher playlist.Fetcher
}

// DownloadDate は、指定日のプレイリストを取得して w に書き出します。
func DownloadDate(ctx context.Context, cfg Config, date time.Time, w io.Writer) error {
	downloader, err := newDownloader(cfg)
	if err != nil {
		return err
	}

	songs, err := downloader.GetPlaylistForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("プレイリストの取得エラー (日付: %s%s): %w", date.Format(types.DateLayout), errorHint(err), err)
	}
	return render.Write(w, songs, cfg.Format)
}

// DownloadRange は、from から to まで (両端を含む) のプレイリストを取得して w に書き出します。
func DownloadRange(ctx context.Context, cfg Config, from, to time.Time, w io.Writer) error {
	downloader, err := newDownloader(cfg)
	if err != nil {
		return err
	}

	songs, err := downloader.GetPlaylistForRange(ctx, from, to)
	if err != nil {
		return fmt.Errorf("期間のプレイリストの取得エラー (%s から %s%s): %w",
			from.Format(types.DateLayout), to.Format(types.DateLayout), errorHint(err), err)
	}
	return render.Write(w, songs, cfg.Format)
}

// newDownloader は、設定から Fetcher と Downloader を初期化します (依存性の初期化)。
func newDownloader(cfg Config) (*playlist.Downloader, error) {
	fetcher := cfg.Fetcher
	if fetcher == nil {
		c := client.New(cfg.Timeout)
		if cfg.Logger != nil {
			cfg.Logger.Debug("HTTPクライアントを初期化しました", "timeout", c.Timeout())
		}
		fetcher = c
	}

	station := cfg.Station
	if station == "" {
		station = playlist.DefaultStation
	}

	downloader, err := playlist.NewDownloader(fetcher,
		playlist.WithStation(station),
		playlist.WithLogger(cfg.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("Downloaderの初期化エラー: %w", err)
	}
	return downloader, nil
}

// errorHint は、エラーの種類に応じてメッセージに添える補足を返します。
func errorHint(err error) string {
	switch {
	case client.IsNonRetryableError(err):
		return ", 4xx: 日付または放送局名を確認してください"
	case playlist.IsStructureNotFound(err):
		return ", ページ構造が想定と異なります"
	default:
		return ""
	}
}
