package playlist

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shouni/go-radio-playlist/pkg/types"
)

// Downloader は Fetcher を使って Muziekweb のプレイリストを取得します。
// 呼び出しごとの状態は持たず、取得したドキュメントは各呼び出しの中で破棄されます。
type Downloader struct {
	fetcher Fetcher
	station string
	logger  *log.Logger
}

// Option は Downloader の設定を行うための関数型です。
type Option func(*Downloader)

// WithStation は取得対象の放送局を設定します。
func WithStation(station string) Option {
	return func(d *Downloader) {
		d.station = station
	}
}

// WithLogger はデバッグ出力用のロガーを設定します。
func WithLogger(logger *log.Logger) Option {
	return func(d *Downloader) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDownloader は、新しいDownloaderのインスタンスを生成します。
func NewDownloader(fetcher Fetcher, opts ...Option) (*Downloader, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("playlist.NewDownloader: Fetcher cannot be nil")
	}

	d := &Downloader{
		fetcher: fetcher,
		station: DefaultStation,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Station は取得対象の放送局名を返します。
func (d *Downloader) Station() string {
	return d.station
}

// GetPlaylistForDate は指定日のプレイリストを取得し、全行の Date を date の暦日 (CivilDate) にして返します。
// 取得、コンテナの探索、いずれかの行の解析に失敗した場合は、部分的な結果を返さずにエラーとします。
func (d *Downloader) GetPlaylistForDate(ctx context.Context, date time.Time) (types.Playlist, error) {
	url := BuildURL(date, d.station)
	d.logger.Debug("プレイリストを取得します", "date", date.Format(types.DateLayout), "url", url)

	doc, err := FetchDocument(ctx, d.fetcher, url)
	if err != nil {
		return nil, err
	}

	rows, err := ExtractRows(doc)
	if err != nil {
		return nil, err
	}

	songs := make(types.Playlist, 0, len(rows))
	for _, row := range rows {
		song, err := ParseRow(row)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	d.logger.Debug("プレイリストを解析しました", "date", date.Format(types.DateLayout), "songs", len(songs))
	return songs.WithDate(CivilDate(date)), nil
}

// GetPlaylistForRange は start から end まで (両端を含む) の各日のプレイリストを順番に取得し、
// 日付の昇順に連結して返します。1日でも失敗した場合は、それまでの結果を捨ててエラーを返します。
// start が end より後の場合は空の Playlist を返します。
func (d *Downloader) GetPlaylistForRange(ctx context.Context, start, end time.Time) (types.Playlist, error) {
	days := Days(start, end)

	result := make(types.Playlist, 0)
	for _, day := range days {
		songs, err := d.GetPlaylistForDate(ctx, day)
		if err != nil {
			return nil, err
		}
		result = append(result, songs...)
	}

	d.logger.Info("期間のプレイリストを取得しました",
		"from", start.Format(types.DateLayout),
		"to", end.Format(types.DateLayout),
		"days", len(days),
		"songs", len(result),
	)
	return result, nil
}
