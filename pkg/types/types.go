package types

import "time"

// DateLayout は、Playlist の Date 列を文字列に整形する際のレイアウトです。
const DateLayout = "2006-01-02"

// Song は、プレイリストページの1行（1曲）を表します。
// Date は行の解析後に、取得対象の日付で埋められます。
type Song struct {
	Time   string    // 放送時刻 (例: "08:00")
	Title  string    // 曲名
	Artist string    // アーティスト名
	Date   time.Time // 取得対象の日付
}

// Playlist は、Song の順序付きの並びです。
// 1日の中ではページ上の出現順、複数日の場合は日付の昇順に連結されます。
type Playlist []Song

// Header は、表形式で出力する際の列名を返します。
func (p Playlist) Header() []string {
	return []string{"Time", "Title", "Artist", "Date"}
}

// Records は、各 Song を Header と同じ列順の文字列スライスに変換します。
func (p Playlist) Records() [][]string {
	records := make([][]string, 0, len(p))
	for _, s := range p {
		records = append(records, []string{s.Time, s.Title, s.Artist, s.Date.Format(DateLayout)})
	}
	return records
}

// WithDate は、すべての行の Date を指定した日付に置き換えた新しい Playlist を返します。
func (p Playlist) WithDate(date time.Time) Playlist {
	stamped := make(Playlist, len(p))
	for i, s := range p {
		s.Date = date
		stamped[i] = s
	}
	return stamped
}
