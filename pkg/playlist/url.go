package playlist

import (
	"fmt"
	"time"
)

const (
	// BaseURL は、Muziekweb のラジオプレイリストページのベースURLです。
	BaseURL = "https://www.muziekweb.nl/Muziekweb/Radio"

	// DefaultStation は、放送局を指定しない場合に使われる放送局名です。
	DefaultStation = "SkyRadio"

	// DefaultRangeStart と DefaultRangeEnd は、1ページで取得する行の範囲です。
	// 1日に500曲を超える場合、それ以降の行は取得されません。
	DefaultRangeStart = 1
	DefaultRangeEnd   = 500
)

// Query は、1回のプレイリスト取得要求を表します。
type Query struct {
	Date       time.Time
	Station    string
	RangeStart int
	RangeEnd   int
}

// NewQuery は、デフォルトの行範囲を持つ Query を生成します。
func NewQuery(date time.Time, station string) Query {
	return Query{
		Date:       date,
		Station:    station,
		RangeStart: DefaultRangeStart,
		RangeEnd:   DefaultRangeEnd,
	}
}

// URL は Query からプレイリストページのURLを組み立てます。
// 日付と放送局名は検証もエスケープもせず、そのまま埋め込みます。
func (q Query) URL() string {
	return fmt.Sprintf("%s/?station=%s&date=%d-%d-%d&RangeStart=%d&RangeEnd=%d",
		BaseURL,
		q.Station,
		q.Date.Day(), int(q.Date.Month()), q.Date.Year(),
		q.RangeStart, q.RangeEnd,
	)
}

// BuildURL は、指定された日付と放送局のプレイリストページURLを返します。
func BuildURL(date time.Time, station string) string {
	return NewQuery(date, station).URL()
}
