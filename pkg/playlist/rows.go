package playlist

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shouni/go-radio-playlist/pkg/types"
)

// ----------------------------------------------------------------------
// 定数定義 (ページ構造)
// ----------------------------------------------------------------------
const (
	containerSelector = "ul.radio-playlist"
	rowSelector       = "li.odd, li.even"

	timeSelector   = "div.col-time"
	titleSelector  = "span.cat-songtitle, span.col-songtitle"
	artistSelector = "div.col-performers"
)

// ExtractRows はプレイリストのコンテナ要素を探し、その中の odd/even 行をページ上の順序で返します。
// コンテナがない場合は StructureNotFoundError を返します。行が0件の場合は空のスライスです。
// 返される Selection は doc が参照されている間だけ有効です。
func ExtractRows(doc *goquery.Document) ([]*goquery.Selection, error) {
	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		return nil, &StructureNotFoundError{Selector: containerSelector, Scope: "document"}
	}

	items := container.Find(rowSelector)
	rows := make([]*goquery.Selection, 0, items.Length())
	items.Each(func(i int, s *goquery.Selection) {
		rows = append(rows, s)
	})
	return rows, nil
}

// ParseRow は1行から時刻、曲名、アーティストを取り出します。
// いずれかの要素が欠けている場合は、部分的な結果を返さずにエラーとします。
// 返される Song の Date はゼロ値です。
func ParseRow(row *goquery.Selection) (types.Song, error) {
	timeText, err := fieldText(row, timeSelector)
	if err != nil {
		return types.Song{}, err
	}
	title, err := fieldText(row, titleSelector)
	if err != nil {
		return types.Song{}, err
	}
	artist, err := fieldText(row, artistSelector)
	if err != nil {
		return types.Song{}, err
	}

	return types.Song{
		Time:   timeText,
		Title:  title,
		Artist: artist,
	}, nil
}

// fieldText は行内で selector に最初に一致する要素のテキストを前後の空白を除いて返します。
func fieldText(row *goquery.Selection, selector string) (string, error) {
	field := row.Find(selector).First()
	if field.Length() == 0 {
		return "", &StructureNotFoundError{Selector: selector, Scope: "row"}
	}
	return strings.TrimSpace(field.Text()), nil
}
