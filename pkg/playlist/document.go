package playlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DI)
// ----------------------------------------------------------------------

// Fetcher は、URLからレスポンスボディの生バイト配列を取得する機能のインターフェースです。
// *client.Client はこのインターフェースを満たします。
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// FetchDocument は URL のページを1回だけ取得し、HTMLドキュメントツリーとして返します。
// 取得時のエラー (ネットワーク、タイムアウト、ステータスコード) は加工せずにそのまま返します。
func FetchDocument(ctx context.Context, fetcher Fetcher, url string) (*goquery.Document, error) {
	body, err := fetcher.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseDocument(body)
}

// ParseDocument は HTML を寛容モードでパースします。
// 壊れたマークアップや空のボディでもエラーにはならず、可能な範囲でツリーを構築します。
func ParseDocument(body []byte) (*goquery.Document, error) {
	// ボディ全体が UTF-8 として正しければそのまま使い、それ以外はBOMやメタタグから判定して変換する。
	// DetermineEncoding は先頭1024バイトしか見ないため、判定できない場合は windows-1252 になる
	var utf8Reader io.Reader = bytes.NewReader(body)
	if !utf8.Valid(body) {
		enc, _, _ := charset.DetermineEncoding(body, "")
		utf8Reader = enc.NewDecoder().Reader(bytes.NewReader(body))
	}

	root, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("HTML解析に失敗しました: %w", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}
