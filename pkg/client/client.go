package client

import (
	"context"
	"net/http"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// ----------------------------------------------------------------------
// 定数とインターフェース
// ----------------------------------------------------------------------

const (
	// DefaultHTTPTimeout は、プレイリストページ取得時のデフォルトのHTTPタイムアウトです。
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultMaxRetries は、デフォルトのリトライ回数です。
	// 取得は1回のみで、最初の失敗で処理全体を中断します。
	DefaultMaxRetries = 0
)

// Doer は、標準の *http.Client.Do()と互換性のあるHTTPクライアントのインターフェースを定義します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client は httpkit.Client をラップし、プレイリスト取得用の設定をカプセル化します。
type Client struct {
	*httpkit.Client
	timeout time.Duration
}

// ----------------------------------------------------------------------
// 設定とコンストラクタ
// ----------------------------------------------------------------------

// ClientOption はClientの設定を行うための関数型です。
type ClientOption func(*Client)

// WithHTTPClient はカスタムのDoerを設定します。主にテストで利用します。
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		httpkit.WithHTTPClient(doer)(c.Client)
	}
}

// WithMaxRetries は最大リトライ回数を設定します。
func WithMaxRetries(max uint64) ClientOption {
	return func(c *Client) {
		httpkit.WithMaxRetries(max)(c.Client)
	}
}

// New は新しいClientを初期化します。
// timeout が0以下の場合は DefaultHTTPTimeout を使用します。
func New(timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	c := &Client{
		Client:  httpkit.New(timeout),
		timeout: timeout,
	}

	// リトライなしを既定とし、その後に呼び出し側のオプションを適用する
	WithMaxRetries(DefaultMaxRetries)(c)
	for _, opt := range options {
		opt(c)
	}

	return c
}

// Timeout は、このClientに設定されたHTTPタイムアウトを返します。
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// FetchBytes は URL に GET リクエストを1回送り、レスポンスボディを生のバイト配列として返します。
// ネットワークエラー、タイムアウト、2xx以外のステータスはそのままエラーとして返されます。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Client.FetchBytes(ctx, url)
}

// IsNonRetryableError は与えられたエラーが4xx系のHTTPエラーであるかを判断します。
// httpkit の同名関数を呼び出します。
func IsNonRetryableError(err error) bool {
	return httpkit.IsNonRetryableError(err)
}
