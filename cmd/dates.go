package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/shouni/go-radio-playlist/pkg/types"
)

// parseDate は YYYY-MM-DD 形式の日付を暦日 (UTC の 0:00) として解釈します。
// ローカルタイムゾーンの夏時間の影響で前日に戻ることはありません。
func parseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(types.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("日付の形式が不正です (YYYY-MM-DD で指定してください): %q: %w", s, err)
	}
	return date, nil
}
