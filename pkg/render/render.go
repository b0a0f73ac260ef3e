package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/shouni/go-radio-playlist/pkg/types"
)

// Format は Playlist の出力形式です。
type Format string

const (
	FormatTable Format = "table" // 罫線付きの表
	FormatCSV   Format = "csv"   // ヘッダー行付きのCSV
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ParseFormat は文字列を Format に変換します。大文字小文字は区別しません。
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("未対応の出力形式です: %q (table または csv を指定してください)", s)
	}
}

// Write は Playlist を指定された形式で w に書き出します。
func Write(w io.Writer, p types.Playlist, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, p)
	case FormatTable:
		return WriteTable(w, p)
	default:
		return fmt.Errorf("未対応の出力形式です: %q", format)
	}
}

// WriteCSV は Playlist をヘッダー行付きのCSVとして書き出します。
func WriteCSV(w io.Writer, p types.Playlist) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(p.Header()); err != nil {
		return fmt.Errorf("CSVヘッダーの書き込みに失敗しました: %w", err)
	}
	if err := cw.WriteAll(p.Records()); err != nil {
		return fmt.Errorf("CSVの書き込みに失敗しました: %w", err)
	}
	return nil
}

// WriteTable は Playlist を罫線付きの表として書き出します。
func WriteTable(w io.Writer, p types.Playlist) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(p.Header()...).
		Rows(p.Records()...)

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("表の書き込みに失敗しました: %w", err)
	}
	return nil
}
