package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shouni/go-utils/iohandler"
)

// writeOutput は produce の出力をバッファに溜め、成功した場合のみ filename (空なら標準出力) に書き出します。
// 取得が途中で失敗した場合、出力先には何も書き込まれません。
func writeOutput(filename string, produce func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := produce(&buf); err != nil {
		return err
	}
	if err := iohandler.WriteOutput(filename, buf.Bytes()); err != nil {
		return fmt.Errorf("出力の書き込みエラー: %w", err)
	}
	return nil
}
