package playlist

import (
	"errors"
	"fmt"
)

// ErrStructureNotFound は、期待したHTML要素がページ内に存在しないことを示します。
// 個々のエラーは *StructureNotFoundError として返され、errors.Is でこの値と一致します。
var ErrStructureNotFound = errors.New("HTML要素が見つかりません")

// StructureNotFoundError は、どのセレクターがどこで見つからなかったかを保持します。
type StructureNotFoundError struct {
	Selector string // 見つからなかった要素のセレクター
	Scope    string // 探索した範囲 ("document" または "row")
}

func (e *StructureNotFoundError) Error() string {
	return fmt.Sprintf("%s: セレクター %q (%s)", ErrStructureNotFound.Error(), e.Selector, e.Scope)
}

// Is は errors.Is(err, ErrStructureNotFound) を成立させます。
func (e *StructureNotFoundError) Is(target error) bool {
	return target == ErrStructureNotFound
}

// IsStructureNotFound は err が HTML 構造の欠落によるエラーかどうかを判定します。
func IsStructureNotFound(err error) bool {
	return errors.Is(err, ErrStructureNotFound)
}
