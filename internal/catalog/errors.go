// internal/catalog/errors.go
//
// 倉庫層錯誤。查無圖形以 bool 回傳，不定義錯誤。

package catalog

import "github.com/pkg/errors"

var (
	// ErrPersistence 代表快照讀寫或解碼失敗；倉庫狀態不受影響。
	ErrPersistence = errors.New("persistence error")

	// ErrCorruptRecord 代表快照中單筆圖形資料損毀，該筆會被略過。
	ErrCorruptRecord = errors.New("corrupt shape record")
)
