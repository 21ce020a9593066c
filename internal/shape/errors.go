// internal/shape/errors.go
//
// 圖形層的領域錯誤，由上層 (catalog / cli) 以 errors.Is 判斷並轉成使用者訊息。

package shape

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension 代表半徑或邊長缺漏、非數值、<= 0 或超過 MaxDimension。
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidShapeType 代表未知的圖形種類標籤。
	ErrInvalidShapeType = errors.New("invalid shape type")

	// ErrInvalidID 代表明確指定的 ID 不是正整數。
	ErrInvalidID = errors.New("invalid shape id")
)

// MaxDimension 為半徑與邊長的上限（公尺）。
// 在此範圍內，面積、體積及其在任何支援單位下的換算值都是有限數。
const MaxDimension = 1e90

// validateDimension 為所有尺寸檢查的唯一入口（建構子與 setter 共用）。
func validateDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidDimension, "%s must be a finite number", field)
	}
	if v <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "%s must be > 0, got %v", field, v)
	}
	if v > MaxDimension {
		return errors.Wrapf(ErrInvalidDimension, "%s %v exceeds %v m", field, v, MaxDimension)
	}
	return nil
}
