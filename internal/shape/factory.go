// internal/shape/factory.go

package shape

import (
	"github.com/pkg/errors"

	"figures/internal/idgen"
)

// Dimensions 為建立圖形時的輸入尺寸（公尺）；0 表示未提供。
// circle/sphere 只讀 Radius，square/cube 只讀 Side。
type Dimensions struct {
	Radius float64
	Side   float64
}

// Factory 依種類標籤建立圖形，並透過 Generator 指派或調和 ID。
type Factory struct {
	ids *idgen.Generator
}

// NewFactory 建立綁定指定產生器的工廠。
func NewFactory(ids *idgen.Generator) *Factory {
	return &Factory{ids: ids}
}

// Create 建立圖形：
//   - tag 不分大小寫，未知 → ErrInvalidShapeType
//   - 缺少或 <= 0 的尺寸 → ErrInvalidDimension
//   - id == 0 取下一個 ID；id > 0 沿用並調和產生器；id < 0 → ErrInvalidID
//
// 所有檢查在觸碰產生器之前完成，失敗不會消耗 ID。
// 重複的明確 ID 不會被拒絕。
func (f *Factory) Create(tag string, dims Dimensions, id int64) (Shape, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		return nil, err
	}
	dim := dims.Side
	if kind.DimensionName() == DimensionRadius {
		dim = dims.Radius
	}
	if err := validateDimension(kind.DimensionName(), dim); err != nil {
		return nil, errors.Wrapf(err, "%s", kind)
	}
	if id < 0 {
		return nil, errors.Wrapf(ErrInvalidID, "%d", id)
	}
	if id == 0 {
		id = f.ids.Next()
	} else {
		f.ids.Reconcile(id)
	}
	return New(kind, id, dim)
}
