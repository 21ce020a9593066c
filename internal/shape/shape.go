// internal/shape/shape.go

// Package shape 定義幾何圖形的領域模型與計算公式。
// 每個圖形有唯一 ID、種類 (Kind) 與分類 (2D/3D)；
// 2D 圖形實作 Planar（面積、周長），3D 圖形實作 Solid（體積、表面積）。
// 尺寸一律以基準單位（公尺）保存，顯示時再由 Measure 換算。
package shape

import (
	"strings"

	"github.com/pkg/errors"
)

// Category 為圖形維度分類。
type Category string

const (
	Category2D Category = "2D"
	Category3D Category = "3D"
)

// Kind 為圖形種類標籤，同時也是持久化檔案中的判別欄位。
type Kind string

const (
	KindCircle Kind = "circle"
	KindSquare Kind = "square"
	KindCube   Kind = "cube"
	KindSphere Kind = "sphere"
)

// kindInfo 描述每個種類的顯示名稱、分類與尺寸欄位。
type kindInfo struct {
	name      string
	category  Category
	dimension string
}

var kinds = map[Kind]kindInfo{
	KindCircle: {name: "Circle", category: Category2D, dimension: DimensionRadius},
	KindSquare: {name: "Square", category: Category2D, dimension: DimensionSide},
	KindCube:   {name: "Cube", category: Category3D, dimension: DimensionSide},
	KindSphere: {name: "Sphere", category: Category3D, dimension: DimensionRadius},
}

// 尺寸欄位名稱。
const (
	DimensionRadius = "radius"
	DimensionSide   = "side"
)

// Kinds 依固定順序回傳所有支援種類。
func Kinds() []Kind {
	return []Kind{KindCircle, KindSquare, KindCube, KindSphere}
}

// ParseKind 不分大小寫並去除前後空白；未知標籤回傳 ErrInvalidShapeType。
func ParseKind(tag string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := kinds[k]; !ok {
		return "", errors.Wrapf(ErrInvalidShapeType, "%q (supported: circle, square, cube, sphere)", tag)
	}
	return k, nil
}

// Valid 回報 k 是否為支援種類。
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// DisplayName 回傳顯示名稱，例如 "Circle"。
func (k Kind) DisplayName() string { return kinds[k].name }

// Category 回傳種類對應的分類。
func (k Kind) Category() Category { return kinds[k].category }

// DimensionName 回傳此種類唯一尺寸欄位的名稱（radius 或 side）。
func (k Kind) DimensionName() string { return kinds[k].dimension }

// Shape 為所有圖形的共同介面。
type Shape interface {
	ID() int64
	Kind() Kind
	Name() string
	Category() Category
	// Dimension 回傳半徑或邊長（公尺）。
	Dimension() float64
}

// Planar 為 2D 圖形能力。
type Planar interface {
	Shape
	Area() float64
	Perimeter() float64
}

// Solid 為 3D 圖形能力。
type Solid interface {
	Shape
	Volume() float64
	SurfaceArea() float64
}

// base 保存不可變的 ID 與種類。
type base struct {
	id   int64
	kind Kind
}

func (b base) ID() int64          { return b.id }
func (b base) Kind() Kind         { return b.kind }
func (b base) Name() string       { return b.kind.DisplayName() }
func (b base) Category() Category { return b.kind.Category() }

// New 依種類建立圖形，ID 與尺寸皆須為正。
func New(kind Kind, id int64, dimension float64) (Shape, error) {
	switch kind {
	case KindCircle:
		return asShape(NewCircle(id, dimension))
	case KindSquare:
		return asShape(NewSquare(id, dimension))
	case KindCube:
		return asShape(NewCube(id, dimension))
	case KindSphere:
		return asShape(NewSphere(id, dimension))
	}
	return nil, errors.Wrapf(ErrInvalidShapeType, "%q", string(kind))
}

// Copy 回傳 s 的獨立副本；修改副本不影響原圖形。
func Copy(s Shape) Shape {
	switch v := s.(type) {
	case *Circle:
		c := *v
		return &c
	case *Square:
		c := *v
		return &c
	case *Cube:
		c := *v
		return &c
	case *Sphere:
		c := *v
		return &c
	}
	return s
}

// asShape 避免把 nil 指標包成非 nil 的介面值。
func asShape[T Shape](s T, err error) (Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newBase 檢查 ID 後建立 base。
func newBase(kind Kind, id int64) (base, error) {
	if id <= 0 {
		return base{}, errors.Wrapf(ErrInvalidID, "%d", id)
	}
	return base{id: id, kind: kind}, nil
}
