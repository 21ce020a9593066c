// internal/shape/measure.go

package shape

import (
	"figures/internal/units"
)

// Measurements 為圖形所有量測值換算到指定單位後的結果。
// 2D 圖形填 Area/Perimeter，3D 圖形填 Volume/SurfaceArea。
type Measurements struct {
	Unit          units.Unit `json:"unit"`
	DimensionName string     `json:"dimensionName"`
	Dimension     float64    `json:"dimension"`
	Area          float64    `json:"area,omitempty"`
	Perimeter     float64    `json:"perimeter,omitempty"`
	Volume        float64    `json:"volume,omitempty"`
	SurfaceArea   float64    `json:"surfaceArea,omitempty"`
}

// Measure 將以公尺保存的圖形量測換算為 u：
// 尺寸與周長按長度、面積與表面積按平方、體積按立方。
func Measure(s Shape, u units.Unit) (Measurements, error) {
	m := Measurements{Unit: u, DimensionName: s.Kind().DimensionName()}
	var err error
	if m.Dimension, err = units.ConvertLength(s.Dimension(), units.Base, u); err != nil {
		return Measurements{}, err
	}
	switch v := s.(type) {
	case Planar:
		if m.Area, err = units.ConvertArea(v.Area(), units.Base, u); err != nil {
			return Measurements{}, err
		}
		if m.Perimeter, err = units.ConvertLength(v.Perimeter(), units.Base, u); err != nil {
			return Measurements{}, err
		}
	case Solid:
		if m.Volume, err = units.ConvertVolume(v.Volume(), units.Base, u); err != nil {
			return Measurements{}, err
		}
		if m.SurfaceArea, err = units.ConvertArea(v.SurfaceArea(), units.Base, u); err != nil {
			return Measurements{}, err
		}
	}
	return m, nil
}
