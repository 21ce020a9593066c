// internal/catalog/stats.go

package catalog

import (
	"time"

	"figures/internal/shape"
	"figures/internal/storage"
)

// Stats 為倉庫統計。總量皆為基準單位（m、m²、m³）。
type Stats struct {
	Total              int            `json:"total"`
	UniqueTypes        int            `json:"uniqueTypes"`
	PerType            map[string]int `json:"perType"`
	Area2DTotal        float64        `json:"area2DTotal"`
	Perimeter2DTotal   float64        `json:"perimeter2DTotal"`
	Volume3DTotal      float64        `json:"volume3DTotal"`
	Surface3DTotal     float64        `json:"surface3DTotal"`
	Area2DAverage      float64        `json:"area2DAverage"`
	Perimeter2DAverage float64        `json:"perimeter2DAverage"`
	Volume3DAverage    float64        `json:"volume3DAverage"`
	IDs                []int64        `json:"ids"`
	File               string         `json:"file,omitempty"`
	FileExists         bool           `json:"fileExists"`
	FileSize           int64          `json:"fileSize,omitempty"`
	FileModified       *time.Time     `json:"fileModified,omitempty"`
}

// Stats 計算目前倉庫的統計；沒有對應圖形時平均值為 0。
func (r *Repository) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := Stats{
		Total:   len(r.shapes),
		PerType: make(map[string]int),
		IDs:     make([]int64, 0, len(r.shapes)),
		File:    r.path,
	}
	var n2D, n3D int
	for _, s := range r.sortedLocked() {
		st.IDs = append(st.IDs, s.ID())
		st.PerType[s.Name()]++
		switch v := s.(type) {
		case shape.Planar:
			st.Area2DTotal += v.Area()
			st.Perimeter2DTotal += v.Perimeter()
			n2D++
		case shape.Solid:
			st.Volume3DTotal += v.Volume()
			st.Surface3DTotal += v.SurfaceArea()
			n3D++
		}
	}
	st.UniqueTypes = len(st.PerType)
	if n2D > 0 {
		st.Area2DAverage = st.Area2DTotal / float64(n2D)
		st.Perimeter2DAverage = st.Perimeter2DTotal / float64(n2D)
	}
	if n3D > 0 {
		st.Volume3DAverage = st.Volume3DTotal / float64(n3D)
	}
	if r.path != "" {
		if fi, err := storage.Stat(r.path); err == nil {
			st.FileExists = true
			st.FileSize = fi.Size
			st.FileModified = &fi.Modified
		}
	}
	return st
}
