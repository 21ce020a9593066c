// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的檔案格式。
// 本層只描述序列化結構，不知道圖形的計算規則；
// 由 catalog 負責在 Document 與 shape.Shape 之間轉換。
package storage

import "time"

// FormatVersion 為目前唯一支援的檔案格式版本。
const FormatVersion = "1.0"

// Meta 為快照中繼資料，以匿名嵌入方式攤平在文件最上層。
type Meta struct {
	Version string    `json:"version" yaml:"version"`               // 格式版本，目前固定 "1.0"
	SavedAt time.Time `json:"savedAt" yaml:"savedAt"`               // 寫入時間
	Note    string    `json:"note,omitempty" yaml:"note,omitempty"` // 備註，可選
}

// Record 為單一圖形在檔案中的表示。
// Kind 為判別欄位；Radius 與 Side 互斥，以指標區分「未提供」與 0。
type Record struct {
	ID       int64    `json:"id" yaml:"id"`
	Kind     string   `json:"kind" yaml:"kind"`
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Radius   *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Side     *float64 `json:"side,omitempty" yaml:"side,omitempty"`
}

// Document 為整個圖形倉庫的快照：圖形清單與最後指派的 ID。
// Shapes 為 nil 表示檔案缺少 "shapes" 欄位（結構損毀）；空陣列則合法。
type Document struct {
	Meta         `yaml:",inline"`
	CounterValue int64    `json:"counterValue" yaml:"counterValue"`
	Shapes       []Record `json:"shapes" yaml:"shapes"`
}
