// internal/catalog/repository.go

// Package catalog 為圖形倉庫的核心：以 ID 為鍵的記憶體索引、ID 產生器與 JSON 快照持久化。
// 單一互斥鎖同時保護索引與產生器，讓「調和 ID 後寫入」在同一臨界區內完成。
// 啟用自動儲存時，每次成功變更（Store / Create / Delete / Clear / ImportFrom）後寫入快照；
// 自動儲存失敗只記錄日誌，不影響該次操作結果。
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"figures/internal/idgen"
	"figures/internal/shape"
	"figures/internal/storage"
	"figures/internal/units"
)

// Options 為倉庫設定。
type Options struct {
	// Path 為快照檔案路徑；空字串表示純記憶體倉庫（Save / Load 皆失敗）。
	Path string
	// AutoSave 為 true 時每次變更後寫入快照。
	AutoSave bool
	// Logger 可為 nil，預設 zap.NewNop()。
	Logger *zap.Logger
}

// Repository 為聚合根：管理全部圖形。
type Repository struct {
	mu       sync.Mutex
	ids      *idgen.Generator
	factory  *shape.Factory
	shapes   map[int64]shape.Shape
	path     string
	autoSave bool
	log      *zap.Logger
}

// New 建立空白倉庫，不讀取檔案。
func New(opts Options) *Repository {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ids := idgen.New()
	return &Repository{
		ids:      ids,
		factory:  shape.NewFactory(ids),
		shapes:   make(map[int64]shape.Shape),
		path:     opts.Path,
		autoSave: opts.AutoSave,
		log:      log.Named("catalog"),
	}
}

// Open 建立倉庫並嘗試載入快照。
// 檔案不存在或損毀時記錄日誌並以空倉庫啟動，不回傳錯誤。
func Open(opts Options) *Repository {
	r := New(opts)
	if r.path == "" {
		return r
	}
	if err := r.Load(); err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			r.log.Debug("no snapshot yet, starting empty", zap.String("path", r.path))
		} else {
			r.log.Warn("snapshot not loaded, starting empty", zap.String("path", r.path), zap.Error(err))
		}
	}
	return r
}

// Path 回傳快照路徑。
func (r *Repository) Path() string { return r.path }

// Create 以工廠建立圖形並存入倉庫。id 為 0 時自動指派。
func (r *Repository) Create(tag string, dims shape.Dimensions, id int64) (shape.Shape, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, err := r.factory.Create(tag, dims, id)
	if err != nil {
		return nil, err
	}
	r.shapes[s.ID()] = s
	r.autoSaveLocked()
	return shape.Copy(s), nil
}

// Store 存入 s 的副本（或以相同 ID 覆寫）並調和產生器，回傳其 ID。
func (r *Repository) Store(s shape.Shape) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids.Reconcile(s.ID())
	r.shapes[s.ID()] = shape.Copy(s)
	r.autoSaveLocked()
	return s.ID()
}

// Get 依 ID 取得圖形。
// 回傳的是副本，修改尺寸須透過 Resize。
func (r *Repository) Get(id int64) (shape.Shape, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shapes[id]
	if !ok {
		return nil, false
	}
	return shape.Copy(s), true
}

// Resize 更新指定圖形的半徑或邊長（公尺）。
// 圖形不存在回傳 false；尺寸非法時回傳 ErrInvalidDimension 且狀態不變。
func (r *Repository) Resize(id int64, dimension float64) (shape.Shape, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shapes[id]
	if !ok {
		return nil, false, nil
	}
	resized, err := shape.New(s.Kind(), id, dimension)
	if err != nil {
		return nil, true, err
	}
	r.shapes[id] = resized
	r.autoSaveLocked()
	return shape.Copy(resized), true, nil
}

// List 回傳所有圖形，依 ID 遞增排序。
func (r *Repository) List() []shape.Shape {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked()
}

// Count 回傳圖形數量。
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shapes)
}

// Delete 刪除圖形；存在並刪除回傳 true，不存在回傳 false。
func (r *Repository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shapes[id]; !ok {
		return false
	}
	delete(r.shapes, id)
	r.autoSaveLocked()
	return true
}

// FindByType 以不分大小寫的完全比對搜尋種類，接受種類標籤（"cube"）或顯示名稱（"Cube"）。
func (r *Repository) FindByType(name string) []shape.Shape {
	key := strings.TrimSpace(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []shape.Shape
	for _, s := range r.sortedLocked() {
		if strings.EqualFold(s.Name(), key) || strings.EqualFold(string(s.Kind()), key) {
			out = append(out, s)
		}
	}
	return out
}

// Clear 清空倉庫並將產生器歸零。
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes = make(map[int64]shape.Shape)
	r.ids.Reset()
	r.autoSaveLocked()
}

// LastID 回傳產生器目前的值（最後指派或調和的 ID）。
func (r *Repository) LastID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids.Current()
}

// Measure 將指定圖形的量測值換算為單位 u。
func (r *Repository) Measure(id int64, u units.Unit) (shape.Measurements, bool, error) {
	s, ok := r.Get(id)
	if !ok {
		return shape.Measurements{}, false, nil
	}
	m, err := shape.Measure(s, u)
	return m, true, err
}

// Save 將目前狀態寫入設定的快照檔。
func (r *Repository) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked()
}

// SaveTo 將目前狀態寫入另一個檔案（依副檔名選 JSON / YAML），不改變設定路徑。
func (r *Repository) SaveTo(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := Encode(r.sortedLocked(), r.ids.Current())
	if err := storage.Save(path, storage.FormatForPath(path), doc); err != nil {
		return errors.Wrap(ErrPersistence, err.Error())
	}
	r.log.Info("exported shapes", zap.String("path", path), zap.Int("count", len(doc.Shapes)))
	return nil
}

// Load 由設定的快照檔重新載入。
// 成功時以檔案內容取代目前索引與產生器；失敗時狀態不變。
func (r *Repository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.path == "" {
		return errors.Wrap(ErrPersistence, "no snapshot path configured")
	}
	doc, err := storage.LoadSnapshot(r.path)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return err
		}
		return errors.Wrap(ErrPersistence, err.Error())
	}
	gen := idgen.New()
	shapes, skipped, err := Decode(doc, gen, r.log)
	if err != nil {
		return err
	}
	r.shapes = make(map[int64]shape.Shape, len(shapes))
	for _, s := range shapes {
		r.shapes[s.ID()] = s
	}
	*r.ids = *gen
	r.log.Info("loaded snapshot",
		zap.String("path", r.path),
		zap.Int("count", len(shapes)),
		zap.Int("skipped", len(skipped)),
		zap.Int64("counter", r.ids.Current()))
	return nil
}

// ImportFrom 將另一個快照檔（JSON 或 YAML）的圖形合併進倉庫，相同 ID 會被覆寫。
// 回傳匯入的圖形數量。
func (r *Repository) ImportFrom(path string) (int, error) {
	doc, err := storage.Load(path)
	if err != nil {
		return 0, errors.Wrap(ErrPersistence, err.Error())
	}
	shapes, _, err := Decode(doc, idgen.New(), r.log)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range shapes {
		r.ids.Reconcile(s.ID())
		r.shapes[s.ID()] = s
	}
	if len(shapes) > 0 {
		r.autoSaveLocked()
	}
	return len(shapes), nil
}

func (r *Repository) saveLocked() error {
	if r.path == "" {
		return errors.Wrap(ErrPersistence, "no snapshot path configured")
	}
	doc := Encode(r.sortedLocked(), r.ids.Current())
	if err := storage.SaveSnapshot(r.path, doc); err != nil {
		return errors.Wrap(ErrPersistence, err.Error())
	}
	r.log.Debug("saved snapshot", zap.String("path", r.path), zap.Int("count", len(doc.Shapes)))
	return nil
}

func (r *Repository) autoSaveLocked() {
	if !r.autoSave {
		return
	}
	if err := r.saveLocked(); err != nil {
		r.log.Warn("auto-save failed", zap.Error(err))
	}
}

// sortedLocked 回傳依 ID 排序的副本。
func (r *Repository) sortedLocked() []shape.Shape {
	out := make([]shape.Shape, 0, len(r.shapes))
	for _, s := range r.shapes {
		out = append(out, shape.Copy(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
