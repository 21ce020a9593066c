// internal/catalog/codec.go

package catalog

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"figures/internal/idgen"
	"figures/internal/shape"
	"figures/internal/storage"
)

// Encode 將圖形清單與計數器值轉為可持久化的 storage.Document，依 ID 排序。
func Encode(shapes []shape.Shape, counter int64) storage.Document {
	doc := storage.Document{
		Meta:         storage.Meta{Version: storage.FormatVersion},
		CounterValue: counter,
		Shapes:       make([]storage.Record, 0, len(shapes)),
	}
	for _, s := range shapes {
		doc.Shapes = append(doc.Shapes, EncodeShape(s))
	}
	sort.Slice(doc.Shapes, func(i, j int) bool { return doc.Shapes[i].ID < doc.Shapes[j].ID })
	return doc
}

// EncodeShape 轉換單一圖形；依種類只寫入 radius 或 side 其中之一。
func EncodeShape(s shape.Shape) storage.Record {
	r := storage.Record{
		ID:       s.ID(),
		Kind:     string(s.Kind()),
		Name:     s.Name(),
		Category: string(s.Category()),
	}
	d := s.Dimension()
	if s.Kind().DimensionName() == shape.DimensionRadius {
		r.Radius = &d
	} else {
		r.Side = &d
	}
	return r
}

// DecodeShape 由單筆紀錄還原圖形。
// kind 必須已知，且恰好提供與種類相符的尺寸欄位；ID 必須為正。
// name 與 category 可省略，若有值則須與 kind 一致。
func DecodeShape(r storage.Record) (shape.Shape, error) {
	kind := shape.Kind(r.Kind)
	if !kind.Valid() {
		return nil, errors.Wrapf(ErrCorruptRecord, "id %d: unknown kind %q", r.ID, r.Kind)
	}
	if r.Name != "" && r.Name != kind.DisplayName() {
		return nil, errors.Wrapf(ErrCorruptRecord, "id %d: name %q does not match kind %s", r.ID, r.Name, kind)
	}
	if r.Category != "" && shape.Category(r.Category) != kind.Category() {
		return nil, errors.Wrapf(ErrCorruptRecord, "id %d: category %q does not match kind %s", r.ID, r.Category, kind)
	}
	if r.Radius != nil && r.Side != nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "id %d: both radius and side present", r.ID)
	}
	var dim *float64
	switch kind.DimensionName() {
	case shape.DimensionRadius:
		dim = r.Radius
	case shape.DimensionSide:
		dim = r.Side
	}
	if dim == nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "id %d: %s requires %q", r.ID, kind, kind.DimensionName())
	}
	s, err := shape.New(kind, r.ID, *dim)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptRecord, "id %d: %v", r.ID, err)
	}
	return s, nil
}

// Decode 還原快照：
//  1. 版本不符或缺少 shapes 欄位 → ErrPersistence，不觸碰 gen。
//  2. 先以 counterValue 還原 gen，再逐筆解碼並調和 gen。
//  3. 損毀的單筆紀錄記錄警告後略過，其餘繼續；回傳值包含所有略過原因。
func Decode(doc storage.Document, gen *idgen.Generator, log *zap.Logger) ([]shape.Shape, []error, error) {
	if doc.Version != storage.FormatVersion {
		return nil, nil, errors.Wrapf(ErrPersistence, "unsupported version %q", doc.Version)
	}
	if doc.Shapes == nil {
		return nil, nil, errors.Wrap(ErrPersistence, `missing "shapes"`)
	}
	if err := gen.Restore(doc.CounterValue); err != nil {
		return nil, nil, errors.Wrap(ErrPersistence, err.Error())
	}

	out := make([]shape.Shape, 0, len(doc.Shapes))
	var skipped []error
	for _, r := range doc.Shapes {
		s, err := DecodeShape(r)
		if err != nil {
			log.Warn("skip shape record", zap.Int64("id", r.ID), zap.Error(err))
			skipped = append(skipped, err)
			continue
		}
		gen.Reconcile(s.ID())
		out = append(out, s)
	}
	return out, skipped, nil
}
