// internal/catalog/codec_test.go
//
// Encode / Decode：判別欄位、逐筆容錯與計數器還原。

package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"figures/internal/idgen"
	"figures/internal/shape"
	"figures/internal/storage"
)

func f64(v float64) *float64 { return &v }

func TestEncode(t *testing.T) {
	c, _ := shape.NewCircle(2, 5)
	cu, _ := shape.NewCube(1, 3)

	doc := Encode([]shape.Shape{c, cu}, 4)
	want := []storage.Record{
		{ID: 1, Kind: "cube", Name: "Cube", Category: "3D", Side: f64(3)},
		{ID: 2, Kind: "circle", Name: "Circle", Category: "2D", Radius: f64(5)},
	}
	if diff := cmp.Diff(want, doc.Shapes); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(4), doc.CounterValue)
	assert.Equal(t, storage.FormatVersion, doc.Version)
}

func TestDecodeRoundTrip(t *testing.T) {
	var in []shape.Shape
	for i, k := range shape.Kinds() {
		s, err := shape.New(k, int64(i+1), float64(i)+0.5)
		require.NoError(t, err)
		in = append(in, s)
	}
	gen := idgen.New()
	out, skipped, err := Decode(Encode(in, 9), gen, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID(), out[i].ID())
		assert.Equal(t, in[i].Kind(), out[i].Kind())
		assert.Equal(t, in[i].Name(), out[i].Name())
		assert.Equal(t, in[i].Category(), out[i].Category())
		assert.Equal(t, in[i].Dimension(), out[i].Dimension())
	}
	assert.Equal(t, int64(9), gen.Current())
}

func TestDecodeSkipsCorruptRecords(t *testing.T) {
	doc := storage.Document{
		Meta:         storage.Meta{Version: storage.FormatVersion},
		CounterValue: 2,
		Shapes: []storage.Record{
			{ID: 1, Kind: "circle", Radius: f64(1)},
			{ID: 2, Kind: "triangle", Side: f64(1)},               // 未知種類
			{ID: 3, Kind: "square", Radius: f64(1)},               // 尺寸欄位不符
			{ID: 4, Kind: "cube", Side: f64(-2)},                  // 非法尺寸
			{ID: 0, Kind: "sphere", Radius: f64(1)},               // 非法 ID
			{ID: 6, Kind: "sphere", Radius: f64(1), Side: f64(1)}, // 兩個尺寸
			{ID: 7, Kind: "cube", Side: f64(2)},
			{ID: 8, Kind: "circle", Name: "Cube", Radius: f64(1)},   // 名稱不符
			{ID: 9, Kind: "circle", Category: "3D", Radius: f64(1)}, // 分類不符
			{ID: 10, Kind: "sphere", Radius: f64(1e200)},            // 超過上限
		},
	}
	gen := idgen.New()
	out, skipped, err := Decode(doc, gen, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID())
	assert.Equal(t, int64(7), out[1].ID())
	assert.Len(t, skipped, 8)
	for _, e := range skipped {
		assert.True(t, errors.Is(e, ErrCorruptRecord), "got %v", e)
	}
	// counterValue 為 2，但載入了 ID 7 → 調和到 7
	assert.Equal(t, int64(7), gen.Current())
}

func TestDecodeShapeAcceptsMatchingLabels(t *testing.T) {
	s, err := DecodeShape(storage.Record{ID: 3, Kind: "sphere", Name: "Sphere", Category: "3D", Radius: f64(2)})
	require.NoError(t, err)
	assert.Equal(t, shape.KindSphere, s.Kind())
}

func TestDecodeStructuralFailure(t *testing.T) {
	gen := idgen.New()
	gen.Reconcile(5)

	_, _, err := Decode(storage.Document{Meta: storage.Meta{Version: "2.0"}, Shapes: []storage.Record{}}, gen, zap.NewNop())
	assert.True(t, errors.Is(err, ErrPersistence))

	_, _, err = Decode(storage.Document{Meta: storage.Meta{Version: storage.FormatVersion}}, gen, zap.NewNop())
	assert.True(t, errors.Is(err, ErrPersistence))

	_, _, err = Decode(storage.Document{Meta: storage.Meta{Version: storage.FormatVersion}, CounterValue: -1, Shapes: []storage.Record{}}, gen, zap.NewNop())
	assert.True(t, errors.Is(err, ErrPersistence))

	assert.Equal(t, int64(5), gen.Current(), "structural failures leave the generator alone")
}
