// internal/cli/commands_test.go
//
// 指令層整合測試：每次呼叫都建立新的指令樹（等同新行程），
// 經由同一個快照檔驗證建立、查詢、刪除、匯出入與錯誤回報。
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figures/internal/shape"
	"figures/internal/storage"
	"figures/internal/units"
)

// run 以新的 root command 執行 args，回傳 stdout。
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// runJSON 以 --output json 執行並解析輸出。
func runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	out, err := run(t, append(args, "-o", "json")...)
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

type figureJSON struct {
	ID           int64  `json:"id"`
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Measurements struct {
		Unit      string  `json:"unit"`
		Dimension float64 `json:"dimension"`
		Area      float64 `json:"area"`
		Volume    float64 `json:"volume"`
	} `json:"measurements"`
}

func TestFlowAcrossProcesses(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")

	var c figureJSON
	runJSON(t, &c, "--data", data, "add", "circle", "--radius", "5")
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Circle", c.Name)
	assert.Equal(t, 5.0, c.Measurements.Dimension)
	require.True(t, storage.Exists(data))

	// 以公分輸入，存為公尺
	var cube figureJSON
	runJSON(t, &cube, "--data", data, "--unit", "cm", "add", "cube", "--side", "200")
	assert.Equal(t, int64(2), cube.ID)
	assert.InDelta(t, 200, cube.Measurements.Dimension, 1e-9)

	var got figureJSON
	runJSON(t, &got, "--data", data, "get", "2")
	assert.InDelta(t, 2, got.Measurements.Dimension, 1e-9)
	assert.InDelta(t, 8, got.Measurements.Volume, 1e-9)

	var list []figureJSON
	runJSON(t, &list, "--data", data, "list")
	require.Len(t, list, 2)

	var found []figureJSON
	runJSON(t, &found, "--data", data, "find", "CIRCLE")
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)

	_, err := run(t, "--data", data, "delete", "1")
	require.NoError(t, err)
	runJSON(t, &list, "--data", data, "list")
	require.Len(t, list, 1)

	// 刪除後 ID 不重用
	var next figureJSON
	runJSON(t, &next, "--data", data, "add", "sphere", "--radius", "1")
	assert.Equal(t, int64(3), next.ID)
}

func TestErrorsAreReported(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")

	_, err := run(t, "--data", data, "add", "triangle", "--side", "1")
	assert.True(t, errors.Is(err, shape.ErrInvalidShapeType), "got %v", err)

	_, err = run(t, "--data", data, "add", "circle", "--radius", "-1")
	assert.True(t, errors.Is(err, shape.ErrInvalidDimension), "got %v", err)

	_, err = run(t, "--data", data, "add", "square")
	assert.True(t, errors.Is(err, shape.ErrInvalidDimension), "got %v", err)

	_, err = run(t, "--data", data, "get", "99")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = run(t, "--data", data, "delete", "99")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = run(t, "--data", data, "get", "abc")
	assert.True(t, errors.Is(err, shape.ErrInvalidID), "got %v", err)

	_, err = run(t, "--data", data, "--unit", "yd", "list")
	assert.True(t, errors.Is(err, units.ErrInvalidUnit), "got %v", err)

	_, err = run(t, "--data", data, "clear")
	assert.Error(t, err)

	_, err = run(t, "--data", data, "-o", "xml", "list")
	assert.Error(t, err)

	assert.False(t, storage.Exists(data), "failed commands must not write a snapshot")
}

func TestHugeDimensionIsRejectedBeforeStoring(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")

	_, err := run(t, "--data", data, "add", "circle", "--radius", "1e200", "-o", "json")
	assert.True(t, errors.Is(err, shape.ErrInvalidDimension), "got %v", err)
	_, err = run(t, "--data", data, "--unit", "mm", "add", "cube", "--side", "1e300")
	assert.True(t, errors.Is(err, shape.ErrInvalidDimension), "got %v", err)
	assert.False(t, storage.Exists(data))

	var c figureJSON
	runJSON(t, &c, "--data", data, "add", "sphere", "--radius", "1e90")
	assert.Equal(t, int64(1), c.ID)

	var list []figureJSON
	runJSON(t, &list, "--data", data, "--unit", "mm", "list")
	require.Len(t, list, 1)
	_, err = run(t, "--data", data, "--unit", "mm", "stats", "-o", "json")
	require.NoError(t, err)
}

func TestResize(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")
	_, err := run(t, "--data", data, "add", "square", "--side", "1")
	require.NoError(t, err)

	var got figureJSON
	runJSON(t, &got, "--data", data, "--unit", "cm", "resize", "1", "300")
	assert.InDelta(t, 300, got.Measurements.Dimension, 1e-9)
	runJSON(t, &got, "--data", data, "get", "1")
	assert.InDelta(t, 3, got.Measurements.Dimension, 1e-9)

	_, err = run(t, "--data", data, "resize", "1", "0")
	assert.True(t, errors.Is(err, shape.ErrInvalidDimension), "got %v", err)
	_, err = run(t, "--data", data, "resize", "9", "2")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	runJSON(t, &got, "--data", data, "get", "1")
	assert.InDelta(t, 3, got.Measurements.Dimension, 1e-9)
}

func TestDryRunDoesNotPersist(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")
	_, err := run(t, "--data", data, "--dry-run", "add", "square", "--side", "1")
	require.NoError(t, err)
	assert.False(t, storage.Exists(data))
}

func TestAutoSaveDisabledStillPersists(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "figures.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  auto-save: false\n"), 0o644))
	data := filepath.Join(dir, "figuras.json")

	_, err := run(t, "--config", cfgPath, "--data", data, "add", "square", "--side", "1")
	require.NoError(t, err)
	doc, err := storage.LoadSnapshot(data)
	require.NoError(t, err)
	assert.Len(t, doc.Shapes, 1)
}

func TestExportImportClear(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "figuras.json")
	other := filepath.Join(dir, "other.json")
	export := filepath.Join(dir, "export.yaml")

	_, err := run(t, "--data", data, "add", "circle", "--radius", "1")
	require.NoError(t, err)
	_, err = run(t, "--data", data, "add", "cube", "--side", "1", "--id", "10")
	require.NoError(t, err)

	out, err := run(t, "--data", data, "export", export)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 2 figures")

	out, err = run(t, "--data", other, "import", export)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 figures")

	var next figureJSON
	runJSON(t, &next, "--data", other, "add", "square", "--side", "1")
	assert.Equal(t, int64(11), next.ID)

	out, err = run(t, "--data", other, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 3 figures")

	runJSON(t, &next, "--data", other, "add", "square", "--side", "1")
	assert.Equal(t, int64(1), next.ID)
}

func TestTextOutput(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")
	_, err := run(t, "--data", data, "add", "square", "--side", "2")
	require.NoError(t, err)
	_, err = run(t, "--data", data, "add", "sphere", "--radius", "1")
	require.NoError(t, err)

	out, err := run(t, "--data", data, "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Figure #1")
	assert.Contains(t, out, "4.00 m²")
	assert.Contains(t, out, "8.00 m")

	out, err = run(t, "--data", data, "--unit", "cm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Square")
	assert.Contains(t, out, "40000.00 cm²")

	out, err = run(t, "--data", data, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total:")
	assert.Contains(t, out, "Sphere")
	assert.Contains(t, out, "4.00 m²")

	out, err = run(t, "--data", data, "convert", "100", "--from", "cm", "--to", "m")
	require.NoError(t, err)
	assert.Contains(t, out, "100.00 cm = 1.00 m")

	out, err = run(t, "--data", data, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "sphere")

	out, err = run(t, "--data", data, "units")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0254")
}

func TestConvertJSON(t *testing.T) {
	data := filepath.Join(t.TempDir(), "figuras.json")
	var res struct {
		Result float64 `json:"result"`
	}
	runJSON(t, &res, "--data", data, "convert", "1", "--from", "m", "--to", "mm")
	assert.Equal(t, 1000.0, res.Result)

	runJSON(t, &res, "--data", data, "convert", "1", "--from", "ft", "--to", "in", "--measure", "volume")
	assert.InDelta(t, 1728, res.Result, 1e-9)

	_, err := run(t, "--data", data, "convert", "1", "--from", "m", "--to", "parsec")
	assert.True(t, errors.Is(err, units.ErrInvalidUnit))
}
