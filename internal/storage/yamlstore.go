// internal/storage/yamlstore.go
//
// YAML 匯出／匯入：欄位名稱與 JSON 快照相同，供人工檢視或外部工具使用。
package storage

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format 為快照檔案格式。
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat 接受 json / yaml / yml（不分大小寫）。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf("unsupported format %q (json, yaml)", s)
}

// FormatForPath 依副檔名判斷格式，.yaml/.yml 為 YAML，其餘為 JSON。
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// SaveYAML 將快照原子寫入為 YAML。
func SaveYAML(path string, doc Document) error {
	doc.Version = FormatVersion
	doc.SavedAt = time.Now().UTC()
	return writeAtomic(path, func(f *os.File) error {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	})
}

// LoadYAML 讀取 YAML 快照；檔案不存在回傳 ErrNotExist。
func LoadYAML(path string) (Document, error) {
	var doc Document
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, errors.Wrap(ErrNotExist, path)
		}
		return doc, errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Document{}, errors.Wrapf(err, "decode %s", path)
	}
	return doc, nil
}

// Save 依 format 寫入快照。
func Save(path string, format Format, doc Document) error {
	if format == FormatYAML {
		return SaveYAML(path, doc)
	}
	return SaveSnapshot(path, doc)
}

// Load 依副檔名選擇格式讀取快照。
func Load(path string) (Document, error) {
	if FormatForPath(path) == FormatYAML {
		return LoadYAML(path)
	}
	return LoadSnapshot(path)
}
