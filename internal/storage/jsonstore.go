// internal/storage/jsonstore.go
//
// 提供 JSON 快照的讀寫。
// 寫入採「原子寫入」：先寫入 path+".tmp"，完成後以 rename() 取代原檔，
// 寫入中斷時原檔維持上一版內容。
package storage

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// ErrNotExist 代表快照檔案不存在（首次啟動的正常情況）。
var ErrNotExist = errors.New("snapshot file does not exist")

// LoadSnapshot 讀取 path 的 JSON 快照。
// 檔案不存在回傳 ErrNotExist；格式錯誤回傳包裝後的解析錯誤。
func LoadSnapshot(path string) (Document, error) {
	var doc Document
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, errors.Wrap(ErrNotExist, path)
		}
		return doc, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return Document{}, errors.Wrapf(err, "decode %s", path)
	}
	return doc, nil
}

// SaveSnapshot 將快照以縮排 JSON 原子寫入 path。
// 會補上格式版本與寫入時間；上層目錄不存在時一併建立。
func SaveSnapshot(path string, doc Document) error {
	doc.Version = FormatVersion
	doc.SavedAt = time.Now().UTC()
	return writeAtomic(path, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
}

// Exists 回報 path 是否存在。
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileInfo 為快照檔的大小與最後修改時間。
type FileInfo struct {
	Size     int64
	Modified time.Time
}

// Stat 讀取 path 的檔案資訊；不存在時回傳 ErrNotExist。
func Stat(path string) (FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileInfo{}, ErrNotExist
		}
		return FileInfo{}, errors.Wrapf(err, "stat %s", path)
	}
	return FileInfo{Size: fi.Size(), Modified: fi.ModTime()}, nil
}

// writeAtomic 寫入暫存檔後 rename 取代目標檔。
func writeAtomic(path string, write func(f *os.File) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create dir %s", dir)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}
	if err := write(f); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
