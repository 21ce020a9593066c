// internal/config/config.go
//
// 應用程式設定：程式內預設值 → 可選 YAML 檔 → 環境變數，依序覆寫。

package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"figures/internal/units"
)

// DefaultDataFile 為預設快照檔名。
const DefaultDataFile = "figuras.json"

type (
	// Config 為主要設定。
	Config struct {
		Storage Storage `yaml:"storage"`
		Display Display `yaml:"display"`
		Log     Log     `yaml:"logger"`
	}

	// Storage 為持久化設定。
	Storage struct {
		DataFile string `yaml:"data-file" env:"FIGURES_DATA_FILE"`
		Home     string `yaml:"home" env:"FIGURES_HOME"`
		AutoSave bool   `yaml:"auto-save" env:"FIGURES_AUTOSAVE"`
	}

	// Display 為輸出設定。
	Display struct {
		Unit      string `yaml:"unit" env:"FIGURES_UNIT"`
		Precision int    `yaml:"precision" env:"FIGURES_PRECISION"`
	}

	// Log 為日誌設定。
	Log struct {
		Level string `yaml:"log-level" env:"LOG_LEVEL"`
	}
)

// Default 回傳內建預設值。
func Default() *Config {
	cfg := &Config{}
	cfg.Storage.DataFile = DefaultDataFile
	cfg.Storage.AutoSave = true
	cfg.Display.Unit = string(units.Meters)
	cfg.Display.Precision = 2
	cfg.Log.Level = "warn"
	return cfg
}

// NewConfig 讀取設定；path 為空時只套用預設值與環境變數。
func NewConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, errors.Wrap(err, "config error")
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "config env error")
	}

	return cfg, nil
}

// Validate 檢查設定值。
func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return errors.New("storage data file is required")
	}
	if _, err := units.Parse(c.Display.Unit); err != nil {
		return errors.Wrap(err, "display unit")
	}
	if c.Display.Precision < 0 || c.Display.Precision > 12 {
		return errors.Errorf("display precision %d out of range [0, 12]", c.Display.Precision)
	}
	return nil
}

// DataPath 回傳快照的絕對路徑：相對路徑以 Home 為基準，Home 未設定時使用工作目錄。
func (c *Config) DataPath() (string, error) {
	p := c.Storage.DataFile
	if filepath.IsAbs(p) {
		return p, nil
	}
	base := c.Storage.Home
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolve working directory")
		}
		base = wd
	}
	return filepath.Join(base, p), nil
}

// Unit 回傳解析後的顯示單位。
func (c *Config) Unit() (units.Unit, error) {
	return units.Parse(c.Display.Unit)
}
