// internal/cli/root.go
//
// 指令註冊：root command 解析全域旗標、載入設定、建立 logger 與倉庫，
// 子指令則定義於 commands.go。

package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"figures/internal/catalog"
	"figures/internal/config"
	"figures/internal/logging"
	"figures/internal/storage"
	"figures/internal/units"
)

// globalFlags 為所有子指令共用的旗標。
type globalFlags struct {
	configPath string
	dataFile   string
	unit       string
	output     string
	verbose    bool
	dryRun     bool
}

// App 為指令層核心結構：
// - Repo：圖形倉庫（於 PersistentPreRunE 建立）
// - persist：變更成功後的持久化鉤子；倉庫已自動儲存或 dry-run 時為 nil
type App struct {
	Repo *catalog.Repository

	flags     globalFlags
	cfg       *config.Config
	unit      units.Unit
	precision int
	log       *zap.Logger
	out       io.Writer
	persist   func() error
}

// NewRootCommand 建立完整指令樹，輸出寫到 out。
func NewRootCommand(out io.Writer) *cobra.Command {
	app := &App{out: out}

	root := &cobra.Command{
		Use:   "figures",
		Short: "Catalog of geometric figures with JSON persistence",
		Long: `figures stores circles, squares, cubes and spheres in a JSON snapshot,
computes their area, perimeter, volume and surface area, and converts
measurements between m, cm, mm, in and ft.

Dimensions are stored in meters; --unit selects the input and display unit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&app.flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&app.flags.dataFile, "data", "", "snapshot file (default figuras.json)")
	pf.StringVarP(&app.flags.unit, "unit", "u", "", "input/display unit: m, cm, mm, in, ft")
	pf.StringVarP(&app.flags.output, "output", "o", "text", "output format: text or json")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&app.flags.dryRun, "dry-run", false, "do not write the snapshot")

	root.AddCommand(
		app.addCmd(),
		app.getCmd(),
		app.listCmd(),
		app.resizeCmd(),
		app.deleteCmd(),
		app.findCmd(),
		app.statsCmd(),
		app.clearCmd(),
		app.exportCmd(),
		app.importCmd(),
		app.convertCmd(),
		app.kindsCmd(),
		app.unitsCmd(),
	)
	return root
}

// setup 依序：設定檔與環境變數 → 旗標覆寫 → 驗證 → logger → 開啟倉庫。
func (a *App) setup() error {
	cfg, err := config.NewConfig(a.flags.configPath)
	if err != nil {
		return err
	}
	if a.flags.dataFile != "" {
		cfg.Storage.DataFile = a.flags.dataFile
	}
	if a.flags.unit != "" {
		cfg.Display.Unit = a.flags.unit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch a.flags.output {
	case outputText, outputJSON:
	default:
		return errors.Errorf("unsupported output %q (text, json)", a.flags.output)
	}

	log, err := logging.New(cfg.Log.Level, a.flags.verbose)
	if err != nil {
		return err
	}
	path, err := cfg.DataPath()
	if err != nil {
		return err
	}
	unit, err := cfg.Unit()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.unit = unit
	a.precision = cfg.Display.Precision
	autoSave := cfg.Storage.AutoSave && !a.flags.dryRun
	a.Repo = catalog.Open(catalog.Options{Path: path, AutoSave: autoSave, Logger: log})
	if !autoSave && !a.flags.dryRun {
		a.persist = a.Repo.Save
	}
	log.Debug("repository ready",
		zap.String("path", path),
		zap.Bool("autoSave", autoSave),
		zap.Bool("fileExists", storage.Exists(path)),
		zap.Int("count", a.Repo.Count()))
	return nil
}

// afterMutation 呼叫持久化鉤子。
func (a *App) afterMutation() error {
	if a.persist == nil {
		return nil
	}
	return a.persist()
}
