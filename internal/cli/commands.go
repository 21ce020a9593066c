// internal/cli/commands.go
//
// 子指令。每個 handler 僅負責：
//  1. 解析參數與旗標
//  2. 呼叫 catalog 執行操作
//  3. 輸出結果（text / json）
//  4. 變更成功後呼叫 afterMutation()

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"figures/internal/catalog"
	"figures/internal/shape"
	"figures/internal/units"
)

// ErrNotFound 代表指定 ID 的圖形不存在。
var ErrNotFound = errors.New("shape not found")

// parseID 解析正整數 ID 參數。
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(shape.ErrInvalidID, "%q", arg)
	}
	return id, nil
}

// view 將圖形換算成顯示單位的輸出結構。
func (a *App) view(s shape.Shape) (shapeView, error) {
	m, err := shape.Measure(s, a.unit)
	if err != nil {
		return shapeView{}, err
	}
	return shapeView{ID: s.ID(), Kind: s.Kind(), Name: s.Name(), Category: s.Category(), Measurements: m}, nil
}

func (a *App) views(list []shape.Shape) ([]shapeView, error) {
	out := make([]shapeView, 0, len(list))
	for _, s := range list {
		v, err := a.view(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// printShape 依輸出格式印出單一圖形。
func (a *App) printShape(s shape.Shape) error {
	v, err := a.view(s)
	if err != nil {
		return err
	}
	if a.flags.output == outputJSON {
		return writeJSON(a.out, v)
	}
	renderShape(a.out, v, a.precision)
	return nil
}

// printShapes 依輸出格式印出圖形清單。
func (a *App) printShapes(list []shape.Shape) error {
	vs, err := a.views(list)
	if err != nil {
		return err
	}
	if a.flags.output == outputJSON {
		return writeJSON(a.out, vs)
	}
	if len(vs) == 0 {
		fmt.Fprintln(a.out, "no figures")
		return nil
	}
	renderTable(a.out, shapeHeaders, shapeRows(vs, a.precision))
	return nil
}

// printMessage 輸出簡短訊息；json 模式下包成物件。
func (a *App) printMessage(msg string, fields map[string]any) error {
	if a.flags.output == outputJSON {
		if fields == nil {
			fields = map[string]any{}
		}
		fields["message"] = msg
		return writeJSON(a.out, fields)
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// addCmd：figures add <kind> --radius R | --side S [--id N]
// 尺寸以 --unit 指定的單位輸入，存入前換算為公尺。
func (a *App) addCmd() *cobra.Command {
	var (
		radius, side float64
		id           int64
	)
	cmd := &cobra.Command{
		Use:   "add <circle|square|cube|sphere>",
		Short: "Create a figure and store it",
		Example: `  figures add circle --radius 5
  figures add cube --side 20 --unit cm
  figures add sphere --radius 1 --id 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := shape.Dimensions{}
			var err error
			if cmd.Flags().Changed("radius") {
				if dims.Radius, err = units.ConvertLength(radius, a.unit, units.Base); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("side") {
				if dims.Side, err = units.ConvertLength(side, a.unit, units.Base); err != nil {
					return err
				}
			}
			s, err := a.Repo.Create(args[0], dims, id)
			if err != nil {
				return err
			}
			if err := a.afterMutation(); err != nil {
				return err
			}
			a.log.Info("figure created", zap.Int64("id", s.ID()), zap.String("kind", string(s.Kind())))
			return a.printShape(s)
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 0, "radius (circle, sphere)")
	cmd.Flags().Float64Var(&side, "side", 0, "side length (square, cube)")
	cmd.Flags().Int64Var(&id, "id", 0, "explicit id (default: next free id)")
	return cmd
}

func (a *App) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one figure with its measurements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, ok := a.Repo.Get(id)
			if !ok {
				return errors.Wrapf(ErrNotFound, "id %d", id)
			}
			return a.printShape(s)
		},
	}
}

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all figures ordered by id",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printShapes(a.Repo.List())
		},
	}
}

// resizeCmd：figures resize <id> <value>，value 以 --unit 指定的單位輸入。
func (a *App) resizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <id> <radius|side>",
		Short: "Change the radius or side of a figure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return errors.Wrapf(shape.ErrInvalidDimension, "%q", args[1])
			}
			dim, err := units.ConvertLength(value, a.unit, units.Base)
			if err != nil {
				return errors.Wrap(shape.ErrInvalidDimension, err.Error())
			}
			s, ok, err := a.Repo.Resize(id, dim)
			if !ok {
				return errors.Wrapf(ErrNotFound, "id %d", id)
			}
			if err != nil {
				return err
			}
			if err := a.afterMutation(); err != nil {
				return err
			}
			a.log.Info("figure resized", zap.Int64("id", id), zap.Float64("dimension", dim))
			return a.printShape(s)
		},
	}
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a figure",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !a.Repo.Delete(id) {
				return errors.Wrapf(ErrNotFound, "id %d", id)
			}
			if err := a.afterMutation(); err != nil {
				return err
			}
			return a.printMessage(fmt.Sprintf("deleted figure #%d", id), map[string]any{"id": id})
		},
	}
}

func (a *App) findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <type>",
		Short: "Find figures by type (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printShapes(a.Repo.FindByType(args[0]))
		},
	}
}

// statsCmd 的總量與平均值換算到顯示單位。
func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show repository statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := convertStats(a.Repo.Stats(), a.unit)
			if err != nil {
				return err
			}
			if a.flags.output == outputJSON {
				return writeJSON(a.out, st)
			}
			renderStats(a.out, st, a.precision)
			return nil
		},
	}
}

// convertStats 將以公尺為基準的統計換算到 u。
func convertStats(s catalog.Stats, u units.Unit) (statsView, error) {
	type conv struct {
		v  *float64
		fn func(float64, units.Unit, units.Unit) (float64, error)
	}
	for _, c := range []conv{
		{&s.Area2DTotal, units.ConvertArea},
		{&s.Area2DAverage, units.ConvertArea},
		{&s.Perimeter2DTotal, units.ConvertLength},
		{&s.Perimeter2DAverage, units.ConvertLength},
		{&s.Volume3DTotal, units.ConvertVolume},
		{&s.Volume3DAverage, units.ConvertVolume},
		{&s.Surface3DTotal, units.ConvertArea},
	} {
		v, err := c.fn(*c.v, units.Base, u)
		if err != nil {
			return statsView{}, err
		}
		*c.v = v
	}
	return statsView{Stats: s, Unit: u}, nil
}

func (a *App) clearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every figure and reset the id counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			n := a.Repo.Count()
			a.Repo.Clear()
			if err := a.afterMutation(); err != nil {
				return err
			}
			return a.printMessage(fmt.Sprintf("removed %d figures", n), map[string]any{"removed": n})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.json|file.yaml>",
		Short: "Write all figures to another file (format by extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Repo.SaveTo(args[0]); err != nil {
				return err
			}
			return a.printMessage(fmt.Sprintf("exported %d figures to %s", a.Repo.Count(), args[0]),
				map[string]any{"file": args[0], "count": a.Repo.Count()})
		},
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json|file.yaml>",
		Short: "Merge figures from another file (same ids are overwritten)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.Repo.ImportFrom(args[0])
			if err != nil {
				return err
			}
			if n > 0 {
				if err := a.afterMutation(); err != nil {
					return err
				}
			}
			return a.printMessage(fmt.Sprintf("imported %d figures from %s", n, args[0]),
				map[string]any{"file": args[0], "count": n})
		},
	}
}

// convertCmd：figures convert 100 --from cm --to m [--measure area]
func (a *App) convertCmd() *cobra.Command {
	var from, to, measure string
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a length, area or volume between units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return errors.Wrapf(err, "value %q", args[0])
			}
			fu, err := units.Parse(from)
			if err != nil {
				return err
			}
			tu, err := units.Parse(to)
			if err != nil {
				return err
			}
			var (
				fn    func(float64, units.Unit, units.Unit) (float64, error)
				power int
			)
			switch strings.ToLower(measure) {
			case "length", "":
				fn, power = units.ConvertLength, 1
			case "area":
				fn, power = units.ConvertArea, 2
			case "volume":
				fn, power = units.ConvertVolume, 3
			default:
				return errors.Errorf("unsupported measure %q (length, area, volume)", measure)
			}
			got, err := fn(value, fu, tu)
			if err != nil {
				return err
			}
			if a.flags.output == outputJSON {
				return writeJSON(a.out, map[string]any{
					"value": value, "from": fu, "to": tu, "measure": measure, "result": got,
				})
			}
			fmt.Fprintf(a.out, "%s = %s\n",
				units.Format(value, fu, power, a.precision), units.Format(got, tu, power, a.precision))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "m", "source unit")
	cmd.Flags().StringVar(&to, "to", "m", "target unit")
	cmd.Flags().StringVar(&measure, "measure", "length", "length, area or volume")
	return cmd
}

func (a *App) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported figure types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(shape.Kinds()))
			for _, k := range shape.Kinds() {
				rows = append(rows, []string{string(k), k.DisplayName(), string(k.Category()), k.DimensionName()})
			}
			if a.flags.output == outputJSON {
				return writeJSON(a.out, rows)
			}
			renderTable(a.out, []string{"TAG", "NAME", "CAT", "DIMENSION"}, rows)
			return nil
		},
	}
}

func (a *App) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List supported units and their factor to meters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(units.All()))
			for _, u := range units.All() {
				f, _ := units.FactorToBase(u)
				name, _ := units.Name(u)
				rows = append(rows, []string{string(u), name, strconv.FormatFloat(f, 'g', -1, 64)})
			}
			if a.flags.output == outputJSON {
				return writeJSON(a.out, rows)
			}
			renderTable(a.out, []string{"SYMBOL", "NAME", "METERS"}, rows)
			return nil
		},
	}
}
