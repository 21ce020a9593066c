// internal/cli/render.go
//
// 統一輸出格式：--output json 時以 writeJSON 輸出，否則以 lipgloss 排版文字。

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"figures/internal/catalog"
	"figures/internal/shape"
	"figures/internal/units"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// shapeView 為單一圖形的輸出結構。
type shapeView struct {
	ID           int64              `json:"id"`
	Kind         shape.Kind         `json:"kind"`
	Name         string             `json:"name"`
	Category     shape.Category     `json:"category"`
	Measurements shape.Measurements `json:"measurements"`
}

// writeJSON 以縮排 JSON 輸出 v。
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// styles 綁定在實際輸出的 writer 上，非終端機時不輸出色碼。
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	cell  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		label: r.NewStyle().Bold(true),
		muted: r.NewStyle().Faint(true),
		cell:  r.NewStyle().PaddingRight(2),
	}
}

// num 依精度格式化數值。
func num(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// renderShape 輸出單一圖形的完整資訊。
func renderShape(w io.Writer, v shapeView, precision int) {
	st := newStyles(w)
	m := v.Measurements
	fmt.Fprintln(w, st.title.Render(fmt.Sprintf("Figure #%d", v.ID)))
	line := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(label+":"), value)
	}
	line("Type", v.Name)
	line("Category", string(v.Category))
	line(strings.ToUpper(m.DimensionName[:1])+m.DimensionName[1:], units.Format(m.Dimension, m.Unit, 1, precision))
	if v.Category == shape.Category2D {
		line("Area", units.Format(m.Area, m.Unit, 2, precision))
		line("Perimeter", units.Format(m.Perimeter, m.Unit, 1, precision))
	} else {
		line("Volume", units.Format(m.Volume, m.Unit, 3, precision))
		line("Surface area", units.Format(m.SurfaceArea, m.Unit, 2, precision))
	}
}

// renderTable 輸出對齊的表格；欄寬以 lipgloss.Width 計算。
func renderTable(w io.Writer, headers []string, rows [][]string) {
	st := newStyles(w)
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if cw := lipgloss.Width(c); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	renderRow := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = st.cell.Width(widths[i] + 2).Render(style.Render(c))
		}
		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
	}
	fmt.Fprintln(w, renderRow(headers, st.label))
	for _, row := range rows {
		fmt.Fprintln(w, renderRow(row, lipgloss.NewStyle()))
	}
}

// shapeRows 將圖形清單轉為表格列。
func shapeRows(views []shapeView, precision int) [][]string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		m := v.Measurements
		primary, secondary := m.Area, m.Perimeter
		pPow, sPow := 2, 1
		if v.Category == shape.Category3D {
			primary, secondary = m.Volume, m.SurfaceArea
			pPow, sPow = 3, 2
		}
		rows = append(rows, []string{
			strconv.FormatInt(v.ID, 10),
			v.Name,
			string(v.Category),
			m.DimensionName + "=" + units.Format(m.Dimension, m.Unit, 1, precision),
			units.Format(primary, m.Unit, pPow, precision),
			units.Format(secondary, m.Unit, sPow, precision),
		})
	}
	return rows
}

var shapeHeaders = []string{"ID", "TYPE", "CAT", "DIMENSION", "AREA/VOLUME", "PERIMETER/SURFACE"}

// statsView 為統計輸出：總量換算到顯示單位。
type statsView struct {
	catalog.Stats
	Unit units.Unit `json:"unit"`
}

// renderStats 輸出統計。
func renderStats(w io.Writer, s statsView, precision int) {
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render("Repository statistics"))
	fmt.Fprintf(w, "  %s %d (%d types)\n", st.label.Render("Total:"), s.Total, s.UniqueTypes)

	names := make([]string, 0, len(s.PerType))
	for n := range s.PerType {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "    %-8s %d\n", n, s.PerType[n])
	}
	fmt.Fprintf(w, "  %s %s (avg %s)\n", st.label.Render("2D area:"),
		units.Format(s.Area2DTotal, s.Unit, 2, precision), units.Format(s.Area2DAverage, s.Unit, 2, precision))
	fmt.Fprintf(w, "  %s %s (avg %s)\n", st.label.Render("2D perimeter:"),
		units.Format(s.Perimeter2DTotal, s.Unit, 1, precision), units.Format(s.Perimeter2DAverage, s.Unit, 1, precision))
	fmt.Fprintf(w, "  %s %s (avg %s)\n", st.label.Render("3D volume:"),
		units.Format(s.Volume3DTotal, s.Unit, 3, precision), units.Format(s.Volume3DAverage, s.Unit, 3, precision))
	fmt.Fprintf(w, "  %s %s\n", st.label.Render("3D surface:"), units.Format(s.Surface3DTotal, s.Unit, 2, precision))

	info := "missing"
	if s.FileExists {
		info = fmt.Sprintf("%d bytes", s.FileSize)
		if s.FileModified != nil {
			info += ", modified " + s.FileModified.Local().Format("2006-01-02 15:04:05")
		}
	}
	fmt.Fprintln(w, st.muted.Render(fmt.Sprintf("  file: %s (%s)", s.File, info)))
}
