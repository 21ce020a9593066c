// internal/units/units.go

// Package units 定義支援的長度單位與換算規則。
// 所有換算皆以公尺 (m) 為基準單位：先乘上來源單位係數轉為公尺，再除以目標單位係數。
// 面積與體積分別使用係數的平方與立方。
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unit 為長度單位，值即顯示符號（例如 "cm"）。
type Unit string

const (
	Meters      Unit = "m"
	Centimeters Unit = "cm"
	Millimeters Unit = "mm"
	Inches      Unit = "in"
	Feet        Unit = "ft"
)

// Base 為所有換算的樞紐單位。
const Base = Meters

// unitInfo 保存單位係數與全名。
type unitInfo struct {
	factor float64
	name   string
}

var table = map[Unit]unitInfo{
	Meters:      {factor: 1, name: "meters"},
	Centimeters: {factor: 0.01, name: "centimeters"},
	Millimeters: {factor: 0.001, name: "millimeters"},
	Inches:      {factor: 0.0254, name: "inches"},
	Feet:        {factor: 0.3048, name: "feet"},
}

// All 依固定順序回傳所有支援單位。
func All() []Unit {
	return []Unit{Meters, Centimeters, Millimeters, Inches, Feet}
}

// Valid 回報 u 是否為支援單位。
func (u Unit) Valid() bool {
	_, ok := table[u]
	return ok
}

// String 回傳單位符號。
func (u Unit) String() string { return string(u) }

// Parse 接受符號或英文全名（不分大小寫），例如 "cm"、"Centimeters"。
func Parse(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for u, info := range table {
		if key == string(u) || key == info.name {
			return u, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidUnit, "%q", s)
}

// FactorToBase 回傳 1 單位 u 等於多少公尺。
func FactorToBase(u Unit) (float64, error) {
	info, ok := table[u]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidUnit, "%q", string(u))
	}
	return info.factor, nil
}

// Symbol 回傳單位的顯示符號。
func Symbol(u Unit) (string, error) {
	if !u.Valid() {
		return "", errors.Wrapf(ErrInvalidUnit, "%q", string(u))
	}
	return string(u), nil
}

// Name 回傳單位英文全名。
func Name(u Unit) (string, error) {
	info, ok := table[u]
	if !ok {
		return "", errors.Wrapf(ErrInvalidUnit, "%q", string(u))
	}
	return info.name, nil
}

// ConvertLength 長度換算：value * factor(from) / factor(to)。
// from == to 時直接回傳原值（仍需為合法單位）。
func ConvertLength(value float64, from, to Unit) (float64, error) {
	return convert(value, from, to, 1)
}

// ConvertArea 面積換算，使用係數平方比。
func ConvertArea(value float64, from, to Unit) (float64, error) {
	return convert(value, from, to, 2)
}

// ConvertVolume 體積換算，使用係數立方比。
func ConvertVolume(value float64, from, to Unit) (float64, error) {
	return convert(value, from, to, 3)
}

// convert 依 power（1 長度、2 面積、3 體積）套用係數比。
func convert(value float64, from, to Unit, power int) (float64, error) {
	ff, err := FactorToBase(from)
	if err != nil {
		return 0, err
	}
	ft, err := FactorToBase(to)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Errorf("cannot convert non-finite value %v", value)
	}
	if from == to {
		return value, nil
	}
	out := value
	for i := 0; i < power; i++ {
		out = out * ff / ft
	}
	if math.IsInf(out, 0) {
		return 0, errors.Errorf("conversion of %v %s to %s overflows", value, from, to)
	}
	return out, nil
}

// Format 以固定小數位數輸出數值與單位，power 為 2/3 時加上 ²/³。
//
//	Format(12.566, Centimeters, 2, 2) → "12.57 cm²"
func Format(value float64, u Unit, power, precision int) string {
	suffix := string(u)
	switch power {
	case 2:
		suffix += "²"
	case 3:
		suffix += "³"
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', precision, 64), suffix)
}
