// internal/idgen/generator.go

// Package idgen 提供圖形的遞增整數 ID 產生器。
// Generator 不含鎖，由持有者（catalog.Repository）在自身互斥鎖內操作，
// 使「調和後寫入」這類讀改寫序列能在同一臨界區完成。
package idgen

import "github.com/pkg/errors"

// Generator 為單調遞增計數器；零值即可使用，起始為 0。
type Generator struct {
	counter int64
}

// New 建立計數器為 0 的產生器。
func New() *Generator {
	return &Generator{}
}

// Next 遞增並回傳新 ID（第一個為 1）。
func (g *Generator) Next() int64 {
	g.counter++
	return g.counter
}

// Current 回傳最後一次指派（或調和）的 ID，不遞增。
func (g *Generator) Current() int64 {
	return g.counter
}

// Reconcile 將計數器提升到至少 existing，之後產生的 ID 不會與其碰撞。
func (g *Generator) Reconcile(existing int64) {
	if existing > g.counter {
		g.counter = existing
	}
}

// Restore 以持久化值設定計數器；不得為負。
func (g *Generator) Restore(value int64) error {
	if value < 0 {
		return errors.Errorf("counter value %d must not be negative", value)
	}
	g.counter = value
	return nil
}

// Reset 將計數器歸零（僅供測試與清空倉庫使用）。
func (g *Generator) Reset() {
	g.counter = 0
}
