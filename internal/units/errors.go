// internal/units/errors.go

package units

import "github.com/pkg/errors"

// ErrInvalidUnit 代表單位不在支援清單內。
var ErrInvalidUnit = errors.New("invalid unit")
