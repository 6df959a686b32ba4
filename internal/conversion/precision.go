package conversion

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MaxPrecision is the largest number of decimal places a result can be rounded to.
// float64 carries at most 15-17 significant decimal digits.
const MaxPrecision = 15

// ErrInvalidPrecision is returned for a precision outside [0, MaxPrecision]
var ErrInvalidPrecision = errors.New("invalid precision")

// ValidatePrecision checks that precision is usable by Round
func ValidatePrecision(precision int) error {
	if precision < 0 || precision > MaxPrecision {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidPrecision, precision, MaxPrecision)
	}
	return nil
}

// Round rounds value to precision decimal places, half away from zero.
// Rounding works on the shortest decimal form of value, so 1.005 rounds to 1.01.
func Round(value float64, precision int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	rounded, _ := decimal.NewFromFloat(value).Round(int32(precision)).Float64()
	if rounded == 0 {
		// normalize -0
		return 0
	}
	return rounded
}
