package conversion

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"unitconv/internal/units"
)

// Service converts values between units and rounds the result to a fixed precision
type Service interface {
	// Convert validates the request, converts value from one unit to another and
	// rounds the result
	Convert(conversionType string, value any, from, to string) (float64, error)
	// Precision returns the number of decimal places results are rounded to
	Precision() int
}

// conversionService implements the Service interface
type conversionService struct {
	precision int
}

// NewConversionService creates a conversion service that rounds every result to precision
// decimal places
func NewConversionService(precision int) (Service, error) {
	if err := ValidatePrecision(precision); err != nil {
		return nil, err
	}
	return &conversionService{precision: precision}, nil
}

func (s *conversionService) Precision() int {
	return s.precision
}

// Convert dispatches to the domain converter selected by conversionType
func (s *conversionService) Convert(conversionType string, value any, from, to string) (float64, error) {
	ct, err := units.ParseConversionType(conversionType)
	if err != nil {
		return 0, err
	}

	v, err := ToFiniteFloat(value)
	if err != nil {
		return 0, err
	}

	convert, err := ct.Converter()
	if err != nil {
		return 0, err
	}

	result, err := convert(v, units.Unit(from), units.Unit(to))
	if err != nil {
		return 0, err
	}
	if math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: %v %s overflows when converted to %s", units.ErrInvalidNumericValue, v, from, to)
	}

	return Round(result, s.precision), nil
}

// ToFiniteFloat coerces a number or numeric string to a finite float64.
// Booleans, nil and empty strings are rejected rather than read as 0 or 1.
func ToFiniteFloat(value any) (float64, error) {
	var (
		v   float64
		err error
	)

	switch val := value.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, fmt.Errorf("%w: empty string", units.ErrInvalidNumericValue)
		}
		// Go literal forms such as 1_000 and 0x1p4 are not decimal numbers
		if strings.ContainsAny(trimmed, "_xX") {
			return 0, fmt.Errorf("%w: %q", units.ErrInvalidNumericValue, val)
		}
		v, err = cast.ToFloat64E(trimmed)
	case json.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		v, err = cast.ToFloat64E(val)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", units.ErrInvalidNumericValue, value)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %v", units.ErrInvalidNumericValue, value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", units.ErrInvalidNumericValue, v)
	}

	return v, nil
}
