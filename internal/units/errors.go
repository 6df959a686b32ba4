package units

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying conversion failures
var (
	ErrUnknownConversionType = errors.New("unknown conversion type")
	ErrInvalidNumericValue   = errors.New("invalid numeric value")
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// Side tells which argument of a conversion carried a bad unit
type Side string

const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

// UnknownUnitError reports a unit code that is not valid for the domain
type UnknownUnitError struct {
	Type ConversionType
	Side Side
	Unit Unit
}

func (e *UnknownUnitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("unknown %s unit (%s): %q", e.Type, e.Side, string(e.Unit))
}

// Is lets errors.Is match ErrUnknownUnit
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}
