// Package units holds the supported measurement domains, their unit codes and the
// per-domain conversion formulas. Converters here do not round; rounding is applied by
// the conversion service.
package units

import (
	"fmt"

	"github.com/samber/lo"
)

// ConversionType identifies a measurement domain
type ConversionType string

const (
	Distance    ConversionType = "distance"
	Temperature ConversionType = "temperature"
	Weight      ConversionType = "weight"
)

// Unit is a case-sensitive unit code within a domain
type Unit string

// Distance units
const (
	Kilometer Unit = "km"
	Mile      Unit = "mi"
	Meter     Unit = "m"
)

// Temperature units
const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"
)

// Weight units
const (
	Gram  Unit = "g"
	Ounce Unit = "oz"
	Pound Unit = "lb"
)

// ConverterFunc converts a finite value between two units of the same domain
type ConverterFunc func(value float64, from, to Unit) (float64, error)

// Domain describes one measurement domain and the unit codes it accepts
type Domain struct {
	Type  ConversionType `json:"type"`
	Units []Unit         `json:"units"`
}

var domainUnits = map[ConversionType][]Unit{
	Distance:    {Kilometer, Mile, Meter},
	Temperature: {Celsius, Fahrenheit, Kelvin},
	Weight:      {Gram, Ounce, Pound},
}

// Types returns the supported conversion types in a stable order
func Types() []ConversionType {
	return []ConversionType{Distance, Temperature, Weight}
}

// Supported returns every domain with its unit codes
func Supported() []Domain {
	return lo.Map(Types(), func(t ConversionType, _ int) Domain {
		return Domain{Type: t, Units: t.Units()}
	})
}

// ParseConversionType resolves a type tag. Matching is exact.
func ParseConversionType(s string) (ConversionType, error) {
	t := ConversionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownConversionType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the supported domains
func (t ConversionType) Valid() bool {
	_, ok := domainUnits[t]
	return ok
}

// Units returns a copy of the unit codes accepted by the domain
func (t ConversionType) Units() []Unit {
	return append([]Unit(nil), domainUnits[t]...)
}

// Converter returns the domain converter for t
func (t ConversionType) Converter() (ConverterFunc, error) {
	switch t {
	case Distance:
		return ConvertDistance, nil
	case Temperature:
		return ConvertTemperature, nil
	case Weight:
		return ConvertWeight, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConversionType, string(t))
	}
}

// Accepts reports whether u is a unit code of the domain
func (t ConversionType) Accepts(u Unit) bool {
	return lo.Contains(domainUnits[t], u)
}

// validatePair checks both unit codes against the domain, from first
func validatePair(t ConversionType, from, to Unit) error {
	if !t.Accepts(from) {
		return &UnknownUnitError{Type: t, Side: SideFrom, Unit: from}
	}
	if !t.Accepts(to) {
		return &UnknownUnitError{Type: t, Side: SideTo, Unit: to}
	}
	return nil
}

// pair is a directed (from, to) conversion used for exhaustive switching
type pair struct {
	from Unit
	to   Unit
}

func unsupported(t ConversionType, from, to Unit) error {
	return fmt.Errorf("%w: %s %s to %s", ErrUnsupportedConversion, t, from, to)
}
