package units

const (
	KmToMiles     = 0.621371
	KmToMeters    = 1000
	MilesToMeters = 1609.34
)

// ConvertDistance converts between kilometers, miles and meters
func ConvertDistance(value float64, from, to Unit) (float64, error) {
	if err := validatePair(Distance, from, to); err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}

	switch (pair{from, to}) {
	case pair{Kilometer, Mile}:
		return value * KmToMiles, nil
	case pair{Kilometer, Meter}:
		return value * KmToMeters, nil
	case pair{Mile, Kilometer}:
		return value / KmToMiles, nil
	case pair{Mile, Meter}:
		return value * MilesToMeters, nil
	case pair{Meter, Kilometer}:
		return value / KmToMeters, nil
	case pair{Meter, Mile}:
		return value / MilesToMeters, nil
	}

	return 0, unsupported(Distance, from, to)
}
