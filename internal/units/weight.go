package units

const (
	OuncesToGrams  = 28.3495
	PoundsToOunces = 16
	PoundsToGrams  = 453.592
)

// ConvertWeight converts between grams, ounces and pounds
func ConvertWeight(value float64, from, to Unit) (float64, error) {
	if err := validatePair(Weight, from, to); err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}

	switch (pair{from, to}) {
	case pair{Gram, Ounce}:
		return value / OuncesToGrams, nil
	case pair{Gram, Pound}:
		return value / PoundsToGrams, nil
	case pair{Ounce, Gram}:
		return value * OuncesToGrams, nil
	case pair{Ounce, Pound}:
		return value / PoundsToOunces, nil
	case pair{Pound, Gram}:
		return value * PoundsToGrams, nil
	case pair{Pound, Ounce}:
		return value * PoundsToOunces, nil
	}

	return 0, unsupported(Weight, from, to)
}
