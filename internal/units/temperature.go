package units

// KelvinOffset is the Celsius value of 0 K, negated
const KelvinOffset = 273.15

// ConvertTemperature converts between Celsius, Fahrenheit and Kelvin
func ConvertTemperature(value float64, from, to Unit) (float64, error) {
	if err := validatePair(Temperature, from, to); err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}

	switch (pair{from, to}) {
	case pair{Celsius, Fahrenheit}:
		return value*9/5 + 32, nil
	case pair{Celsius, Kelvin}:
		return value + KelvinOffset, nil
	case pair{Fahrenheit, Celsius}:
		return (value - 32) * 5 / 9, nil
	case pair{Fahrenheit, Kelvin}:
		return (value-32)*5/9 + KelvinOffset, nil
	case pair{Kelvin, Celsius}:
		return value - KelvinOffset, nil
	case pair{Kelvin, Fahrenheit}:
		return (value-KelvinOffset)*9/5 + 32, nil
	}

	return 0, unsupported(Temperature, from, to)
}
