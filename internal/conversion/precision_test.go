package conversion

import (
	"errors"
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      float64
	}{
		{"rounds up", 3.106855, 2, 3.11},
		{"rounds down", 6.21371, 2, 6.21},
		{"half up", 10.955, 2, 10.96},
		{"half away from zero negative", -10.955, 2, -10.96},
		{"binary drift", 1.005, 2, 1.01},
		{"precision zero", 3.106855, 0, 3},
		{"precision zero half", 2.5, 0, 3},
		{"precision zero negative half", -2.5, 0, -3},
		{"precision one", 3.106855, 1, 3.1},
		{"precision three", 3.106855, 3, 3.107},
		{"precision four", 3.106855, 4, 3.1069},
		{"small value to zero", 0.0035, 2, 0},
		{"negative small value to zero", -0.0000352, 2, 0},
		{"large value", 621371.0, 2, 621371},
		{"already rounded", 98.6, 2, 98.6},
		{"float noise", 98.60000000000001, 2, 98.6},
		{"zero", 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.value, tt.precision)
			if got != tt.want {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.value, tt.precision, got, tt.want)
			}
		})
	}
}

func TestRoundNormalizesNegativeZero(t *testing.T) {
	got := Round(-0.001, 2)
	if math.Signbit(got) {
		t.Errorf("Round(-0.001, 2) = %v, want positive zero", got)
	}
}

func TestRoundNonFinitePassesThrough(t *testing.T) {
	if got := Round(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %v, want +Inf", got)
	}
	if got := Round(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %v, want NaN", got)
	}
}

func TestValidatePrecision(t *testing.T) {
	tests := []struct {
		precision int
		wantErr   bool
	}{
		{0, false},
		{2, false},
		{MaxPrecision, false},
		{-1, true},
		{MaxPrecision + 1, true},
	}

	for _, tt := range tests {
		err := ValidatePrecision(tt.precision)
		if tt.wantErr != (err != nil) {
			t.Errorf("ValidatePrecision(%d) error = %v, wantErr %v", tt.precision, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidPrecision) {
			t.Errorf("ValidatePrecision(%d) error = %v, want ErrInvalidPrecision", tt.precision, err)
		}
	}
}
