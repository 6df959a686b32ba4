package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"unitconv/internal/units"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvert_PrecisionFlag(t *testing.T) {
	out, err := runCmd(t, "convert", "distance", "5", "km", "mi", "--precision", "2")
	require.NoError(t, err)
	require.Equal(t, "3.11\n", out)
}

func TestConvert_PadsToPrecision(t *testing.T) {
	out, err := runCmd(t, "convert", "temperature", "37", "C", "F", "-p", "2")
	require.NoError(t, err)
	require.Equal(t, "98.60\n", out)
}

func TestConvert_NegativeValue(t *testing.T) {
	out, err := runCmd(t, "convert", "-p", "0", "--", "temperature", "-40", "C", "F")
	require.NoError(t, err)
	require.Equal(t, "-40\n", out)
}

func TestConvert_PrecisionFromConfig(t *testing.T) {
	path := writeConfig(t, "app:\n  precision: 3\n")

	out, err := runCmd(t, "--config", path, "convert", "distance", "5", "km", "mi")
	require.NoError(t, err)
	require.Equal(t, "3.107\n", out)
}

func TestConvert_FlagOverridesConfig(t *testing.T) {
	path := writeConfig(t, "app:\n  precision: 3\n")

	out, err := runCmd(t, "--config", path, "convert", "distance", "5", "km", "mi", "-p", "1")
	require.NoError(t, err)
	require.Equal(t, "3.1\n", out)
}

func TestConvert_MissingPrecision(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")

	_, err := runCmd(t, "--config", path, "convert", "distance", "5", "km", "mi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown type", []string{"convert", "volume", "100", "L", "gal", "-p", "2"}, units.ErrUnknownConversionType},
		{"invalid value", []string{"convert", "temperature", "abc", "C", "F", "-p", "2"}, units.ErrInvalidNumericValue},
		{"unknown unit", []string{"convert", "temperature", "100", "c", "F", "-p", "2"}, units.ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConvert_InvalidPrecisionFlag(t *testing.T) {
	_, err := runCmd(t, "convert", "distance", "5", "km", "mi", "-p", "-1")
	require.Error(t, err)
}

func TestConvert_WrongArgCount(t *testing.T) {
	_, err := runCmd(t, "convert", "distance", "5", "km")
	require.Error(t, err)
}

func TestUnits(t *testing.T) {
	out, err := runCmd(t, "units")
	require.NoError(t, err)
	require.Equal(t, "distance: km, mi, m\ntemperature: C, F, K\nweight: g, oz, lb\n", out)
}
