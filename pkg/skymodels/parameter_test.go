package skymodels

import (
	"strconv"
	"testing"
)

func TestParameterString(t *testing.T) {
	tests := []struct {
		name  string
		param Parameter
		want  string
	}{
		{
			name:  "free dimensionless",
			param: Parameter{Name: "index", Value: 2.1, Min: 5.0, Max: 1.0},
			want:  "index = 2.1 [5, 1] (free)",
		},
		{
			name:  "frozen with unit",
			param: Parameter{Name: "lon_0", Value: 0.5, Unit: "deg", Min: -360, Max: 360, Frozen: true},
			want:  "lon_0 = 0.5 deg [-360, 360] (frozen)",
		},
		{
			name:  "small magnitude keeps precision",
			param: Parameter{Name: "lambda_", Value: 0.01, Unit: "MeV-1", Min: 100, Max: 0.001},
			want:  "lambda_ = 0.01 MeV-1 [100, 0.001] (free)",
		},
		{
			name:  "scientific notation",
			param: Parameter{Name: "amplitude", Value: 1e-12, Unit: "cm-2 s-1 MeV-1", Min: 1e-15, Max: 1e-5},
			want:  "amplitude = 1e-12 cm-2 s-1 MeV-1 [1e-15, 1e-05] (free)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.param.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatValueRoundTrips(t *testing.T) {
	// The rendered value must parse back to the identical float.
	values := []float64{0, 2.1, -2.1, 0.001, 1e-12, 1.0 / 3.0, 360, 1e9}
	for _, v := range values {
		s := formatValue(v)
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("formatValue(%v) = %q does not parse: %v", v, s, err)
		}
		if parsed != v {
			t.Errorf("formatValue(%v) = %q parses to %v", v, s, parsed)
		}
	}
}
