package relativize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integral gets .0", 1, "1.0"},
		{"negative integral", -2, "-2.0"},
		{"zero", 0, "0.0"},
		{"fraction", 0.5, "0.5"},
		{"shortest repr", 0.1, "0.1"},
		{"large exponent", 1e20, "1e+20"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
		{"not a number", math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in))
		})
	}
}
