package utils_test

import (
	"testing"

	"bus-reservation/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int64
	}{
		{"two decimals", "500.00", 50000},
		{"no decimals", "500", 50000},
		{"one decimal", "500.5", 50050},
		{"zero", "0.00", 0},
		{"leading space", " 12.34", 1234},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := utils.ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"three decimals", "500.001"},
		{"negative", "-1.50"},
		{"negative zero", "-0.50"},
		{"not a number", "abc"},
		{"missing whole part", ".50"},
		{"signed fraction", "5.-1"},
		{"plus in fraction", "5.+1"},
		{"plus prefix", "+5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utils.ParseAmount(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "500.00", utils.FormatAmount(50000))
	assert.Equal(t, "500.50", utils.FormatAmount(50050))
	assert.Equal(t, "0.05", utils.FormatAmount(5))
	assert.Equal(t, "0.00", utils.FormatAmount(0))
}

func TestAmountRoundTrip(t *testing.T) {
	cents, err := utils.ParseAmount("499.99")
	require.NoError(t, err)
	assert.Equal(t, "499.99", utils.FormatAmount(cents))
}
