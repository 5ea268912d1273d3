package entity

import (
	"math"
	"testing"

	errs "github.com/marketpay/marketpay/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    float64
			expected int64
		}{
			{"Whole dollars", 100.00, 10000},
			{"One cent", 0.01, 1},
			{"Ten cents", 0.10, 10},
			{"Dollar and a half", 1.5, 150},
			{"Large amount", 1234567.89, 123456789},
			{"Rounds half up", 19.999, 2000},
			{"Rounds down below half", 10.004, 1000},
			{"Float representation of 0.29", 0.29, 29},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cents, err := ToCents(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			name      string
			input     float64
			errorType error
		}{
			{"Zero", 0, errs.ErrNegativeAmount},
			{"Negative", -1.00, errs.ErrNegativeAmount},
			{"Rounds to zero", 0.001, errs.ErrNegativeAmount},
			{"NaN", math.NaN(), errs.ErrInvalidAmount},
			{"Positive infinity", math.Inf(1), errs.ErrInvalidAmount},
			{"Negative infinity", math.Inf(-1), errs.ErrInvalidAmount},
			{"Exceeds ledger precision", 100_000_000.00, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ToCents(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Maximum allowed amount", func(t *testing.T) {
		cents, err := ToCents(99_999_999.99)
		assert.NoError(t, err)
		assert.Equal(t, int64(9_999_999_999), cents)
	})
}

func TestCentsToAmount(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected float64
	}{
		{10000, 100.00},
		{1, 0.01},
		{150, 1.50},
		{0, 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CentsToAmount(tc.cents))
	}
}

func TestCentsToString(t *testing.T) {
	testCases := []struct {
		name     string
		cents    int64
		expected string
	}{
		{"Whole dollars", 10000, "100.00"},
		{"One cent", 1, "0.01"},
		{"Ten cents", 10, "0.10"},
		{"Fraction padding", 1015, "10.15"},
		{"Five cents", 5, "0.05"},
		{"Zero", 0, "0.00"},
		{"Negative", -1015, "-10.15"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CentsToString(tc.cents))
		})
	}
}

func TestRoundTripConversion(t *testing.T) {
	// Major -> minor -> string must agree for amounts with two decimals
	amounts := []float64{0.01, 1.00, 19.99, 250.50, 99999.99}
	expected := []string{"0.01", "1.00", "19.99", "250.50", "99999.99"}

	for i, amount := range amounts {
		cents, err := ToCents(amount)
		assert.NoError(t, err)
		assert.Equal(t, expected[i], CentsToString(cents))
	}
}
