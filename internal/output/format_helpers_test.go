package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.567", "₹1,234.57"},
		{"0", "₹0.00"},
		{"5105126.25", "₹5,105,126.25"},
		{"-250000.5", "-₹250,000.50"},
		{"-0.25", "-₹0.25"},
		{"999.999", "₹1,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency("₹", decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatIndianUnits(t *testing.T) {
	v := decimal.RequireFromString("12345678")
	assert.Equal(t, "₹123.46 L", FormatLakhs("₹", v))
	assert.Equal(t, "₹1.23 Cr", FormatCrores("₹", v))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.3456)))
	assert.Equal(t, "3.4x", FormatMultiplier(decimal.RequireFromString("3.4031")))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "42", intToString(42))
	assert.Equal(t, "-7", int64ToString(-7))
	assert.Equal(t, "true", boolToString(true))
	assert.Equal(t, "false", boolToString(false))
	assert.Equal(t, DefaultCurrencySymbol, symbolOr(""))
	assert.Equal(t, "$", symbolOr("$"))
}
