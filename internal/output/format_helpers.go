package output

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	money "github.com/wealthpro/wealth-analytics/pkg/decimal"
)

// DefaultCurrencySymbol is printed when no symbol is configured.
const DefaultCurrencySymbol = "₹"

// FormatCurrency formats a decimal with thousands separators and 2 decimals.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	rounded := money.NewMoneyFromDecimal(amount).Round().Decimal
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	whole := humanize.BigComma(rounded.Truncate(0).BigInt())
	fixed := rounded.StringFixed(2)
	frac := fixed[strings.LastIndexByte(fixed, '.'):]
	return sign + symbol + whole + frac
}

// FormatLakhs formats an amount in lakhs, e.g. "₹12.35 L".
func FormatLakhs(symbol string, amount decimal.Decimal) string {
	return symbol + money.NewMoneyFromDecimal(amount).Lakhs().StringFixed(2) + " L"
}

// FormatCrores formats an amount in crores, e.g. "₹1.20 Cr".
func FormatCrores(symbol string, amount decimal.Decimal) string {
	return symbol + money.NewMoneyFromDecimal(amount).Crores().StringFixed(2) + " Cr"
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMultiplier formats a ratio as "3.2x".
func FormatMultiplier(ratio decimal.Decimal) string { return ratio.StringFixed(1) + "x" }

func intToString(v int) string { return strconv.Itoa(v) }

func int64ToString(v int64) string { return strconv.FormatInt(v, 10) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

func symbolOr(symbol string) string {
	if symbol == "" {
		return DefaultCurrencySymbol
	}
	return symbol
}
