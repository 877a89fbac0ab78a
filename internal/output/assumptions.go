package output

import (
	"fmt"

	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions rendered in detailed outputs.
func GenerateAssumptions(a domain.Assumptions, symbol string) []string {
	return []string{
		fmt.Sprintf("Inflation (real values): %s annually", FormatPercentage(a.InflationRate)),
		fmt.Sprintf("LTCG tax: %s on gains above %s", FormatPercentage(a.TaxRate), FormatCurrency(symbolOr(symbol), a.TaxExemption)),
		"Inflation and returns compound monthly at one twelfth of the annual rate",
		"Monte Carlo returns are normally distributed monthly draws",
	}
}
