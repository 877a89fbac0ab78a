package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions,
// a year-by-year table per SIP and percentile bands per Monte Carlo run.
type ConsoleVerboseFormatter struct {
	Currency string
}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) WithCurrency(symbol string) Formatter {
	c.Currency = symbol
	return c
}

func (c ConsoleVerboseFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	sym := symbolOr(c.Currency)

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED WEALTH PROJECTION ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report.Assumptions, sym) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, s := range sortedSIP(report.SIP) {
		writeSIPDetail(&buf, i+1, s, sym)
	}
	for i, s := range sortedMonteCarlo(report.MonteCarlo) {
		writeMonteCarloDetail(&buf, i+1, s, sym)
	}

	summary, err := ConsoleFormatter{Currency: sym}.Format(report)
	if err != nil {
		return nil, err
	}
	buf.Write(summary)
	return buf.Bytes(), nil
}

func writeSIPDetail(buf *bytes.Buffer, n int, s domain.SIPScenario, sym string) {
	title := fmt.Sprintf("SIP %d: %s", n, s.Name)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(buf, "Monthly contribution %s at %s for %d years\n",
		FormatCurrency(sym, s.Input.MonthlyContribution), FormatPercentage(s.Input.AnnualReturn), s.Input.Years)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-6s %20s %20s %20s\n", "YEAR", "INVESTED", "VALUE", "REAL VALUE")
	fmt.Fprintln(buf, strings.Repeat("-", 69))
	for _, p := range s.Result.Points {
		if p.Month%12 != 0 {
			continue
		}
		fmt.Fprintf(buf, "%-6d %20s %20s %20s\n", p.Month/12,
			FormatCurrency(sym, p.Invested), FormatCurrency(sym, p.PortfolioValue), FormatCurrency(sym, p.RealValue))
	}
	fmt.Fprintln(buf, strings.Repeat("-", 69))
	gain := s.Result.TotalGain
	growth := decimal.Zero
	if !s.Result.FinalInvested.IsZero() {
		growth = gain.Div(s.Result.FinalInvested).Mul(decimal.NewFromInt(100))
	}
	fmt.Fprintf(buf, "Total gain: %s (%s growth)\n", FormatCurrency(sym, gain), FormatPercentage(growth))
	fmt.Fprintln(buf)
}

func writeMonteCarloDetail(buf *bytes.Buffer, n int, s domain.MonteCarloScenario, sym string) {
	r := s.Result
	title := fmt.Sprintf("MONTE CARLO %d: %s", n, s.Name)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(buf, "%d simulations of %d months, mean %s, volatility %s, seed %d\n",
		r.NumSimulations, r.Months, FormatPercentage(s.Input.AverageReturn), FormatPercentage(s.Input.Volatility), r.Seed)
	fmt.Fprintln(buf)
	for _, row := range []struct {
		label string
		value decimal.Decimal
	}{
		{"Worst", r.Summary.Min},
		{"P10", r.Percentiles.P10},
		{"P25", r.Percentiles.P25},
		{"Median", r.Summary.Median},
		{"P75", r.Percentiles.P75},
		{"P90", r.Percentiles.P90},
		{"Best", r.Summary.Max},
	} {
		fmt.Fprintf(buf, "  %-8s %20s\n", row.label, FormatCurrency(sym, row.value))
	}
	if k := len(r.ApproximateAveragePath); k > 0 {
		fmt.Fprintf(buf, "  %-8s %20s (approximation)\n", "Average", FormatCurrency(sym, r.ApproximateAveragePath[k-1]))
	}
	fmt.Fprintln(buf)
}
