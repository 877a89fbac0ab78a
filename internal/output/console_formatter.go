package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct {
	Currency string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) WithCurrency(symbol string) Formatter {
	c.Currency = symbol
	return c
}

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	sym := symbolOr(c.Currency)
	cur := func(v decimal.Decimal) string { return FormatCurrency(sym, v) }

	fmt.Fprintln(&buf, "WEALTH PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	writeHeader(&buf, report, sym)

	if len(report.SIP) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "SIP PROJECTIONS")
		for _, s := range sortedSIP(report.SIP) {
			r := s.Result
			fmt.Fprintf(&buf, "%s: Invested=%s (%s) FinalCorpus=%s (%s) Multiplier=%s\n",
				s.Name, cur(r.FinalInvested), FormatLakhs(sym, r.FinalInvested),
				cur(r.FinalValue), FormatCrores(sym, r.FinalValue), FormatMultiplier(r.WealthMultiplier))
			if r.InflationAdjusted {
				fmt.Fprintf(&buf, "  RealValue=%s (at %s inflation)\n", cur(r.RealFinalValue), FormatPercentage(r.InflationRate))
			}
			if r.TaxApplied {
				fmt.Fprintf(&buf, "  TaxableGain=%s Tax=%s PostTax=%s\n", cur(r.TaxableGain), cur(r.TaxAmount), cur(r.PostTaxValue))
			}
		}
	}

	if len(report.MonteCarlo) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "MONTE CARLO")
		for _, s := range sortedMonteCarlo(report.MonteCarlo) {
			r := s.Result
			fmt.Fprintf(&buf, "%s: Worst=%s Median=%s Best=%s\n",
				s.Name, FormatLakhs(sym, r.Summary.Min), FormatLakhs(sym, r.Summary.Median), FormatLakhs(sym, r.Summary.Max))
			fmt.Fprintf(&buf, "  Simulations=%d Months=%d Seed=%d\n", r.NumSimulations, r.Months, r.Seed)
		}
	}

	if len(report.Delay) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "COST OF DELAY")
		for _, s := range sortedDelay(report.Delay) {
			r := s.Result
			fmt.Fprintf(&buf, "%s: StartNow=%s StartIn%dYears=%s Loss=%s (%s)\n",
				s.Name, cur(r.CorpusNow), r.DelayYears, cur(r.CorpusDelayed), cur(r.Loss), FormatLakhs(sym, r.Loss))
		}
	}

	if len(report.Goals) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "GOALS")
		for _, s := range sortedGoals(report.Goals) {
			r := s.Result
			label := s.Name
			if r.Item != "" && r.Item != s.Name {
				label = fmt.Sprintf("%s (%s)", s.Name, r.Item)
			}
			status := "affordable"
			if !r.Affordable {
				status = "shortfall " + cur(r.Shortfall)
			}
			fmt.Fprintf(&buf, "%s: FutureCost=%s ProjectedSavings=%s Gap=%s [%s]\n",
				label, cur(r.FutureCost), cur(r.FutureSavings), cur(r.Gap), status)
		}
	}

	writeHighlights(&buf, AnalyzePlan(report), sym)
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, report *domain.PlanReport, sym string) {
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(buf, "Generated: %s\n", report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	}
	if report.Seed != 0 {
		fmt.Fprintf(buf, "Seed: %d\n", report.Seed)
	}
	a := report.Assumptions
	fmt.Fprintf(buf, "Assumptions: inflation %s, LTCG %s above %s\n",
		FormatPercentage(a.InflationRate), FormatPercentage(a.TaxRate), FormatCurrency(sym, a.TaxExemption))
}

func writeHighlights(buf *bytes.Buffer, h Highlights, sym string) {
	if h.BestSIP == "" && h.CostliestDelay == "" && h.GoalsTotal == 0 {
		return
	}
	fmt.Fprintln(buf)
	if h.BestSIP != "" {
		fmt.Fprintf(buf, "Best multiplier: %s (%s)\n", h.BestSIP, FormatMultiplier(h.BestSIPMultiplier))
	}
	if h.CostliestDelay != "" {
		fmt.Fprintf(buf, "Costliest delay: %s (%s)\n", h.CostliestDelay, FormatLakhs(sym, h.CostliestLoss))
	}
	if h.GoalsTotal > 0 {
		fmt.Fprintf(buf, "Goals affordable: %d of %d", h.GoalsAffordable, h.GoalsTotal)
		if len(h.ShortfallGoals) > 0 {
			fmt.Fprintf(buf, " (short: %s)", strings.Join(h.ShortfallGoals, ", "))
		}
		fmt.Fprintln(buf)
	}
}

func sortedSIP(in []domain.SIPScenario) []domain.SIPScenario {
	out := append([]domain.SIPScenario(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedMonteCarlo(in []domain.MonteCarloScenario) []domain.MonteCarloScenario {
	out := append([]domain.MonteCarloScenario(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedDelay(in []domain.DelayScenario) []domain.DelayScenario {
	out := append([]domain.DelayScenario(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedGoals(in []domain.GoalScenario) []domain.GoalScenario {
	out := append([]domain.GoalScenario(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
